package tokens

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ client.TokenStore = (*MemoryStore)(nil)
	_ client.TokenStore = (*SQLiteStore)(nil)
)

func TestMemoryStore_SetReadClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	a, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, a)

	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))
	a, _ = s.AccessToken(ctx)
	r, _ := s.RefreshToken(ctx)
	assert.Equal(t, "A1", a)
	assert.Equal(t, "R1", r)

	require.NoError(t, s.ClearTokens(ctx))
	a, _ = s.AccessToken(ctx)
	r, _ = s.RefreshToken(ctx)
	assert.Empty(t, a)
	assert.Empty(t, r)
}

func TestMemoryStore_ConcurrentPairWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.SetTokens(ctx, "A", "R")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.AccessToken(ctx)
		}()
	}
	wg.Wait()

	a, _ := s.AccessToken(ctx)
	assert.Equal(t, "A", a)
}
