package tokens

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/scanly/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "scanly.db")
	db, err := client.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, dsn
}

func TestNewSQLiteStore_RequiresPassphrase(t *testing.T) {
	db, _ := openDB(t)

	_, err := NewSQLiteStore(context.Background(), db, nil)
	assert.ErrorIs(t, err, common.ErrStoreLocked)
}

func TestSQLiteStore_SetReadClear(t *testing.T) {
	ctx := context.Background()
	db, _ := openDB(t)

	s, err := NewSQLiteStore(ctx, db, []byte("secret"))
	require.NoError(t, err)

	a, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, a)

	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))
	require.NoError(t, s.SetTokens(ctx, "A2", "R2"))

	a, err = s.AccessToken(ctx)
	require.NoError(t, err)
	r, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A2", a)
	assert.Equal(t, "R2", r)

	require.NoError(t, s.ClearTokens(ctx))
	a, _ = s.AccessToken(ctx)
	r, _ = s.RefreshToken(ctx)
	assert.Empty(t, a)
	assert.Empty(t, r)

	salt, err := metadata.NewSQLiteRepository(db).Get(ctx, common.MetadataStoreSalt)
	require.NoError(t, err)
	assert.NotEmpty(t, salt, "clearing tokens keeps the salt")
}

func TestSQLiteStore_ValuesAreSealed(t *testing.T) {
	ctx := context.Background()
	db, _ := openDB(t)

	s, err := NewSQLiteStore(ctx, db, []byte("secret"))
	require.NoError(t, err)
	require.NoError(t, s.SetTokens(ctx, "plain-access", "plain-refresh"))

	raw, err := metadata.NewSQLiteRepository(db).Get(ctx, common.MetadataAccessToken)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "plain-access")
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	db, dsn := openDB(t)

	s, err := NewSQLiteStore(ctx, db, []byte("secret"))
	require.NoError(t, err)
	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))
	s.Close()
	require.NoError(t, db.Close())

	db2, err := client.InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db2.Close()

	s2, err := NewSQLiteStore(ctx, db2, []byte("secret"))
	require.NoError(t, err)

	a, err := s2.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A1", a)
}

func TestSQLiteStore_WrongPassphraseFailsToOpen(t *testing.T) {
	ctx := context.Background()
	db, _ := openDB(t)

	s, err := NewSQLiteStore(ctx, db, []byte("secret"))
	require.NoError(t, err)
	require.NoError(t, s.SetTokens(ctx, "A1", "R1"))

	other, err := NewSQLiteStore(ctx, db, []byte("guess"))
	require.NoError(t, err)

	_, err = other.AccessToken(ctx)
	assert.Error(t, err)
}
