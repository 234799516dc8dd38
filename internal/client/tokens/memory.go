// Package tokens holds client.TokenStore implementations and helpers for
// inspecting the tokens they keep.
package tokens

import (
	"context"
	"sync"
)

// MemoryStore keeps the token pair in process memory. It is lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AccessToken(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access, nil
}

func (s *MemoryStore) RefreshToken(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh, nil
}

func (s *MemoryStore) SetTokens(_ context.Context, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = accessToken, refreshToken
	return nil
}

func (s *MemoryStore) ClearTokens(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access, s.refresh = "", ""
	return nil
}
