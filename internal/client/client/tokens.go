package client

import "context"

// TokenPair is an access token with the refresh token issued alongside it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenStore persists the session tokens. An empty string means "absent".
// SetTokens and ClearTokens must update both tokens together: readers never
// observe a pair that is half old and half new.
type TokenStore interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	ClearTokens(ctx context.Context) error
}

// AuthFailureFunc is called when the session can no longer be recovered and
// the user has to sign in again. It runs once per ended session, however many
// calls saw the failure.
type AuthFailureFunc func(ctx context.Context)
