package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/dmitrijs2005/scanly/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/scanly/internal/client/tokens"
	"github.com/dmitrijs2005/scanly/internal/common"
)

// LogoutPath is called best-effort on logout so the server can revoke the
// refresh token.
const LogoutPath = "/api/auth/v1/logout"

var ErrIncompleteLogin = errors.New("login response is missing tokens")

// AuthService manages the local session.
//
// Contract:
//   - Login: authenticate, store the token pair and remember the login id.
//   - Logout: notify the server if possible, then always drop local session data.
//   - CurrentLoginID: the login id of the last successful login, "" if none.
//   - Session: claims of the stored access token, ErrNotLoggedIn if none.
type AuthService interface {
	Login(ctx context.Context, loginID string, password []byte) error
	Logout(ctx context.Context) error
	CurrentLoginID(ctx context.Context) (string, error)
	Session(ctx context.Context) (tokens.Claims, error)
}

type authService struct {
	api      client.Requester
	tokens   client.TokenStore
	metadata metadata.Repository
}

func NewAuthService(api client.Requester, store client.TokenStore, repo metadata.Repository) AuthService {
	return &authService{api: api, tokens: store, metadata: repo}
}

func (a *authService) Login(ctx context.Context, loginID string, password []byte) error {
	defer common.WipeByteArray(password)

	resp, err := client.Post[models.TokenResponse](ctx, a.api, client.LoginPath,
		models.LoginRequest{LoginID: loginID, Password: string(password)}, nil)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		return ErrIncompleteLogin
	}

	if err := a.tokens.SetTokens(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}
	if err := a.metadata.Set(ctx, common.MetadataLoginID, []byte(loginID)); err != nil {
		return fmt.Errorf("login id saving error: %w", err)
	}
	return nil
}

// Logout skips the server call when there is no access token. The call is
// sent without refresh, so an expired token never starts a reissue or ends
// the session through the auth-failure callback.
func (a *authService) Logout(ctx context.Context) error {
	access, err := a.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("read access token: %w", err)
	}
	if access != "" {
		_ = a.api.Do(client.WithoutRefresh(ctx), http.MethodPost, LogoutPath, nil, nil, nil)
	}

	return a.clearLocal(ctx)
}

func (a *authService) clearLocal(ctx context.Context) error {
	if err := a.tokens.ClearTokens(ctx); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	if err := a.metadata.Delete(ctx, common.MetadataLoginID, common.MetadataMemberID); err != nil {
		return fmt.Errorf("clear session metadata: %w", err)
	}
	return nil
}

func (a *authService) CurrentLoginID(ctx context.Context) (string, error) {
	v, err := a.metadata.Get(ctx, common.MetadataLoginID)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (a *authService) Session(ctx context.Context) (tokens.Claims, error) {
	access, err := a.tokens.AccessToken(ctx)
	if err != nil {
		return tokens.Claims{}, fmt.Errorf("read access token: %w", err)
	}
	if access == "" {
		return tokens.Claims{}, ErrNotLoggedIn
	}
	return tokens.ParseClaims(access)
}
