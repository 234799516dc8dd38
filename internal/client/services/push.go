package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/models"
)

const pushTokensPath = "/api/push-tokens/v1"

// DuplicateKeyCode is what the server answers when the push token is already
// registered.
const DuplicateKeyCode = "DUPLICATE_KEY"

type PushService interface {
	// Register sends the device push token to the server. It reports false
	// without error when there is no session. A token that was already
	// registered, here or on the server, counts as registered.
	Register(ctx context.Context, token string, platform models.Platform) (bool, error)
	// Reset forgets the last registered token. Call it on logout.
	Reset()
}

type pushService struct {
	api    client.Requester
	tokens client.TokenStore

	mu   sync.Mutex
	last string
}

func NewPushService(api client.Requester, store client.TokenStore) PushService {
	return &pushService{api: api, tokens: store}
}

func (p *pushService) Register(ctx context.Context, token string, platform models.Platform) (bool, error) {
	if token == "" {
		return false, invalid("push token is required")
	}

	access, err := p.tokens.AccessToken(ctx)
	if err != nil {
		return false, fmt.Errorf("read access token: %w", err)
	}
	if access == "" {
		return false, nil
	}

	p.mu.Lock()
	seen := p.last == token
	p.mu.Unlock()
	if seen {
		return true, nil
	}

	req := models.RegisterPushTokenRequest{Token: token, Platform: platform}
	err = p.api.Do(ctx, http.MethodPost, pushTokensPath, req, nil, nil)
	if err != nil && !isDuplicate(err) {
		return false, fmt.Errorf("register push token error: %w", err)
	}

	p.mu.Lock()
	p.last = token
	p.mu.Unlock()
	return true, nil
}

func (p *pushService) Reset() {
	p.mu.Lock()
	p.last = ""
	p.mu.Unlock()
}

func isDuplicate(err error) bool {
	var e *client.Error
	if !errors.As(err, &e) || e.Kind != client.KindAPI {
		return false
	}
	return e.Code == DuplicateKeyCode || strings.Contains(e.Message, "duplicate")
}
