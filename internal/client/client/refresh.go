package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/scanly/internal/logging"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNoRefreshToken         = errors.New("no refresh token")
	ErrIncompleteTokenReissue = errors.New("reissue returned an incomplete token pair")
)

// ReissueFunc exchanges a refresh token for a new token pair.
type ReissueFunc func(ctx context.Context, refreshToken string) (TokenPair, error)

// RefresherOptions tune a Refresher. The zero value is usable.
type RefresherOptions struct {
	// Timeout bounds one reissue cycle. Zero means no extra bound.
	Timeout time.Duration
	// OnFailure runs once per ended session, after the tokens are cleared.
	OnFailure AuthFailureFunc
	Logger    logging.Logger
}

// Refresher makes sure at most one token reissue is in flight. Callers that
// arrive during a reissue wait for it and share its outcome; the outcome is
// dropped when the reissue ends, so a later 401 starts a new cycle.
type Refresher struct {
	tokens    TokenStore
	reissue   ReissueFunc
	timeout   time.Duration
	onFailure AuthFailureFunc
	log       logging.Logger

	group singleflight.Group

	// endMu serialises EndSession so only the caller that clears a stored
	// session runs onFailure.
	endMu sync.Mutex
}

// storeError is a token store failure seen before any refresh started. It
// is returned to the caller as is, without an error kind.
type storeError struct {
	op  string
	err error
}

func (e *storeError) Error() string { return e.op + ": " + e.err.Error() }
func (e *storeError) Unwrap() error { return e.err }

const refreshKey = "refresh"

func NewRefresher(tokens TokenStore, reissue ReissueFunc, opts RefresherOptions) *Refresher {
	r := &Refresher{
		tokens:    tokens,
		reissue:   reissue,
		timeout:   opts.Timeout,
		onFailure: opts.OnFailure,
		log:       opts.Logger,
	}
	if r.log == nil {
		r.log = logging.Nop()
	}
	return r
}

// Refresh renews the token pair after a request carrying staleAccessToken
// was rejected. If the stored access token already differs from the stale
// one, another caller has refreshed and Refresh returns nil without a
// network call.
//
// The reissue itself is detached from ctx cancellation so one impatient
// caller cannot fail the cycle for everyone; ctx only bounds how long this
// caller waits. New tokens are stored before any waiter is released.
func (r *Refresher) Refresh(ctx context.Context, staleAccessToken string) error {
	if renewed, err := r.alreadyRenewed(ctx, staleAccessToken); err != nil || renewed {
		return err
	}

	detached := context.WithoutCancel(ctx)
	ch := r.group.DoChan(refreshKey, func() (any, error) {
		return nil, r.run(detached, staleAccessToken)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Refresher) alreadyRenewed(ctx context.Context, staleAccessToken string) (bool, error) {
	current, err := r.tokens.AccessToken(ctx)
	if err != nil {
		return false, &storeError{op: "read access token", err: err}
	}
	return current != "" && current != staleAccessToken, nil
}

func (r *Refresher) run(ctx context.Context, staleAccessToken string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// A cycle that started right after another one finished must not reissue again.
	if renewed, err := r.alreadyRenewed(ctx, staleAccessToken); err == nil && renewed {
		return nil
	}

	if err := r.renew(ctx); err != nil {
		r.log.Warn(ctx, "token refresh failed, ending session", "error", err)
		r.EndSession(ctx)
		return err
	}

	r.log.Info(ctx, "access token refreshed")
	return nil
}

func (r *Refresher) renew(ctx context.Context) error {
	refreshToken, err := r.tokens.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("read refresh token: %w", err)
	}
	if refreshToken == "" {
		return ErrNoRefreshToken
	}

	pair, err := r.reissue(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("reissue: %w", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return ErrIncompleteTokenReissue
	}

	if err := r.tokens.SetTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return fmt.Errorf("store tokens: %w", err)
	}
	return nil
}

// EndSession clears the stored tokens and runs the failure callback. It does
// nothing when no session is stored, so callers that lose the same session
// concurrently signal it once.
func (r *Refresher) EndSession(ctx context.Context) {
	if r.clearSession(ctx) && r.onFailure != nil {
		r.onFailure(ctx)
	}
}

func (r *Refresher) clearSession(ctx context.Context) bool {
	r.endMu.Lock()
	defer r.endMu.Unlock()

	access, aerr := r.tokens.AccessToken(ctx)
	refresh, rerr := r.tokens.RefreshToken(ctx)
	if aerr == nil && rerr == nil && access == "" && refresh == "" {
		return false
	}

	if err := r.tokens.ClearTokens(ctx); err != nil {
		r.log.Error(ctx, "failed to clear tokens", "error", err)
	}
	return true
}
