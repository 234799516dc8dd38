package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/dmitrijs2005/scanly/internal/common"
	"github.com/dmitrijs2005/scanly/internal/logging"
	"github.com/google/uuid"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 8 << 20

// Requester performs one logical API call. *Client implements it; services
// depend on this interface.
type Requester interface {
	Do(ctx context.Context, method, endpoint string, body any, headers http.Header, out any) error
}

// Client is the authenticated request pipeline. It is safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenStore
	public         PublicEndpoints
	reissuePath    string
	refreshTimeout time.Duration
	onAuthFailure  AuthFailureFunc
	log            logging.Logger

	refresher *Refresher
}

type Option func(*Client)

// WithHTTPClient replaces the transport. Its Timeout bounds each attempt.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-attempt timeout of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithPublicEndpoints(p PublicEndpoints) Option {
	return func(c *Client) { c.public = p }
}

func WithReissuePath(path string) Option {
	return func(c *Client) { c.reissuePath = path }
}

// WithRefreshTimeout bounds one token reissue cycle.
func WithRefreshTimeout(d time.Duration) Option {
	return func(c *Client) { c.refreshTimeout = d }
}

// WithOnAuthFailure registers the callback that sends the user back to sign-in.
func WithOnAuthFailure(fn AuthFailureFunc) Option {
	return func(c *Client) { c.onAuthFailure = fn }
}

// New builds a pipeline for the API at baseURL backed by tokens.
func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		tokens:      tokens,
		public:      DefaultPublicEndpoints,
		reissuePath: ReissuePath,
		log:         logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.refresher = NewRefresher(tokens, c.reissue, RefresherOptions{
		Timeout:   c.refreshTimeout,
		OnFailure: c.onAuthFailure,
		Logger:    c.log,
	})
	return c
}

type skipRefreshKey struct{}

// WithoutRefresh marks calls made with the returned context so that a 401 is
// decoded like any other status: no refresh, no retry, no session end.
func WithoutRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipRefreshKey{}, true)
}

func skipsRefresh(ctx context.Context) bool {
	v, _ := ctx.Value(skipRefreshKey{}).(bool)
	return v
}

// Tokens returns the store the pipeline reads tokens from.
func (c *Client) Tokens() TokenStore { return c.tokens }

// call is one logical request; its payload is replayed on retry.
type call struct {
	method    string
	endpoint  string
	payload   []byte
	headers   http.Header
	public    bool
	requestID string
}

// Do sends one logical request and decodes the envelope data into out (which
// may be nil). body, when non-nil, is sent as JSON.
//
// Caller headers override computed ones (Content-Type, Accept, X-Request-Id)
// except Authorization, which is always computed by the pipeline and cannot
// be supplied by the caller.
//
// A 401 on a protected endpoint triggers one refresh and one retry. If the
// refresh fails, or the retry is rejected again, tokens are cleared, the
// auth-failure callback runs, and the error has KindUnauthorized.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, headers http.Header, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = b
	}

	cl := &call{
		method:    method,
		endpoint:  endpoint,
		payload:   payload,
		headers:   headers,
		public:    c.public.Match(endpoint),
		requestID: uuid.NewString(),
	}

	raw, err := c.execute(ctx, cl, false)
	if err != nil {
		return err
	}
	return Unmarshal(raw, out)
}

func (c *Client) execute(ctx context.Context, cl *call, retry bool) (json.RawMessage, error) {
	status, body, sentToken, err := c.send(ctx, cl, retry)
	if err != nil {
		return nil, err
	}

	if status != http.StatusUnauthorized || cl.public || skipsRefresh(ctx) {
		return DecodeEnvelope(status, body)
	}

	if retry {
		c.log.Warn(ctx, "request rejected after token refresh", "endpoint", cl.endpoint, "request_id", cl.requestID)
		c.refresher.EndSession(ctx)
		return nil, &Error{Kind: KindUnauthorized, Status: status}
	}

	if err := c.refresher.Refresh(ctx, sentToken); err != nil {
		if ctx.Err() != nil {
			return nil, networkError(ctx.Err())
		}
		var se *storeError
		if errors.As(err, &se) {
			return nil, err
		}
		return nil, &Error{Kind: KindUnauthorized, Status: status, Err: err}
	}

	return c.execute(ctx, cl, true)
}

// send performs a single HTTP attempt and returns the status, the body and
// the access token that was attached.
func (c *Client) send(ctx context.Context, cl *call, retry bool) (int, []byte, string, error) {
	var reader io.Reader
	if cl.payload != nil {
		reader = bytes.NewReader(cl.payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.url(cl.endpoint), reader)
	if err != nil {
		return 0, nil, "", fmt.Errorf("build request %s %s: %w", cl.method, cl.endpoint, err)
	}

	req.Header.Set(common.ContentTypeHeaderName, common.JSONContentType)
	req.Header.Set(common.AcceptHeaderName, common.JSONContentType)
	req.Header.Set(common.RequestIDHeaderName, cl.requestID)
	for name, values := range cl.headers {
		name = http.CanonicalHeaderKey(name)
		if name == common.AuthorizationHeaderName {
			continue
		}
		req.Header.Del(name)
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	var token string
	if !cl.public {
		token, err = c.tokens.AccessToken(ctx)
		if err != nil {
			return 0, nil, "", fmt.Errorf("read access token: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api request failed", "method", cl.method, "endpoint", cl.endpoint,
			"request_id", cl.requestID, "retry", retry, "error", err)
		return 0, nil, "", networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, "", networkError(fmt.Errorf("read response body: %w", err))
	}

	c.log.Debug(ctx, "api request", "method", cl.method, "endpoint", cl.endpoint,
		"request_id", cl.requestID, "status", resp.StatusCode, "retry", retry,
		"elapsed", time.Since(start))

	return resp.StatusCode, body, token, nil
}

func (c *Client) url(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

// reissue calls the token reissue endpoint. It is always sent as public, so
// it can never recurse into the refresh flow.
func (c *Client) reissue(ctx context.Context, refreshToken string) (TokenPair, error) {
	payload, err := json.Marshal(models.ReissueRequest{RefreshToken: refreshToken})
	if err != nil {
		return TokenPair{}, err
	}

	cl := &call{
		method:    http.MethodPost,
		endpoint:  c.reissuePath,
		payload:   payload,
		public:    true,
		requestID: uuid.NewString(),
	}

	raw, err := c.execute(ctx, cl, false)
	if err != nil {
		return TokenPair{}, err
	}

	var resp models.TokenResponse
	if err := Unmarshal(raw, &resp); err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, nil
}
