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

	"github.com/dmitrijs2005/timesheets/internal/common"
	"github.com/dmitrijs2005/timesheets/internal/logging"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseBody = 4 << 20
	maxPlainMessage = 256
)

// Option configures an APIClient.
type Option func(*APIClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) { c.http = hc }
}

// WithTimeout sets the per-request timeout. It applies to a copy of the
// *http.Client, so a client passed via WithHTTPClient is left untouched, in
// whichever order the options are given.
func WithTimeout(d time.Duration) Option {
	return func(c *APIClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *APIClient) { c.log = l }
}

// WithUnauthorizedHandler registers fn to run whenever an authenticated
// request is answered with 401.
func WithUnauthorizedHandler(fn func(ctx context.Context)) Option {
	return func(c *APIClient) { c.onUnauthorized = fn }
}

// APIClient is the JSON-over-HTTP implementation of Client.
type APIClient struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	log            logging.Logger
	onUnauthorized func(ctx context.Context)
	requestID      func() string
	timeout        time.Duration
}

// NewAPIClient builds a client for baseURL. tokens may be nil, in which case
// requests are sent without an Authorization header.
func NewAPIClient(baseURL string, tokens TokenSource, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: defaultTimeout},
		tokens:    tokens,
		log:       logging.Nop(),
		requestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// SetUnauthorizedHandler replaces the 401 handler after construction. The
// session layer is usually built after the client it depends on.
func (c *APIClient) SetUnauthorizedHandler(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

func (c *APIClient) Do(ctx context.Context, r Request, out any) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	log := c.log.With("method", req.Method, "path", r.Path, "request_id", req.Header.Get(common.RequestIDHeader))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, r.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	log.Debug(ctx, "request completed", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: extractMessage(body)}
		if resp.StatusCode == http.StatusUnauthorized && !r.Anonymous && c.onUnauthorized != nil {
			log.Info(ctx, "session rejected by server")
			c.onUnauthorized(ctx)
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrBadResponse, req.Method, r.Path, err)
	}
	return nil
}

func (c *APIClient) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + "/" + strings.TrimLeft(r.Path, "/")
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeader, c.requestID())

	if !r.Anonymous && c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}

	return req, nil
}

// extractMessage pulls a human readable message out of an error body. JSON
// bodies are searched for the usual message fields, a bare JSON string is
// used as is and short plain-text bodies are passed through.
func extractMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	if gjson.ValidBytes(trimmed) {
		res := gjson.ParseBytes(trimmed)
		if res.Type == gjson.String {
			return strings.TrimSpace(res.String())
		}
		for _, path := range []string{"message", "error.message", "error", "detail"} {
			if v := res.Get(path); v.Type == gjson.String && strings.TrimSpace(v.String()) != "" {
				return strings.TrimSpace(v.String())
			}
		}
		return ""
	}

	text := string(trimmed)
	if strings.HasPrefix(text, "<") || len(text) > maxPlainMessage {
		return ""
	}
	return text
}
