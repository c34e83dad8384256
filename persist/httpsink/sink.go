// Package httpsink delivers permission requests to the approval API over HTTP.
package httpsink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/supremind/portalperm/types"
)

// DefaultEndpoint is the path requests are posted to
const DefaultEndpoint = "/permissions/request"

var _ types.RequestSink = (*RequestSink)(nil)

// RequestSink posts every request as JSON to one endpoint
type RequestSink struct {
	client   *http.Client
	base     string
	endpoint string
	header   http.Header
}

// Option configures a RequestSink
type Option func(*RequestSink)

// WithEndpoint overrides DefaultEndpoint
func WithEndpoint(path string) Option {
	return func(s *RequestSink) {
		s.endpoint = "/" + strings.TrimPrefix(path, "/")
	}
}

// WithHTTPClient sets the client used to post requests
func WithHTTPClient(c *http.Client) Option {
	return func(s *RequestSink) {
		s.client = c
	}
}

// WithTimeout bounds every post, on top of the context deadline
func WithTimeout(d time.Duration) Option {
	return func(s *RequestSink) {
		c := *s.client
		c.Timeout = d
		s.client = &c
	}
}

// WithHeader adds a header to every post, like an Authorization token of the session
func WithHeader(key, value string) Option {
	return func(s *RequestSink) {
		s.header.Add(key, value)
	}
}

// NewRequestSink creates a sink posting to baseURL + DefaultEndpoint
func NewRequestSink(baseURL string, opts ...Option) *RequestSink {
	s := &RequestSink{
		client:   &http.Client{},
		base:     strings.TrimSuffix(baseURL, "/"),
		endpoint: DefaultEndpoint,
		header:   make(http.Header),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns where requests are posted
func (s *RequestSink) URL() string {
	return s.base + s.endpoint
}

// Submit implements types.RequestSink, any status outside 2xx is a rejection
func (s *RequestSink) Submit(ctx context.Context, req types.PermissionRequest) error {
	body, e := json.Marshal(req)
	if e != nil {
		return fmt.Errorf("encode permission request: %w", e)
	}

	r, e := http.NewRequestWithContext(ctx, http.MethodPost, s.URL(), bytes.NewReader(body))
	if e != nil {
		return fmt.Errorf("build permission request: %w", e)
	}
	for key, values := range s.header {
		for _, v := range values {
			r.Header.Add(key, v)
		}
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")

	resp, e := s.client.Do(r)
	if e != nil {
		return fmt.Errorf("post permission request: %w", e)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: %s", types.ErrRequestRejected, resp.Status, strings.TrimSpace(string(msg)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
