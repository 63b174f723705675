package fastly

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Request headers sent on every call.
const (
	HeaderAPIKey = "Fastly-Key"
	acceptJSON   = "application/json"
)

// Config controls the API client.
type Config struct {
	BaseURL   string
	Token     string
	UserAgent string
	// Timeout bounds each request, including reading the body.
	Timeout time.Duration
	// RateLimit caps requests per second. Zero means unlimited.
	RateLimit float64
	// HTTPClient overrides the client built from Timeout, mostly for tests.
	HTTPClient *http.Client
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the call succeeded.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode == http.StatusOK
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

type service struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// Service issues authenticated GET requests against the Fastly API.
type Service interface {
	Get(ctx context.Context, path string) (*Response, error)
}
