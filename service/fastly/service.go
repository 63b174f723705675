// Package fastly is a minimal read-only client for the Fastly control-plane API.
package fastly

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
)

// NewService creates a Fastly API client.
func NewService(cfg Config) Service {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &service{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.Token,
		userAgent: cfg.UserAgent,
		client:    client,
		limiter:   limiter,
	}
}

// Get performs one GET and reads the whole body. Any HTTP status is returned
// as a Response; only transport failures produce an error.
func (s *service) Get(ctx context.Context, path string) (*Response, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set(HeaderAPIKey, s.token)
	req.Header.Set("Accept", acceptJSON)
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body for %s: %w", path, err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// ServicesPath is the endpoint listing a customer's services.
func ServicesPath(customerID string) string {
	return "/customer/" + url.PathEscape(customerID) + "/services"
}

// VersionsPath is the endpoint listing a service's versions.
func VersionsPath(serviceID string) string {
	return "/service/" + url.PathEscape(serviceID) + "/version"
}

// BackendsPath is the endpoint listing the backends of one service version.
func BackendsPath(serviceID string, version int) string {
	return VersionsPath(serviceID) + "/" + strconv.Itoa(version) + "/backend"
}
