// Package retry re-attempts a single Fastly API call on transient HTTP
// failures with a fixed wait between attempts.
//
// The outcome of each attempt falls into one of three states:
//   - 200: done, the response is returned.
//   - 401: terminal, the response is returned without another attempt.
//   - anything else: transient, wait Policy.Wait and call again, at most
//     Policy.MaxRetries times after the first attempt.
//
// Non-200 responses are returned, not turned into errors. A transport error
// from the call is returned immediately and never retried.
package retry

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/thirukguru/cloudwaf-origin-detector/service/fastly"
)

// NoDetails stands in for an empty error body in diagnostics.
const NoDetails = "No additional error message provided"

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Policy controls retry behaviour.
type Policy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int
	// Wait is the fixed delay between attempts.
	Wait time.Duration
	// Sleep defaults to a context-aware timer.
	Sleep Sleeper
	// Logger receives one debug record per retry. Nil disables logging.
	Logger *slog.Logger
}

// Call performs exactly one API request.
type Call func() (*fastly.Response, error)

// Do runs call under the policy and returns the last response obtained.
func Do(ctx context.Context, p Policy, call Call) (*fastly.Response, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	for attempt := 0; ; attempt++ {
		resp, err := call()
		if err != nil {
			return nil, err
		}

		switch resp.StatusCode {
		case http.StatusOK:
			return resp, nil
		case http.StatusUnauthorized:
			p.debug("API call failed with Unauthorized (401), not retrying")
			return resp, nil
		}

		if attempt >= p.MaxRetries {
			return resp, nil
		}

		p.debug("API call failed, retrying",
			"status", resp.StatusCode,
			"details", details(resp),
			"wait", p.Wait,
			"retry", attempt+1,
			"max_retries", p.MaxRetries,
		)
		if err := sleep(ctx, p.Wait); err != nil {
			return resp, err
		}
	}
}

func (p Policy) debug(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Debug(msg, args...)
	}
}

func details(resp *fastly.Response) string {
	if len(resp.Body) == 0 {
		return NoDetails
	}
	return string(resp.Body)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
