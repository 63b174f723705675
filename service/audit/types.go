package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thirukguru/cloudwaf-origin-detector/model"
	"github.com/thirukguru/cloudwaf-origin-detector/service/fastly"
	"github.com/thirukguru/cloudwaf-origin-detector/service/retry"
)

// SkipReason classifies a handled, non-fatal step outcome.
type SkipReason string

const (
	SkipUnauthorized    SkipReason = "unauthorized"
	SkipStatus          SkipReason = "unexpected-status"
	SkipNoActiveVersion SkipReason = "no-active-version"
)

// Skip tells the traversal to move on to the next sibling.
type Skip struct {
	Reason     SkipReason
	StatusCode int
}

func (s *Skip) String() string {
	if s.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d)", s.Reason, s.StatusCode)
	}
	return string(s.Reason)
}

// Reporter receives each match as soon as it is found.
type Reporter func(model.MatchResult) error

// Config controls the traversal.
type Config struct {
	Marker             string
	Retry              retry.Policy
	RetryVersionLookup bool
	Logger             *slog.Logger
	// OnCustomer, when set, is called before each customer is audited.
	OnCustomer func(customerID string)
}

type service struct {
	client        fastly.Service
	marker        string
	policy        retry.Policy
	retryVersions bool
	logger        *slog.Logger
	onCustomer    func(string)
}

// Service walks customers, services, active versions and backends.
type Service interface {
	ListServices(ctx context.Context, customerID string) ([]model.Service, *Skip, error)
	ActiveVersion(ctx context.Context, serviceID string) (int, *Skip, error)
	ListBackends(ctx context.Context, serviceID string, version int) ([]model.Backend, *Skip, error)
	Run(ctx context.Context, customerIDs []string, report Reporter) (model.Summary, error)
}
