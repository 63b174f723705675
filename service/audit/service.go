// Package audit finds Fastly services whose active version routes to a
// backend matching the WAF origin marker.
package audit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/thirukguru/cloudwaf-origin-detector/model"
	"github.com/thirukguru/cloudwaf-origin-detector/service/fastly"
	"github.com/thirukguru/cloudwaf-origin-detector/service/retry"
)

// NewService creates an auditor over the given API client.
func NewService(client fastly.Service, cfg Config) Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	policy := cfg.Retry
	if policy.Logger == nil {
		policy.Logger = logger
	}
	return &service{
		client:        client,
		marker:        cfg.Marker,
		policy:        policy,
		retryVersions: cfg.RetryVersionLookup,
		logger:        logger,
		onCustomer:    cfg.OnCustomer,
	}
}

// Run audits each customer in order. Skipped customers and services never
// stop the run; only transport faults, malformed responses and reporter
// failures do.
func (s *service) Run(ctx context.Context, customerIDs []string, report Reporter) (model.Summary, error) {
	var sum model.Summary
	for _, customerID := range customerIDs {
		sum.Customers++
		if s.onCustomer != nil {
			s.onCustomer(customerID)
		}
		if err := s.auditCustomer(ctx, customerID, report, &sum); err != nil {
			return sum, err
		}
	}
	s.logger.Debug("audit finished",
		"customers", sum.Customers,
		"customers_skipped", sum.CustomersSkipped,
		"services", sum.Services,
		"services_skipped", sum.ServicesSkipped,
		"backends", sum.Backends,
		"matches", sum.Matches,
	)
	return sum, nil
}

func (s *service) auditCustomer(ctx context.Context, customerID string, report Reporter, sum *model.Summary) error {
	services, skip, err := s.ListServices(ctx, customerID)
	if err != nil {
		return err
	}
	if skip != nil {
		sum.CustomersSkipped++
		s.logger.Debug("skipping customer", "customer_id", customerID, "reason", skip.String())
		return nil
	}

	for _, svc := range services {
		sum.Services++
		match, skip, err := s.auditService(ctx, customerID, svc.ID, sum)
		if err != nil {
			return err
		}
		if skip != nil {
			sum.ServicesSkipped++
			s.logger.Debug("skipping service", "customer_id", customerID, "service_id", svc.ID, "reason", skip.String())
			continue
		}
		if match == nil {
			continue
		}
		sum.Matches++
		s.logger.Debug("service has a backend pointing to the WAF origin",
			"customer_id", customerID, "service_id", svc.ID, "marker", s.marker)
		if err := report(*match); err != nil {
			return fmt.Errorf("failed to report match for service %s: %w", svc.ID, err)
		}
	}
	return nil
}

func (s *service) auditService(ctx context.Context, customerID, serviceID string, sum *model.Summary) (*model.MatchResult, *Skip, error) {
	version, skip, err := s.ActiveVersion(ctx, serviceID)
	if err != nil || skip != nil {
		return nil, skip, err
	}

	backends, skip, err := s.ListBackends(ctx, serviceID, version)
	if err != nil || skip != nil {
		return nil, skip, err
	}

	idx, ok := MatchBackends(backends, s.marker)
	checked := backends
	if ok {
		checked = backends[:idx+1]
	}
	for _, b := range checked {
		s.logger.Debug("checking backend", "hostname", b.Hostname, "service_id", serviceID)
	}
	sum.Backends += len(checked)
	if !ok {
		return nil, nil, nil
	}

	backend := backends[idx]
	return &model.MatchResult{
		CustomerID:      customerID,
		ServiceID:       serviceID,
		Version:         version,
		BackendHostname: backend.Hostname,
		BackendAddress:  backend.Address,
	}, nil, nil
}

// ListServices lists a customer's services with retries.
func (s *service) ListServices(ctx context.Context, customerID string) ([]model.Service, *Skip, error) {
	s.logger.Debug("requesting list of services", "customer_id", customerID)
	path := fastly.ServicesPath(customerID)

	resp, err := s.retried(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if skip := skipFor(resp); skip != nil {
		return nil, skip, nil
	}

	var services []model.Service
	if err := resp.Decode(&services); err != nil {
		return nil, nil, fmt.Errorf("malformed services response for customer %s: %w", customerID, err)
	}
	s.logger.Debug("received services", "count", len(services), "customer_id", customerID)
	return services, nil, nil
}

// ActiveVersion returns the number of the first version marked active, in
// API order. The lookup is a single attempt unless RetryVersionLookup is set.
func (s *service) ActiveVersion(ctx context.Context, serviceID string) (int, *Skip, error) {
	s.logger.Debug("retrieving versions", "service_id", serviceID)
	path := fastly.VersionsPath(serviceID)

	var (
		resp *fastly.Response
		err  error
	)
	if s.retryVersions {
		resp, err = s.retried(ctx, path)
	} else {
		resp, err = s.client.Get(ctx, path)
	}
	if err != nil {
		return 0, nil, err
	}
	if skip := skipFor(resp); skip != nil {
		s.logger.Debug("failed to retrieve versions", "service_id", serviceID, "status", resp.StatusCode)
		return 0, skip, nil
	}

	var versions []model.Version
	if err := resp.Decode(&versions); err != nil {
		return 0, nil, fmt.Errorf("malformed versions response for service %s: %w", serviceID, err)
	}

	number, ok := FindActiveVersion(versions)
	if !ok {
		s.logger.Debug("no active version found", "service_id", serviceID)
		return 0, &Skip{Reason: SkipNoActiveVersion}, nil
	}
	s.logger.Debug("active version", "service_id", serviceID, "version", number)
	return number, nil, nil
}

// ListBackends lists the backends of one service version with retries.
func (s *service) ListBackends(ctx context.Context, serviceID string, version int) ([]model.Backend, *Skip, error) {
	s.logger.Debug("requesting list of backends", "service_id", serviceID, "version", version)
	path := fastly.BackendsPath(serviceID, version)

	resp, err := s.retried(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if skip := skipFor(resp); skip != nil {
		return nil, skip, nil
	}

	var backends []model.Backend
	if err := resp.Decode(&backends); err != nil {
		return nil, nil, fmt.Errorf("malformed backends response for service %s version %d: %w", serviceID, version, err)
	}
	s.logger.Debug("received backends", "count", len(backends), "service_id", serviceID, "version", version)
	return backends, nil, nil
}

func (s *service) retried(ctx context.Context, path string) (*fastly.Response, error) {
	return retry.Do(ctx, s.policy, func() (*fastly.Response, error) {
		return s.client.Get(ctx, path)
	})
}

func skipFor(resp *fastly.Response) *Skip {
	switch {
	case resp.OK():
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return &Skip{Reason: SkipUnauthorized, StatusCode: resp.StatusCode}
	default:
		return &Skip{Reason: SkipStatus, StatusCode: resp.StatusCode}
	}
}

// FindActiveVersion returns the first active version's number. When more
// than one version claims to be active the first one wins.
func FindActiveVersion(versions []model.Version) (int, bool) {
	for _, v := range versions {
		if v.Active {
			return v.Number, true
		}
	}
	return 0, false
}

// MatchBackends returns the index of the first backend whose address
// contains marker.
func MatchBackends(backends []model.Backend, marker string) (int, bool) {
	for i, b := range backends {
		if strings.Contains(b.Address, marker) {
			return i, true
		}
	}
	return -1, false
}
