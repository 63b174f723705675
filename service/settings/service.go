// Package settings merges defaults, the YAML config file, the environment
// and command line flags into a validated model.AuditConfig.
package settings

import (
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/thirukguru/cloudwaf-origin-detector/model"
	"gopkg.in/yaml.v3"
)

var outputFormats = []string{"text", "json", "table"}

// NewService creates a settings service reading the process environment and filesystem.
func NewService() Service {
	return &service{getenv: os.Getenv, readFile: os.ReadFile}
}

// Load applies, in increasing precedence: defaults, the config file named by
// --config-path, environment variables, and flags set on the command line.
func (s *service) Load(flags model.Flags) (model.AuditConfig, error) {
	cfg := model.DefaultAuditConfig()

	if strings.TrimSpace(flags.ConfigPath) != "" {
		if err := s.applyFile(&cfg, flags.ConfigPath); err != nil {
			return model.AuditConfig{}, err
		}
	}

	if v := strings.TrimSpace(s.getenv(EnvToken)); v != "" {
		cfg.Token = v
	}
	if v := strings.TrimSpace(s.getenv(EnvAPIURL)); v != "" {
		cfg.APIURL = v
	}

	applyFlags(&cfg, flags)

	if err := Validate(cfg); err != nil {
		return model.AuditConfig{}, err
	}
	return cfg, nil
}

func (s *service) applyFile(cfg *model.AuditConfig, path string) error {
	raw, err := s.readFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Token != nil {
		cfg.Token = strings.TrimSpace(*fc.Token)
	}
	if len(fc.CustomerIDs) > 0 {
		cfg.CustomerIDs = append([]string(nil), fc.CustomerIDs...)
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.APIURL != nil {
		cfg.APIURL = *fc.APIURL
	}
	if fc.Marker != nil {
		cfg.Marker = *fc.Marker
	}
	if fc.MaxRetries != nil {
		cfg.MaxRetries = *fc.MaxRetries
	}
	if fc.RetryWait != nil {
		d, err := time.ParseDuration(*fc.RetryWait)
		if err != nil {
			return fmt.Errorf("%w: retry_wait: %v", ErrInvalidConfig, err)
		}
		cfg.RetryWait = d
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout: %v", ErrInvalidConfig, err)
		}
		cfg.Timeout = d
	}
	if fc.RateLimit != nil {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.RetryVersionLookup != nil {
		cfg.RetryVersionLookup = *fc.RetryVersionLookup
	}
	if fc.Output != nil {
		cfg.Output = *fc.Output
	}
	return nil
}

func applyFlags(cfg *model.AuditConfig, flags model.Flags) {
	if flags.IsSet("fastly_token") {
		cfg.Token = strings.TrimSpace(flags.FastlyToken)
	}
	if len(flags.CustomerIDs) > 0 {
		cfg.CustomerIDs = flags.CustomerIDs
	}
	if flags.IsSet("verbose") {
		cfg.Verbose = flags.Verbose
	}
	if flags.IsSet("api-url") {
		cfg.APIURL = flags.APIURL
	}
	if flags.IsSet("marker") {
		cfg.Marker = flags.Marker
	}
	if flags.IsSet("max-retries") {
		cfg.MaxRetries = flags.MaxRetries
	}
	if flags.IsSet("retry-wait") {
		cfg.RetryWait = flags.RetryWait
	}
	if flags.IsSet("timeout") {
		cfg.Timeout = flags.Timeout
	}
	if flags.IsSet("rate-limit") {
		cfg.RateLimit = flags.RateLimit
	}
	if flags.IsSet("retry-version-lookup") {
		cfg.RetryVersionLookup = flags.RetryVersionLookup
	}
	if flags.IsSet("output") {
		cfg.Output = flags.Output
	}
	cfg.NoProgress = flags.NoProgress
}

// Validate checks a resolved configuration.
func Validate(cfg model.AuditConfig) error {
	if cfg.Token == "" {
		return ErrMissingToken
	}
	if len(cfg.CustomerIDs) == 0 {
		return ErrNoCustomers
	}
	if cfg.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries must not be negative, got %d", ErrInvalidConfig, cfg.MaxRetries)
	}
	if cfg.RetryWait < 0 {
		return fmt.Errorf("%w: retry wait must not be negative, got %s", ErrInvalidConfig, cfg.RetryWait)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, cfg.Timeout)
	}
	if cfg.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must not be negative, got %v", ErrInvalidConfig, cfg.RateLimit)
	}
	if strings.TrimSpace(cfg.Marker) == "" {
		return fmt.Errorf("%w: marker must not be empty", ErrInvalidConfig)
	}
	if !slices.Contains(outputFormats, cfg.Output) {
		return fmt.Errorf("%w: unknown output format %q (want one of %s)", ErrInvalidConfig, cfg.Output, strings.Join(outputFormats, ", "))
	}
	u, err := url.Parse(cfg.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api url must be an absolute http(s) URL, got %q", ErrInvalidConfig, cfg.APIURL)
	}
	return nil
}
