package model

import "time"

// Reference defaults for an audit run.
const (
	DefaultAPIURL    = "https://api.fastly.com"
	DefaultMarker    = "sigscicloudwaf.com"
	DefaultRetries   = 3
	DefaultRetryWait = 10 * time.Second
	DefaultTimeout   = 30 * time.Second
	DefaultOutput    = "text"
)

// AuditConfig is the resolved configuration for one run.
type AuditConfig struct {
	Token       string
	CustomerIDs []string
	Verbose     bool
	APIURL      string
	Marker      string
	MaxRetries  int
	RetryWait   time.Duration
	Timeout     time.Duration
	// RateLimit is the maximum number of API requests per second. Zero disables limiting.
	RateLimit float64
	// RetryVersionLookup wraps the version listing call in the retry policy.
	// The version lookup is a single attempt when false.
	RetryVersionLookup bool
	Output             string
	NoProgress         bool
}

// DefaultAuditConfig returns the configuration used when nothing overrides it.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		APIURL:     DefaultAPIURL,
		Marker:     DefaultMarker,
		MaxRetries: DefaultRetries,
		RetryWait:  DefaultRetryWait,
		Timeout:    DefaultTimeout,
		Output:     DefaultOutput,
	}
}

// Redacted returns a copy safe to log: the token is masked.
func (c AuditConfig) Redacted() AuditConfig {
	if c.Token != "" {
		c.Token = "[redacted]"
	}
	return c
}
