package settings

import (
	"errors"

	"github.com/thirukguru/cloudwaf-origin-detector/model"
)

// Environment variables consulted when the flags leave a value unset.
const (
	EnvToken  = "FASTLY_API_TOKEN"
	EnvAPIURL = "FASTLY_API_URL"
)

var (
	// ErrMissingToken is returned when no API token was supplied by any source.
	ErrMissingToken = errors.New("a Fastly API token is required (--fastly_token or " + EnvToken + ")")
	// ErrNoCustomers is returned when no customer id was supplied by any source.
	ErrNoCustomers = errors.New("at least one customer id is required (--customer_ids)")
	// ErrInvalidConfig wraps every other validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish
// "absent" from a zero value.
type fileConfig struct {
	Token              *string  `yaml:"fastly_token"`
	CustomerIDs        []string `yaml:"customer_ids"`
	Verbose            *bool    `yaml:"verbose"`
	APIURL             *string  `yaml:"api_url"`
	Marker             *string  `yaml:"marker"`
	MaxRetries         *int     `yaml:"max_retries"`
	RetryWait          *string  `yaml:"retry_wait"`
	Timeout            *string  `yaml:"timeout"`
	RateLimit          *float64 `yaml:"rate_limit"`
	RetryVersionLookup *bool    `yaml:"retry_version_lookup"`
	Output             *string  `yaml:"output"`
}

type service struct {
	getenv   func(string) string
	readFile func(string) ([]byte, error)
}

// Service resolves the configuration for a run.
type Service interface {
	Load(flags model.Flags) (model.AuditConfig, error)
}
