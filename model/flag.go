package model

import "time"

// Flags represents the command line flags.
type Flags struct {
	FastlyToken        string
	CustomerIDs        []string
	Verbose            bool
	APIURL             string
	Marker             string
	MaxRetries         int
	RetryWait          time.Duration
	Timeout            time.Duration
	RateLimit          float64
	RetryVersionLookup bool
	Output             string
	ConfigPath         string
	NoProgress         bool
	Version            bool

	// Changed records which flags were set explicitly on the command line,
	// keyed by flag name. Only those override the config file and environment.
	Changed map[string]bool
}

// IsSet reports whether the named flag was given on the command line.
func (f Flags) IsSet(name string) bool {
	return f.Changed[name]
}
