// Package flag parses the command line into model.Flags.
package flag

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/cloudwaf-origin-detector/model"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
//
// --customer_ids takes one or more ids: comma-separated values, repeated
// flags and trailing positional arguments are all collected, in order.
func (s *service) GetParsedFlags() (model.Flags, error) {
	token := pflag.String("fastly_token", "", "Fastly API token (or FASTLY_API_TOKEN)")
	customerIDs := pflag.StringSlice("customer_ids", nil, "Customer IDs for Fastly services")
	verbose := pflag.Bool("verbose", false, "Enable verbose output for debugging")
	apiURL := pflag.String("api-url", model.DefaultAPIURL, "Fastly API base URL")
	marker := pflag.String("marker", model.DefaultMarker, "Backend address substring identifying the WAF origin")
	maxRetries := pflag.Int("max-retries", model.DefaultRetries, "Retries after the first attempt for transient API failures")
	retryWait := pflag.Duration("retry-wait", model.DefaultRetryWait, "Fixed wait between retries")
	timeout := pflag.Duration("timeout", model.DefaultTimeout, "Timeout for each API request")
	rateLimit := pflag.Float64("rate-limit", 0, "Maximum API requests per second (0 = unlimited)")
	retryVersions := pflag.Bool("retry-version-lookup", false, "Retry the active version lookup like the other API calls")
	output := pflag.StringP("output", "o", model.DefaultOutput, "Output format (text, json, or table)")
	configPath := pflag.String("config-path", "", "Path to a YAML config file")
	noProgress := pflag.Bool("no-progress", false, "Disable the progress spinner")
	version := pflag.BoolP("version", "v", false, "Show version information")

	pflag.Parse()

	ids := make([]string, 0, len(*customerIDs)+pflag.NArg())
	for _, id := range append(*customerIDs, pflag.Args()...) {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}

	changed := map[string]bool{}
	pflag.Visit(func(f *pflag.Flag) {
		changed[f.Name] = true
	})

	flags := model.Flags{
		FastlyToken:        *token,
		CustomerIDs:        ids,
		Verbose:            *verbose,
		APIURL:             *apiURL,
		Marker:             *marker,
		MaxRetries:         *maxRetries,
		RetryWait:          *retryWait,
		Timeout:            *timeout,
		RateLimit:          *rateLimit,
		RetryVersionLookup: *retryVersions,
		Output:             *output,
		ConfigPath:         *configPath,
		NoProgress:         *noProgress,
		Version:            *version,
		Changed:            changed,
	}

	return flags, nil
}
