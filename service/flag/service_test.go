package flag

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func resetFlagState(t *testing.T, args []string) func() {
	t.Helper()
	oldCommandLine := pflag.CommandLine
	oldArgs := os.Args
	pflag.CommandLine = pflag.NewFlagSet("test", pflag.ContinueOnError)
	os.Args = append([]string{"cloudwaf-origin-detector"}, args...)
	return func() {
		pflag.CommandLine = oldCommandLine
		os.Args = oldArgs
	}
}

func TestGetParsedFlagsReferenceInvocation(t *testing.T) {
	cleanup := resetFlagState(t, []string{
		"--fastly_token", "tok",
		"--customer_ids", "1000", "2000", "3000",
		"--verbose",
	})
	defer cleanup()

	flags, err := NewService().GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.FastlyToken != "tok" || !flags.Verbose {
		t.Fatalf("unexpected token/verbose: %+v", flags)
	}
	if len(flags.CustomerIDs) != 3 || flags.CustomerIDs[0] != "1000" || flags.CustomerIDs[2] != "3000" {
		t.Fatalf("unexpected customer ids: %v", flags.CustomerIDs)
	}
	if !flags.IsSet("fastly_token") || !flags.IsSet("customer_ids") || flags.IsSet("marker") {
		t.Fatalf("unexpected changed set: %v", flags.Changed)
	}
}

func TestGetParsedFlagsCommaSeparatedAndRepeated(t *testing.T) {
	cleanup := resetFlagState(t, []string{
		"--customer_ids", "a, b",
		"--customer_ids", "c",
		"--output", "json",
		"--max-retries", "5",
		"--retry-wait", "2s",
		"--timeout", "5s",
		"--rate-limit", "2.5",
		"--retry-version-lookup",
		"--api-url", "http://localhost:8080",
		"--marker", "example.net",
		"--config-path", "/tmp/detector.yaml",
		"--no-progress",
	})
	defer cleanup()

	flags, err := NewService().GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if len(flags.CustomerIDs) != 3 || flags.CustomerIDs[0] != "a" || flags.CustomerIDs[1] != "b" || flags.CustomerIDs[2] != "c" {
		t.Fatalf("unexpected customer ids: %v", flags.CustomerIDs)
	}
	if flags.Output != "json" || flags.MaxRetries != 5 || flags.RetryWait != 2*time.Second || flags.Timeout != 5*time.Second {
		t.Fatalf("unexpected tuning flags: %+v", flags)
	}
	if flags.RateLimit != 2.5 || !flags.RetryVersionLookup || !flags.NoProgress {
		t.Fatalf("unexpected behavior flags: %+v", flags)
	}
	if flags.APIURL != "http://localhost:8080" || flags.Marker != "example.net" || flags.ConfigPath != "/tmp/detector.yaml" {
		t.Fatalf("unexpected endpoint flags: %+v", flags)
	}
}

func TestGetParsedFlagsDefaults(t *testing.T) {
	cleanup := resetFlagState(t, nil)
	defer cleanup()

	flags, err := NewService().GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.APIURL != "https://api.fastly.com" || flags.Marker != "sigscicloudwaf.com" {
		t.Fatalf("unexpected endpoint defaults: %+v", flags)
	}
	if flags.MaxRetries != 3 || flags.RetryWait != 10*time.Second || flags.Timeout != 30*time.Second {
		t.Fatalf("unexpected retry defaults: %+v", flags)
	}
	if flags.Output != "text" || flags.Verbose || flags.RetryVersionLookup || flags.RateLimit != 0 {
		t.Fatalf("unexpected defaults: %+v", flags)
	}
	if len(flags.CustomerIDs) != 0 || len(flags.Changed) != 0 {
		t.Fatalf("expected no ids and no changed flags: %+v", flags)
	}
}
