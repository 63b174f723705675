// Package main is the entry point for the cloudwaf-origin-detector application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thirukguru/cloudwaf-origin-detector/model"
	"github.com/thirukguru/cloudwaf-origin-detector/service/flag"
	"github.com/thirukguru/cloudwaf-origin-detector/service/settings"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	if flags.Version {
		fmt.Printf("cloudwaf-origin-detector %s (commit %s, built %s)\n", versionInfo.Version, versionInfo.Commit, versionInfo.Date)
		return nil
	}

	cfg, err := settings.NewService().Load(flags)
	if err != nil {
		return err
	}

	return runAudit(context.Background(), cfg, versionInfo, streams{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Terminal: os.Stderr,
	})
}
