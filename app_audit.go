package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thirukguru/cloudwaf-origin-detector/model"
	"github.com/thirukguru/cloudwaf-origin-detector/service/audit"
	"github.com/thirukguru/cloudwaf-origin-detector/service/fastly"
	"github.com/thirukguru/cloudwaf-origin-detector/service/output"
	"github.com/thirukguru/cloudwaf-origin-detector/service/retry"
	"github.com/thirukguru/cloudwaf-origin-detector/shared/banner"
	"github.com/thirukguru/cloudwaf-origin-detector/shared/logger"
	"github.com/thirukguru/cloudwaf-origin-detector/shared/spinner"
)

// streams are the process outputs. Terminal, when non-nil and interactive,
// receives the banner and progress spinner.
type streams struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Terminal *os.File
}

// retrySleep overrides the retry wait in tests.
var retrySleep retry.Sleeper

func runAudit(ctx context.Context, cfg model.AuditConfig, versionInfo model.VersionInfo, std streams) error {
	log := logger.New(std.Stderr, cfg.Verbose)
	log.Debug("starting audit", "config", fmt.Sprintf("%+v", cfg.Redacted()))

	var progress output.Progress
	decorate := std.Terminal != nil && !cfg.Verbose && banner.ShouldDraw(std.Terminal)
	if decorate {
		banner.DrawBannerTitle(std.Terminal, versionInfo)
	}
	if decorate && !cfg.NoProgress {
		spinner.StartSpinner(std.Terminal)
		defer spinner.StopSpinner()
		progress = spinner.Progress{}
	}

	client := fastly.NewService(fastly.Config{
		BaseURL:   cfg.APIURL,
		Token:     cfg.Token,
		UserAgent: "cloudwaf-origin-detector/" + versionInfo.Version,
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
	})

	auditor := audit.NewService(client, audit.Config{
		Marker: cfg.Marker,
		Retry: retry.Policy{
			MaxRetries: cfg.MaxRetries,
			Wait:       cfg.RetryWait,
			Sleep:      retrySleep,
		},
		RetryVersionLookup: cfg.RetryVersionLookup,
		Logger:             log,
		OnCustomer: func(customerID string) {
			spinner.SetSuffix("Auditing customer " + customerID + "...")
		},
	})

	outputService := output.NewService(cfg.Output, std.Stdout, progress)

	if _, err := auditor.Run(ctx, cfg.CustomerIDs, outputService.Report); err != nil {
		return fmt.Errorf("audit aborted: %w", err)
	}
	return outputService.Flush()
}
