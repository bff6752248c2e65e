package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces"
	"github.com/secmon-lab/wirereport/pkg/service/wirespeed"
	"github.com/urfave/cli/v3"
)

// Wirespeed holds Wirespeed API configuration
type Wirespeed struct {
	URL              string
	Timeout          time.Duration
	AssetConcurrency int
}

// Flags returns CLI flags for Wirespeed configuration
func (w *Wirespeed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "wirespeed-url",
			Usage:       "Wirespeed API base URL",
			Category:    "Wirespeed",
			Value:       wirespeed.DefaultBaseURL,
			Sources:     cli.EnvVars("WIREREPORT_WIRESPEED_URL"),
			Destination: &w.URL,
		},
		&cli.DurationFlag{
			Name:        "wirespeed-timeout",
			Usage:       "Timeout of each Wirespeed API request",
			Category:    "Wirespeed",
			Value:       wirespeed.DefaultTimeout,
			Sources:     cli.EnvVars("WIREREPORT_WIRESPEED_TIMEOUT"),
			Destination: &w.Timeout,
		},
		&cli.IntFlag{
			Name:        "asset-concurrency",
			Usage:       "Maximum concurrent asset lookups per report (0 means unlimited)",
			Category:    "Wirespeed",
			Value:       0,
			Sources:     cli.EnvVars("WIREREPORT_ASSET_CONCURRENCY"),
			Destination: &w.AssetConcurrency,
		},
	}
}

// Validate validates the Wirespeed configuration
func (w *Wirespeed) Validate() error {
	u, err := url.Parse(w.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return goerr.New("invalid Wirespeed API URL", goerr.V("url", w.URL))
	}
	if w.Timeout <= 0 {
		return goerr.New("Wirespeed timeout must be positive", goerr.V("timeout", w.Timeout))
	}
	if w.AssetConcurrency < 0 {
		return goerr.New("asset concurrency must not be negative",
			goerr.V("asset_concurrency", w.AssetConcurrency))
	}
	return nil
}

// Configure returns a factory of Wirespeed clients bound to a caller key
func (w *Wirespeed) Configure() (interfaces.TelemetryFactory, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	return wirespeed.NewFactory(
		wirespeed.WithBaseURL(w.URL),
		wirespeed.WithTimeout(w.Timeout),
	), nil
}

// LogValue returns structured log value
func (w Wirespeed) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", w.URL),
		slog.Duration("timeout", w.Timeout),
		slog.Int("asset_concurrency", w.AssetConcurrency),
	)
}
