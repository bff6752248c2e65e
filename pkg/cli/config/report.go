package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Report holds report presentation configuration
type Report struct {
	ConfigPath string
}

// Flags returns CLI flags for Report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "report-config",
			Usage:       "Path to a YAML file with report settings (product name, default logo, case response, theme)",
			Category:    "Report",
			Sources:     cli.EnvVars("WIREREPORT_REPORT_CONFIG"),
			Destination: &r.ConfigPath,
		},
	}
}

// Configure returns the report settings. Without a config file the built-in
// settings are used.
func (r *Report) Configure() (*model.ReportSettings, error) {
	if r.ConfigPath == "" {
		return model.DefaultReportSettings(), nil
	}

	settings, err := LoadReportSettings(r.ConfigPath)
	if err != nil {
		return nil, err
	}
	return settings.WithDefaults(), nil
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config_path", r.ConfigPath),
	)
}

// LoadReportSettings loads report settings from YAML file
func LoadReportSettings(path string) (*model.ReportSettings, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var settings model.ReportSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	if err := settings.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return &settings, nil
}
