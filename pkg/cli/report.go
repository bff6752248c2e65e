package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/wirereport/pkg/cli/config"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var (
		apiKey        string
		teamID        string
		start         string
		end           string
		label         string
		days          int
		hidePoweredBy bool
		output        string
		wirespeedCfg  config.Wirespeed
		reportCfg     config.Report
	)

	flags := joinFlags(
		[]cli.Flag{
			apiKeyFlag(&apiKey),
			&cli.StringFlag{
				Name:        "team-id",
				Usage:       "Generate the report for this team of a service provider",
				Sources:     cli.EnvVars("WIREREPORT_TEAM_ID"),
				Destination: &teamID,
			},
			&cli.StringFlag{
				Name:        "start",
				Usage:       "First day of the report window (YYYY-MM-DD or RFC 3339)",
				Destination: &start,
			},
			&cli.StringFlag{
				Name:        "end",
				Usage:       "Last day of the report window (YYYY-MM-DD or RFC 3339)",
				Destination: &end,
			},
			&cli.IntFlag{
				Name:        "days",
				Usage:       "Length of the window ending today, used when --start and --end are omitted",
				Value:       30,
				Destination: &days,
			},
			&cli.StringFlag{
				Name:        "label",
				Usage:       "Period label shown on the report",
				Destination: &label,
			},
			&cli.BoolFlag{
				Name:        "hide-powered-by",
				Usage:       "Hide the powered-by notice of team reports",
				Destination: &hidePoweredBy,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Write the report to this file instead of stdout",
				Destination: &output,
			},
		},
		wirespeedCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Generate a security report as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			reportUC, _, err := newUseCases(&wirespeedCfg, &reportCfg)
			if err != nil {
				return err
			}

			timeframe := model.Timeframe{StartDate: start, EndDate: end, PeriodLabel: label}
			if start == "" && end == "" {
				timeframe = lastDays(time.Now(), days, label)
			}

			ctxlog.From(ctx).Debug("Report command",
				slog.Any("timeframe", timeframe),
				slog.Any("wirespeed", wirespeedCfg),
			)

			report, err := reportUC.Generate(ctx, &model.ReportRequest{
				APIKey:        types.APIKey(apiKey),
				Timeframe:     timeframe,
				TeamID:        types.TeamID(teamID),
				HidePoweredBy: hidePoweredBy,
			})
			if err != nil {
				return err
			}

			return writeOutput(c, output, report)
		},
	}
}

// lastDays returns the window of n days ending on the day of now
func lastDays(now time.Time, n int, label string) model.Timeframe {
	end := now.UTC()
	return model.Timeframe{
		StartDate:   end.AddDate(0, 0, -n).Format(time.DateOnly),
		EndDate:     end.Format(time.DateOnly),
		PeriodLabel: label,
	}
}
