package cli

import (
	"context"

	"github.com/secmon-lab/wirereport/pkg/cli/config"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdTeams() *cli.Command {
	var (
		apiKey       string
		output       string
		wirespeedCfg config.Wirespeed
	)

	flags := joinFlags(
		[]cli.Flag{
			apiKeyFlag(&apiKey),
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Write the team list to this file instead of stdout",
				Destination: &output,
			},
		},
		wirespeedCfg.Flags(),
	)

	return &cli.Command{
		Name:  "teams",
		Usage: "List the teams available to an API key",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			_, teamsUC, err := newUseCases(&wirespeedCfg, &config.Report{})
			if err != nil {
				return err
			}

			result, err := teamsUC.ListTeams(ctx, types.APIKey(apiKey))
			if err != nil {
				return err
			}

			return writeOutput(c, output, result)
		},
	}
}
