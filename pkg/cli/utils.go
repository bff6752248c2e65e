package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

func apiKeyFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "api-key",
		Usage:       "Wirespeed API key",
		Sources:     cli.EnvVars("WIREREPORT_API_KEY"),
		Destination: dst,
	}
}

// writeOutput writes v as indented JSON to path, or to the command writer
// when path is empty
func writeOutput(c *cli.Command, path string, v any) error {
	var w io.Writer = os.Stdout
	if c.Root().Writer != nil {
		w = c.Root().Writer
	}

	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write output", goerr.V("path", path))
	}
	return nil
}
