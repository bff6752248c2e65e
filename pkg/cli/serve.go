package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wirereport/pkg/cli/config"
	controller "github.com/secmon-lab/wirereport/pkg/controller/http"
	"github.com/secmon-lab/wirereport/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		wirespeedCfg config.Wirespeed
		reportCfg    config.Report
	)

	flags := joinFlags(
		serverCfg.Flags(),
		wirespeedCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting wirereport server",
				slog.Any("server", serverCfg),
				slog.Any("wirespeed", wirespeedCfg),
				slog.Any("report", reportCfg),
			)

			reportUC, teamsUC, err := newUseCases(&wirespeedCfg, &reportCfg)
			if err != nil {
				return err
			}

			server := controller.NewServer(ctx, serverCfg.Addr, reportUC, teamsUC)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
				}
				close(errCh)
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err, ok := <-errCh:
				if ok {
					return err
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// newUseCases builds the report and team use cases shared by all commands
func newUseCases(wirespeedCfg *config.Wirespeed, reportCfg *config.Report) (*usecase.Report, *usecase.Teams, error) {
	factory, err := wirespeedCfg.Configure()
	if err != nil {
		return nil, nil, err
	}

	settings, err := reportCfg.Configure()
	if err != nil {
		return nil, nil, err
	}

	reportUC := usecase.NewReport(factory,
		usecase.WithReportSettings(settings),
		usecase.WithAssetConcurrency(wirespeedCfg.AssetConcurrency),
	)
	return reportUC, usecase.NewTeams(factory), nil
}
