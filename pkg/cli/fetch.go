package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tracefetch/pkg/cli/config"
	"github.com/m-mizutani/tracefetch/pkg/infra/metrics"
	"github.com/m-mizutani/tracefetch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdFetch() *cli.Command {
	var (
		targetCfg  config.Target
		githubCfg  config.GitHub
		storageCfg config.Storage
		sentryCfg  config.Sentry
		metricsCfg config.Metrics
	)

	var flags []cli.Flag
	flags = append(flags, targetCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, metricsCfg.Flags()...)

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "List the target directory and save every file in it",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			report, err := sentryCfg.Configure()
			if err != nil {
				return err
			}

			if err := targetCfg.Resolve(c); err != nil {
				return err
			}

			logger.Debug("Configuration loaded",
				slog.Any("target", targetCfg),
				slog.Any("github", githubCfg),
			)

			client, err := githubCfg.NewClient()
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			storage, err := storageCfg.NewStorage(ctx, targetCfg.SaveDir)
			if err != nil {
				return goerr.Wrap(err, "failed to create storage", goerr.V("save_dir", targetCfg.SaveDir))
			}
			if closer, ok := storage.(io.Closer); ok {
				defer func() {
					if err := closer.Close(); err != nil {
						logger.Warn("Failed to close storage", "error", err)
					}
				}()
			}

			recorder := metrics.NewRecorder()
			fetchUC := usecase.NewFetch(client, storage,
				usecase.WithConsole(c.Root().Writer),
				usecase.WithRecorder(recorder),
			)

			_, fetchErr := fetchUC.Fetch(ctx, targetCfg.Target())

			if metricsCfg.Enabled() {
				if err := recorder.Push(ctx, metricsCfg.PushgatewayURL, metricsCfg.Job); err != nil {
					logger.Warn("Failed to push metrics", "error", err)
				}
			}

			if fetchErr != nil {
				report(fetchErr)
				return goerr.Wrap(fetchErr, "failed to fetch directory",
					goerr.V("target", targetCfg.Target().String()),
				)
			}

			return nil
		},
	}
}
