package config

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tracefetch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string `masq:"secret"`
	Env string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting (optional)",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("TRACEFETCH_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Value:       "default",
			Destination: &c.Env,
			Sources:     cli.EnvVars("TRACEFETCH_SENTRY_ENV"),
		},
	}
}

// Configure initializes the Sentry client. It returns a reporter that sends
// an error and waits for delivery, or a no-op when no DSN is set.
func (c *Sentry) Configure() (func(err error), error) {
	if c.DSN == "" {
		return func(error) {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Env,
		Release:     "tracefetch@" + types.Version,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize Sentry")
	}

	return func(err error) {
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
	}, nil
}
