package config

import "github.com/urfave/cli/v3"

// Metrics holds Prometheus Pushgateway configuration
type Metrics struct {
	PushgatewayURL string
	Job            string
}

// Flags returns CLI flags for metrics configuration
func (c *Metrics) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "pushgateway-url",
			Usage:       "Prometheus Pushgateway URL; metrics are pushed after each run when set",
			Destination: &c.PushgatewayURL,
			Sources:     cli.EnvVars("TRACEFETCH_PUSHGATEWAY_URL"),
		},
		&cli.StringFlag{
			Name:        "metrics-job",
			Usage:       "Job name used when pushing metrics",
			Value:       "tracefetch",
			Destination: &c.Job,
			Sources:     cli.EnvVars("TRACEFETCH_METRICS_JOB"),
		},
	}
}

// Enabled reports whether metrics should be pushed
func (c *Metrics) Enabled() bool {
	return c.PushgatewayURL != ""
}
