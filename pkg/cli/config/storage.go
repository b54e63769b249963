package config

import (
	"context"

	"github.com/m-mizutani/tracefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/tracefetch/pkg/infra/gcs"
	"github.com/m-mizutani/tracefetch/pkg/infra/localfs"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Storage holds options for the Cloud Storage backend. They apply only when
// the save directory is a gs:// URL.
type Storage struct {
	GCSEndpoint    string
	GCSCredentials string
}

// Flags returns CLI flags for storage configuration
func (c *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-endpoint",
			Usage:       "Cloud Storage endpoint override",
			Destination: &c.GCSEndpoint,
			Sources:     cli.EnvVars("TRACEFETCH_GCS_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:        "gcs-credentials",
			Usage:       "Path to a service account key file for Cloud Storage",
			Destination: &c.GCSCredentials,
			Sources:     cli.EnvVars("TRACEFETCH_GCS_CREDENTIALS"),
		},
	}
}

// NewStorage returns the backend for saveDir
func (c *Storage) NewStorage(ctx context.Context, saveDir string) (interfaces.Storage, error) {
	if !gcs.IsURL(saveDir) {
		return localfs.New(saveDir), nil
	}

	var opts []option.ClientOption
	if c.GCSEndpoint != "" {
		opts = append(opts, option.WithEndpoint(c.GCSEndpoint))
	}
	if c.GCSCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(c.GCSCredentials))
	}

	return gcs.New(ctx, saveDir, opts...)
}
