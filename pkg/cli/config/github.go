package config

import (
	"github.com/m-mizutani/tracefetch/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/tracefetch/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token  string `masq:"secret"`
	APIURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token to raise the API rate limit (optional)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("TRACEFETCH_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL",
			Value:       "https://api.github.com",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("TRACEFETCH_GITHUB_API_URL"),
		},
	}
}

// NewClient creates a contents client from the configuration
func (c *GitHub) NewClient() (interfaces.ContentsClient, error) {
	opts := []githubinfra.Option{
		githubinfra.WithBaseURL(c.APIURL),
	}
	if c.Token != "" {
		opts = append(opts, githubinfra.WithToken(c.Token))
	}
	return githubinfra.NewClient(opts...)
}
