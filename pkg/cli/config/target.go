package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tracefetch/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Target holds the remote directory and local destination
type Target struct {
	Owner      string
	Repo       string
	Path       string
	SaveDir    string
	ConfigFile string
}

type targetFile struct {
	Owner   string `toml:"owner"`
	Repo    string `toml:"repo"`
	Path    string `toml:"path"`
	SaveDir string `toml:"save_dir"`
}

// Flags returns CLI flags for target configuration
func (c *Target) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner",
			Value:       model.DefaultOwner,
			Destination: &c.Owner,
			Sources:     cli.EnvVars("TRACEFETCH_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Value:       model.DefaultRepo,
			Destination: &c.Repo,
			Sources:     cli.EnvVars("TRACEFETCH_REPO"),
		},
		&cli.StringFlag{
			Name:        "path",
			Usage:       "Directory path within the repository",
			Value:       model.DefaultPath,
			Destination: &c.Path,
			Sources:     cli.EnvVars("TRACEFETCH_PATH"),
		},
		&cli.StringFlag{
			Name:        "save-dir",
			Aliases:     []string{"o"},
			Usage:       "Local directory, or gs://bucket/prefix, to save files into",
			Value:       model.DefaultSaveDir,
			Destination: &c.SaveDir,
			Sources:     cli.EnvVars("TRACEFETCH_SAVE_DIR"),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file with owner, repo, path and save_dir",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("TRACEFETCH_CONFIG"),
		},
	}
}

// Resolve applies values from ConfigFile. Flags and environment variables
// that were set explicitly take precedence over the file.
func (c *Target) Resolve(cmd *cli.Command) error {
	if c.ConfigFile == "" {
		return nil
	}

	raw, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigFile))
	}

	var file targetFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigFile))
	}

	apply := func(name, value string, dst *string) {
		if value != "" && !cmd.IsSet(name) {
			*dst = value
		}
	}
	apply("owner", file.Owner, &c.Owner)
	apply("repo", file.Repo, &c.Repo)
	apply("path", file.Path, &c.Path)
	apply("save-dir", file.SaveDir, &c.SaveDir)

	return nil
}

// Target returns the remote directory to fetch
func (c *Target) Target() model.Target {
	return model.Target{
		Owner: c.Owner,
		Repo:  c.Repo,
		Path:  c.Path,
	}
}
