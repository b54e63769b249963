package localfs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tracefetch/pkg/domain/interfaces"
)

type storage struct {
	dir string
}

// New creates a Storage that writes files into dir
func New(dir string) interfaces.Storage {
	return &storage{dir: dir}
}

// Prepare creates the output directory. It is a no-op if the directory exists.
func (s *storage) Prepare(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", s.dir))
	}

	ctxlog.From(ctx).Debug("Output directory ready", "dir", s.dir)
	return nil
}

// Put writes data to dir/name, replacing any existing file.
// name is used as given and is not sanitized.
func (s *storage) Put(ctx context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", goerr.Wrap(err, "failed to write file", goerr.V("path", path))
	}

	return path, nil
}
