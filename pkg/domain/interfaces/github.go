package interfaces

import (
	"context"

	"github.com/m-mizutani/tracefetch/pkg/domain/model"
)

// ContentsClient defines read operations against a repository hosting API
type ContentsClient interface {
	// ListDirectory returns the entries of a directory in listing order
	ListDirectory(ctx context.Context, owner, repo, path string) ([]*model.Entry, error)

	// Download retrieves the raw bytes behind a direct download address
	Download(ctx context.Context, url string) ([]byte, error)
}
