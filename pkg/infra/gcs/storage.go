package gcs

import (
	"context"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tracefetch/pkg/domain/interfaces"
	"google.golang.org/api/option"
)

// Scheme is the save-dir prefix selecting Cloud Storage
const Scheme = "gs://"

type gcsStorage struct {
	client *storage.Client
	bucket string
	prefix string
}

// IsURL reports whether dir names a Cloud Storage location
func IsURL(dir string) bool {
	return strings.HasPrefix(dir, Scheme)
}

// ParseURL splits gs://bucket/prefix into bucket and prefix
func ParseURL(dir string) (bucket, prefix string, err error) {
	if !IsURL(dir) {
		return "", "", goerr.New("not a gs:// URL", goerr.V("dir", dir))
	}

	rest := strings.TrimPrefix(dir, Scheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", goerr.New("bucket name is empty", goerr.V("dir", dir))
	}

	return bucket, strings.Trim(prefix, "/"), nil
}

// New creates a Storage that writes objects under gs://bucket/prefix
func New(ctx context.Context, dir string, opts ...option.ClientOption) (interfaces.Storage, error) {
	bucket, prefix, err := ParseURL(dir)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return &gcsStorage{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Prepare checks that the bucket is reachable. Object stores have no directories to create.
func (s *gcsStorage) Prepare(ctx context.Context) error {
	attrs, err := s.client.Bucket(s.bucket).Attrs(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to access bucket", goerr.V("bucket", s.bucket))
	}

	ctxlog.From(ctx).Debug("Bucket ready", "bucket", attrs.Name, "location", attrs.Location)
	return nil
}

// Close releases the underlying Cloud Storage client
func (s *gcsStorage) Close() error {
	if err := s.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Cloud Storage client")
	}
	return nil
}

// Put uploads data as prefix/name, replacing an existing object
func (s *gcsStorage) Put(ctx context.Context, name string, data []byte) (string, error) {
	objName := name
	if s.prefix != "" {
		objName = path.Join(s.prefix, name)
	}

	w := s.client.Bucket(s.bucket).Object(objName).NewWriter(ctx)
	w.ContentType = "application/octet-stream"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", objName),
		)
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize object",
			goerr.V("bucket", s.bucket),
			goerr.V("object", objName),
		)
	}

	return Scheme + s.bucket + "/" + objName, nil
}
