package gcs_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"google.golang.org/api/option"

	"github.com/m-mizutani/tracefetch/pkg/infra/gcs"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name       string
		dir        string
		wantBucket string
		wantPrefix string
		wantErr    bool
	}{
		{name: "bucket only", dir: "gs://my-bucket", wantBucket: "my-bucket"},
		{name: "bucket with slash", dir: "gs://my-bucket/", wantBucket: "my-bucket"},
		{name: "bucket and prefix", dir: "gs://my-bucket/labs/traces/", wantBucket: "my-bucket", wantPrefix: "labs/traces"},
		{name: "empty bucket", dir: "gs:///traces", wantErr: true},
		{name: "local path", dir: "traces", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, prefix, err := gcs.ParseURL(tt.dir)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, bucket).Equal(tt.wantBucket)
			gt.Value(t, prefix).Equal(tt.wantPrefix)
		})
	}
}

func TestIsURL(t *testing.T) {
	gt.Value(t, gcs.IsURL("gs://bucket/traces")).Equal(true)
	gt.Value(t, gcs.IsURL("traces")).Equal(false)
	gt.Value(t, gcs.IsURL("/tmp/gs://x")).Equal(false)
}

func TestStorage_Close(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	s, err := gcs.New(ctx, "gs://bucket/traces",
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication(),
	)
	gt.NoError(t, err)

	closer, ok := s.(io.Closer)
	gt.Value(t, ok).Equal(true)
	gt.NoError(t, closer.Close())
}

func TestStorage_PutWithRealBucket(t *testing.T) {
	bucket := os.Getenv("TEST_GCS_BUCKET")
	if bucket == "" {
		t.Skip("TEST_GCS_BUCKET is not set")
	}

	ctx := context.Background()
	prefix := "tracefetch-test/" + uuid.NewString()

	s, err := gcs.New(ctx, "gs://"+bucket+"/"+prefix)
	gt.NoError(t, err)
	gt.NoError(t, s.Prepare(ctx))

	location, err := s.Put(ctx, "foo.rep", []byte("abc"))
	gt.NoError(t, err)
	gt.Value(t, location).Equal("gs://" + bucket + "/" + prefix + "/foo.rep")
	defer func() {
		_ = s.(io.Closer).Close() // Error ignored in test cleanup
	}()

	client, err := storage.NewClient(ctx)
	gt.NoError(t, err)
	defer client.Close()

	obj := client.Bucket(bucket).Object(prefix + "/foo.rep")
	defer func() {
		_ = obj.Delete(ctx) // Error ignored in test cleanup
	}()

	r, err := obj.NewReader(ctx)
	gt.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal("abc")
}
