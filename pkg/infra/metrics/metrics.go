package metrics

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tracefetch/pkg/domain/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Recorder collects per-run fetch metrics in its own registry
type Recorder struct {
	registry *prometheus.Registry

	FilesSaved       prometheus.Counter
	FilesSkipped     prometheus.Counter
	BytesWritten     prometheus.Counter
	Failures         *prometheus.CounterVec
	DownloadDuration prometheus.Histogram
}

// NewRecorder creates a Recorder with all collectors registered
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		FilesSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracefetch_files_saved_total",
			Help: "Number of files downloaded and written",
		}),
		FilesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracefetch_files_skipped_total",
			Help: "Number of listing entries skipped because they are not files",
		}),
		BytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracefetch_bytes_written_total",
			Help: "Total bytes written",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracefetch_failures_total",
			Help: "Aborted runs by stage",
		}, []string{"stage"}),
		DownloadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tracefetch_download_duration_seconds",
			Help:    "Time spent downloading and writing a single file",
			Buckets: prometheus.DefBuckets,
		}),
	}

	r.registry.MustRegister(
		r.FilesSaved,
		r.FilesSkipped,
		r.BytesWritten,
		r.Failures,
		r.DownloadDuration,
	)

	return r
}

func (r *Recorder) FileSaved(size int64, seconds float64) {
	r.FilesSaved.Inc()
	r.BytesWritten.Add(float64(size))
	r.DownloadDuration.Observe(seconds)
}

func (r *Recorder) FileSkipped() {
	r.FilesSkipped.Inc()
}

func (r *Recorder) Failed(stage model.FetchStage) {
	r.Failures.WithLabelValues(string(stage)).Inc()
}

// Push sends the collected metrics to a Prometheus Pushgateway, replacing the group for job
func (r *Recorder) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(r.registry).PushContext(ctx); err != nil {
		return goerr.Wrap(err, "failed to push metrics",
			goerr.V("url", url),
			goerr.V("job", job),
		)
	}
	return nil
}
