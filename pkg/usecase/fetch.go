package usecase

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/tracefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/tracefetch/pkg/domain/model"
)

type fetchUseCase struct {
	client   interfaces.ContentsClient
	storage  interfaces.Storage
	recorder interfaces.Recorder
	console  io.Writer
}

// FetchOption configures the fetch use case
type FetchOption func(*fetchUseCase)

// WithConsole sets where progress lines are printed. Defaults to stdout.
func WithConsole(w io.Writer) FetchOption {
	return func(uc *fetchUseCase) {
		if w != nil {
			uc.console = w
		}
	}
}

// WithRecorder sets a metrics recorder
func WithRecorder(r interfaces.Recorder) FetchOption {
	return func(uc *fetchUseCase) {
		uc.recorder = r
	}
}

// NewFetch creates a new instance of FetchUseCase
func NewFetch(client interfaces.ContentsClient, storage interfaces.Storage, opts ...FetchOption) interfaces.FetchUseCase {
	uc := &fetchUseCase{
		client:   client,
		storage:  storage,
		recorder: nopRecorder{},
		console:  os.Stdout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Fetch lists target and saves every file entry in listing order. The first
// failure aborts the run and files saved so far stay in place.
func (uc *fetchUseCase) Fetch(ctx context.Context, target model.Target) (*model.FetchReport, error) {
	report := &model.FetchReport{
		RunID:  uuid.NewString(),
		Target: target,
	}

	logger := ctxlog.From(ctx).With("run_id", report.RunID)
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Fetching directory",
		"owner", target.Owner,
		"repo", target.Repo,
		"path", target.Path,
	)

	if err := uc.storage.Prepare(ctx); err != nil {
		return nil, uc.fail(ctx, &model.FetchError{Stage: model.StagePrepare, Index: -1, Err: err})
	}

	entries, err := uc.client.ListDirectory(ctx, target.Owner, target.Repo, target.Path)
	if err != nil {
		return nil, uc.fail(ctx, &model.FetchError{Stage: model.StageList, Index: -1, Err: err})
	}
	report.Listed = len(entries)

	logger.Debug("Listed directory", "entries", len(entries))

	announce := color.New(color.FgCyan)
	for i, entry := range entries {
		if !entry.IsFile() {
			logger.Debug("Skipping non-file entry", "name", entry.Name, "type", entry.Type)
			report.Skipped = append(report.Skipped, entry.Name)
			uc.recorder.FileSkipped()
			continue
		}

		_, _ = announce.Fprintf(uc.console, "Downloading %s...\n", entry.Name)

		saved, err := uc.fetchFile(ctx, i, entry)
		if err != nil {
			err.Saved = report.Saved
			return nil, uc.fail(ctx, err)
		}

		report.Saved = append(report.Saved, *saved)
		report.TotalBytes += saved.Size
	}

	_, _ = color.New(color.FgGreen).Fprintln(uc.console, "Done!")

	logger.Info("Fetch completed",
		"listed", report.Listed,
		"saved", len(report.Saved),
		"skipped", len(report.Skipped),
		"total_bytes", report.TotalBytes,
	)

	return report, nil
}

func (uc *fetchUseCase) fetchFile(ctx context.Context, index int, entry *model.Entry) (*model.SavedFile, *model.FetchError) {
	start := time.Now()

	data, err := uc.client.Download(ctx, entry.DownloadURL)
	if err != nil {
		return nil, &model.FetchError{
			Stage: model.StageDownload,
			Index: index,
			Name:  entry.Name,
			URL:   entry.DownloadURL,
			Err:   err,
		}
	}

	location, err := uc.storage.Put(ctx, entry.Name, data)
	if err != nil {
		return nil, &model.FetchError{
			Stage: model.StageWrite,
			Index: index,
			Name:  entry.Name,
			URL:   entry.DownloadURL,
			Err:   err,
		}
	}

	elapsed := time.Since(start)
	uc.recorder.FileSaved(int64(len(data)), elapsed.Seconds())

	ctxlog.From(ctx).Debug("Saved file",
		"name", entry.Name,
		"location", location,
		"size_bytes", len(data),
		"elapsed", elapsed,
	)

	return &model.SavedFile{
		Name:     entry.Name,
		Location: location,
		Size:     int64(len(data)),
	}, nil
}

func (uc *fetchUseCase) fail(ctx context.Context, err *model.FetchError) error {
	uc.recorder.Failed(err.Stage)

	ctxlog.From(ctx).Error("Fetch aborted",
		"stage", err.Stage,
		"index", err.Index,
		"name", err.Name,
		"saved", len(err.Saved),
		"error", err.Err,
	)
	return err
}

type nopRecorder struct{}

func (nopRecorder) FileSaved(int64, float64) {}
func (nopRecorder) FileSkipped()             {}
func (nopRecorder) Failed(model.FetchStage)  {}
