package interfaces

import (
	"context"

	"github.com/m-mizutani/tracefetch/pkg/domain/model"
)

// FetchUseCase defines the directory fetch operation
type FetchUseCase interface {
	// Fetch lists the target directory and saves every file entry.
	// On failure the returned error is a *model.FetchError.
	Fetch(ctx context.Context, target model.Target) (*model.FetchReport, error)
}

// Recorder receives per-run measurements
type Recorder interface {
	FileSaved(size int64, seconds float64)
	FileSkipped()
	Failed(stage model.FetchStage)
}
