package model

import "fmt"

// FetchStage identifies where a fetch run failed
type FetchStage string

const (
	StagePrepare  FetchStage = "prepare"
	StageList     FetchStage = "list"
	StageDownload FetchStage = "download"
	StageWrite    FetchStage = "write"
)

// SavedFile is a file written by a fetch run
type SavedFile struct {
	Name     string
	Location string // Local path or object URL
	Size     int64
}

// FetchReport summarizes a completed fetch run
type FetchReport struct {
	RunID      string
	Target     Target
	Listed     int
	Saved      []SavedFile
	Skipped    []string
	TotalBytes int64
}

// FetchError is returned by a fetch run that aborted. Files saved before the
// failure are not removed.
type FetchError struct {
	Stage FetchStage
	Index int // Position in the listing, -1 for prepare and list
	Name  string
	URL   string
	Saved []SavedFile
	Err   error
}

func (e *FetchError) Error() string {
	switch e.Stage {
	case StageDownload, StageWrite:
		return fmt.Sprintf("%s failed for file #%d %q: %v", e.Stage, e.Index, e.Name, e.Err)
	default:
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
