package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/tracefetch/pkg/domain/model"
)

func TestEntry_IsFile(t *testing.T) {
	tests := []struct {
		name     string
		typ      model.EntryType
		expected bool
	}{
		{name: "file", typ: model.EntryTypeFile, expected: true},
		{name: "dir", typ: model.EntryTypeDir, expected: false},
		{name: "symlink", typ: "symlink", expected: false},
		{name: "empty", typ: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &model.Entry{Name: "x", Type: tt.typ}
			gt.Value(t, e.IsFile()).Equal(tt.expected)
		})
	}
}

func TestFetchError(t *testing.T) {
	cause := errors.New("unexpected status code 500")

	t.Run("download failure names the file", func(t *testing.T) {
		err := error(&model.FetchError{
			Stage: model.StageDownload,
			Index: 1,
			Name:  "b.rep",
			Err:   cause,
		})
		wrapped := fmt.Errorf("run aborted: %w", err)

		var fe *model.FetchError
		gt.Value(t, errors.As(wrapped, &fe)).Equal(true)
		gt.Value(t, fe.Stage).Equal(model.StageDownload)
		gt.Value(t, fe.Index).Equal(1)
		gt.Value(t, errors.Is(wrapped, cause)).Equal(true)
		gt.String(t, err.Error()).Contains(`file #1 "b.rep"`)
	})

	t.Run("list failure", func(t *testing.T) {
		err := &model.FetchError{Stage: model.StageList, Index: -1, Err: cause}
		gt.String(t, err.Error()).Contains("list failed")
	})
}

func TestDefaultTarget(t *testing.T) {
	target := model.DefaultTarget()
	gt.Value(t, target.String()).Equal("ian-tsien/CSAPP-Labs/malloc-lab/traces")
}
