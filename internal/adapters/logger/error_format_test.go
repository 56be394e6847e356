package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xcscheme/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{"standard error", errors.New("simple error"), []string{"simple error"}},
		{"zerr single error", zerr.New("scheme not found"), []string{"scheme not found"}},
		{
			"zerr wrapped chain",
			zerr.Wrap(zerr.Wrap(errors.New("permission denied"), "failed to write scheme file"), "failed to save scheme"),
			[]string{"failed to save scheme", "failed to write scheme file", "permission denied"},
		},
		{"nil error", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)
			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			var got []string
			for _, e := range entries {
				got = append(got, e.Message)
			}
			assert.Equal(t, tt.wantMessages, got)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.Wrap(zerr.With(zerr.New("inner"), "target_name", "App"), "outer"), "scheme", "Main")

	entries := logger.CollectErrorEntriesExported(err)
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "Main", entries[0].Metadata["scheme"])
		assert.Equal(t, "App", entries[1].Metadata["target_name"])
	}
	assert.Nil(t, logger.CollectErrorEntriesExported(errors.New("std"))[0].Metadata)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{"single entry", []logger.ErrorEntry{{Message: "single error"}}, "Error: single error"},
		{
			"two entries",
			[]logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}},
			"Error: outer\n\n  Caused by:\n    → inner",
		},
		{
			"three entries",
			[]logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			"Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			"metadata on cause",
			[]logger.ErrorEntry{{Message: "main"}, {Message: "cause", Metadata: map[string]any{"version": "1.2"}}},
			"Error: main\n\n  Caused by:\n    → cause\n      version: 1.2",
		},
		{
			"multiline message",
			[]logger.ErrorEntry{{Message: "line1\nline2"}},
			"Error: line1\n       line2",
		},
		{
			"metadata sorted",
			[]logger.ErrorEntry{{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a", "mike": 3}}},
			"Error: error\n       alpha: a\n       mike: 3\n       zebra: z",
		},
		{"empty", []logger.ErrorEntry{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
