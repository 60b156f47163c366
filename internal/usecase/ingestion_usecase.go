package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Progress is one ingestion progress update. Percent is computed over all
// attempted units (documents, urls, plus the prompt-generation step) and is
// non-decreasing within a run, reaching 100 only after prompt generation.
type Progress struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// ProgressFunc receives progress updates during an ingestion run. A nil
// ProgressFunc is valid and discards updates.
type ProgressFunc func(Progress)

// FailedEntry identifies a knowledge entry whose processing failed or timed
// out during a run. Failed entries keep their failed status and are retried
// on the next run.
type FailedEntry struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Reason string    `json:"reason"`
}

// IngestionReport aggregates the outcome of one ingestion run.
type IngestionReport struct {
	TotalEntries  int           `json:"total_entries"`  // Documents and urls attempted this run.
	Processed     int           `json:"processed"`      // Entries that completed successfully.
	FailedEntries []FailedEntry `json:"failed_entries"` // Per-entry failures, non-fatal.
	SystemPrompt  string        `json:"-"`              // The generated prompt text.
}

// PartialFailure reports whether some entries failed while the run as a
// whole still succeeded.
func (r *IngestionReport) PartialFailure() bool {
	return len(r.FailedEntries) > 0
}

// IngestionUsecase coordinates per-entry processing of a business profile's
// pending knowledge entries followed by system-prompt generation.
//
// Documents are attempted before urls, each strictly sequentially and under
// its own timeout; individual failures are recorded on the entry and do not
// abort the run. Prompt generation always runs after all entries have been
// attempted; its failure fails the run as a whole.
type IngestionUsecase interface {
	// Run processes every pending entry of the profile and generates the
	// system prompt. The returned report is non-nil whenever the per-entry
	// phase ran, even if prompt generation failed.
	Run(ctx context.Context, businessProfileID uuid.UUID, onProgress ProgressFunc) (*IngestionReport, error)
}
