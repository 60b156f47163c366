package service

import (
	"context"

	"lapak/internal/domain/entity"
)

// ProcessResult is what the processing service reports for a single entry.
type ProcessResult struct {
	ExtractedChars int    `json:"extracted_chars"` // Amount of structured text extracted.
	ContentHash    string `json:"content_hash"`    // Hash of the extracted content, for change detection.
}

// DocumentProcessor is the external service that extracts structured content
// from uploaded documents and scraped URLs. Calls are synchronous from the
// caller's point of view; cancellation and deadlines arrive via ctx.
// Expected failures are returned as errors, never panics.
type DocumentProcessor interface {
	// ProcessDocument extracts content from the stored document behind a
	// document-kind knowledge entry.
	ProcessDocument(ctx context.Context, entry *entity.KnowledgeEntry) (*ProcessResult, error)

	// ProcessURL scrapes and extracts content from a url-kind knowledge entry.
	ProcessURL(ctx context.Context, entry *entity.KnowledgeEntry) (*ProcessResult, error)
}
