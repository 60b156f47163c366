package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingStatus tracks the ingestion lifecycle of a knowledge entry.
type ProcessingStatus string

const (
	// ProcessingPending marks an entry that has been saved but not yet processed.
	ProcessingPending ProcessingStatus = "pending"
	// ProcessingInProgress marks an entry currently being processed.
	ProcessingInProgress ProcessingStatus = "processing"
	// ProcessingCompleted marks an entry whose content has been extracted.
	ProcessingCompleted ProcessingStatus = "completed"
	// ProcessingFailed marks an entry whose processing failed or timed out.
	ProcessingFailed ProcessingStatus = "failed"
)

// EntryKind discriminates the knowledge entry source variants.
type EntryKind string

const (
	EntryKindText     EntryKind = "text"
	EntryKindURL      EntryKind = "url"
	EntryKindDocument EntryKind = "document"
)

// EntrySource is the tagged union of knowledge entry sources. Each variant
// carries only the fields relevant to it; callers switch on the concrete type.
type EntrySource interface {
	Kind() EntryKind
}

// TextSource is pasted text. Text entries are complete as soon as they are
// saved and require no asynchronous processing.
type TextSource struct {
	Content string `json:"content"`
}

// Kind implements EntrySource.
func (TextSource) Kind() EntryKind { return EntryKindText }

// URLSource is a web page to be scraped by the processing service.
type URLSource struct {
	URL string `json:"url"`
}

// Kind implements EntrySource.
func (URLSource) Kind() EntryKind { return EntryKindURL }

// DocumentSource is an uploaded file stored in blob storage.
type DocumentSource struct {
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	FileType    string `json:"file_type"`
	StoragePath string `json:"storage_path"` // Blob key the raw payload was written under.
}

// Kind implements EntrySource.
func (DocumentSource) Kind() EntryKind { return EntryKindDocument }

// KnowledgeEntry is one unit of source material grounding a business's
// generated chatbot system prompt.
type KnowledgeEntry struct {
	ID                uuid.UUID        `json:"id"`
	BusinessProfileID uuid.UUID        `json:"business_profile_id"`
	Title             string           `json:"title"`
	Source            EntrySource      `json:"source"`
	ProcessingStatus  ProcessingStatus `json:"processing_status"`
	ErrorMessage      string           `json:"error_message,omitempty"` // Populated when ProcessingStatus is failed.
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// NeedsProcessing reports whether the entry still has to go through the
// ingestion pipeline. Text entries never do.
func (e *KnowledgeEntry) NeedsProcessing() bool {
	return e.Source.Kind() != EntryKindText && e.ProcessingStatus == ProcessingPending
}
