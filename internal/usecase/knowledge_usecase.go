package usecase

import (
	"context"
	"io"

	"lapak/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentUpload is one file in an upload batch.
type DocumentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Payload     io.Reader
}

// UploadResult is the per-file outcome of an upload batch. Failures are
// independent per file; a failed file never aborts the rest of the batch.
type UploadResult struct {
	FileName string                `json:"file_name"`
	Entry    *entity.KnowledgeEntry `json:"entry,omitempty"`
	Err      string                `json:"error,omitempty"`
}

// KnowledgeUsecase manages the knowledge base entries of a business profile.
//
// A profile holds at most one text and one url entry: saving either again
// updates the existing entry instead of inserting a duplicate. Documents may
// be uploaded in any number.
type KnowledgeUsecase interface {
	// List returns all entries of the profile in creation order.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.KnowledgeEntry, error)

	// SaveText creates or updates the profile's single text entry. Text is
	// complete at save time and never enters the processing pipeline.
	SaveText(ctx context.Context, userID uuid.UUID, title, content string) (*entity.KnowledgeEntry, error)

	// SaveURL creates or updates the profile's single url entry. Re-saving
	// resets the processing status to pending so the new address is scraped.
	SaveURL(ctx context.Context, userID uuid.UUID, title, url string) (*entity.KnowledgeEntry, error)

	// UploadDocuments stores each file and creates a pending document entry
	// per successful upload. Per-file failures are reported in the results.
	UploadDocuments(ctx context.Context, userID uuid.UUID, uploads []DocumentUpload) ([]UploadResult, error)

	// Delete removes an entry and, for document entries, its stored payload.
	Delete(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error
}
