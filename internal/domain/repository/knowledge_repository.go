// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lapak/internal/domain/entity"
	"lapak/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for knowledge entry persistence.
var (
	// ErrEntryNotFound is returned when a knowledge entry is not found.
	ErrEntryNotFound = errors.New("knowledge entry not found")
)

// KnowledgeEntryRepository defines the persistence operations for knowledge
// base entries. The invariant that a business profile holds at most one text
// and one url entry is enforced at the usecase layer via the FindXxxEntry
// lookups; documents may exist in any number.
type KnowledgeEntryRepository interface {
	// Create persists a new knowledge entry.
	Create(ctx context.Context, entry *entity.KnowledgeEntry) error

	// Update rewrites an existing entry in place (title, source, status).
	Update(ctx context.Context, entry *entity.KnowledgeEntry) error

	// FindByID retrieves an entry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.KnowledgeEntry, error)

	// FindByProfile retrieves all entries for a business profile in creation order.
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.KnowledgeEntry, error)

	// FindTextEntry retrieves the single text entry of a profile, if any.
	FindTextEntry(ctx context.Context, profileID uuid.UUID) (*entity.KnowledgeEntry, error)

	// FindURLEntry retrieves the single url entry of a profile, if any.
	FindURLEntry(ctx context.Context, profileID uuid.UUID) (*entity.KnowledgeEntry, error)

	// UpdateProcessingStatus transitions an entry's ingestion status and
	// records the failure message (empty on success paths).
	UpdateProcessingStatus(ctx context.Context, id uuid.UUID, status entity.ProcessingStatus, errorMessage string) error

	// Delete removes an entry permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
