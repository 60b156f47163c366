package repository

import (
	"context"

	"lapak/internal/domain/entity"
	"lapak/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for business profile persistence.
var (
	// ErrProfileNotFound is returned when a business profile is not found.
	ErrProfileNotFound = errors.New("business profile not found")
	// ErrDuplicateProfile is returned when the owner already has a profile.
	ErrDuplicateProfile = errors.New("business profile already exists")
)

// BusinessProfileRepository defines the persistence operations for the
// tenant record.
type BusinessProfileRepository interface {
	// Create persists a new business profile.
	Create(ctx context.Context, profile *entity.BusinessProfile) error

	// FindByID retrieves a profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// FindByOwner retrieves the profile owned by a user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error)

	// Update rewrites the profile's descriptive fields.
	Update(ctx context.Context, profile *entity.BusinessProfile) error

	// UpdateFeatures persists the feature flags chosen during onboarding.
	UpdateFeatures(ctx context.Context, id uuid.UUID, productCatalog, orderManagement, paymentSystem bool) error

	// UpdateSystemPrompt stores the generated chatbot system prompt.
	UpdateSystemPrompt(ctx context.Context, id uuid.UUID, prompt string) error

	// UpdateChannelConnected flips the channel pairing flag.
	UpdateChannelConnected(ctx context.Context, id uuid.UUID, connected bool) error
}
