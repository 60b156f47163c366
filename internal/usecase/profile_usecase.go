package usecase

import (
	"context"

	"lapak/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the editable business profile fields outside
// the wizard (settings page).
type UpdateProfileInput struct {
	Name          string
	Description   string
	Address       string
	Phone         string
	BusinessHours string
}

// ProfileUsecase exposes the business profile outside the onboarding wizard.
type ProfileUsecase interface {
	// Get returns the profile owned by the user.
	Get(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error)

	// Update rewrites the profile's descriptive fields.
	Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.BusinessProfile, error)
}
