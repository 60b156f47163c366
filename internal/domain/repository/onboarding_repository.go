package repository

import (
	"context"

	"lapak/internal/domain/entity"
	"lapak/internal/errors"

	"github.com/google/uuid"
)

// ErrOnboardingStatusNotFound is returned when no status record exists for a user.
var ErrOnboardingStatusNotFound = errors.New("onboarding status not found")

// OnboardingStatusRepository is the authoritative store of wizard progress.
// The status record is only ever advanced through explicit step-completion
// and current-step updates; it is never deleted during normal operation.
type OnboardingStatusRepository interface {
	// FindByUser retrieves the status record for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error)

	// Create persists a fresh status record (current step 0, nothing completed).
	Create(ctx context.Context, status *entity.OnboardingStatus) error

	// MarkStepCompleted adds the step to the completed set and advances the
	// current step to min(step+1, last step). Idempotent for an already
	// completed step.
	MarkStepCompleted(ctx context.Context, userID uuid.UUID, step entity.Step) error

	// UpdateCurrentStep moves the rendered step without touching the
	// completed set. Used for backward navigation and resuming.
	UpdateCurrentStep(ctx context.Context, userID uuid.UUID, step entity.Step) error

	// MarkCompleted stamps the terminal completion time. Returns without
	// effect when the record is already terminal.
	MarkCompleted(ctx context.Context, userID uuid.UUID) error
}
