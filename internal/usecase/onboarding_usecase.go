// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lapak/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BusinessProfileInput defines the data collected on the first wizard step.
type BusinessProfileInput struct {
	Name          string
	Description   string
	Address       string
	Phone         string
	BusinessHours string
}

// KnowledgeDrafts carries the current content of the text and url input
// fields as the client sees them. The knowledge step refuses to proceed
// while either differs from its last-saved snapshot.
type KnowledgeDrafts struct {
	Text string
	URL  string
}

// FeatureSelection defines the toggles persisted on the feature step.
type FeatureSelection struct {
	ProductCatalog  bool
	OrderManagement bool
	PaymentSystem   bool
}

// OnboardingUsecase sequences the four onboarding steps, decides
// navigability and drives the save/advance actions. The authoritative step
// state lives in the onboarding status store; this controller never
// advances locally on a failed external call.
//
// Every step-completion method is idempotent-guarded: a second invocation
// for the same user while one is still pending is silently ignored and
// returns a nil status.
type OnboardingUsecase interface {
	// Status returns the user's wizard state, creating the record on first access.
	Status(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error)

	// NavigateTo switches the rendered step. Allowed only when the target is
	// before the current step or already completed.
	NavigateTo(ctx context.Context, userID uuid.UUID, target entity.Step) (*entity.OnboardingStatus, error)

	// Back moves one step backwards, never below the first step.
	Back(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error)

	// CompleteBusinessProfile persists the profile and completes step 0.
	CompleteBusinessProfile(ctx context.Context, userID uuid.UUID, input BusinessProfileInput) (*entity.OnboardingStatus, error)

	// CompleteKnowledgeStep runs the ingestion pipeline over all pending
	// knowledge entries and completes step 1. Progress updates are delivered
	// through onProgress; pass nil to discard them.
	CompleteKnowledgeStep(ctx context.Context, userID uuid.UUID, drafts KnowledgeDrafts, onProgress ProgressFunc) (*entity.OnboardingStatus, *IngestionReport, error)

	// CompleteFeatureSelection persists the feature flags and completes step 2.
	CompleteFeatureSelection(ctx context.Context, userID uuid.UUID, selection FeatureSelection) (*entity.OnboardingStatus, error)

	// CompleteChannelConnect completes the final step, making the wizard
	// terminal, and publishes the onboarding-completed event exactly once.
	CompleteChannelConnect(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error)

	// ChannelPairingCode returns the PNG QR code shown on the final step.
	ChannelPairingCode(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// FeatureOptions returns the feature catalog rendered on step 2.
	FeatureOptions(ctx context.Context, userID uuid.UUID) ([]entity.FeatureOption, error)
}
