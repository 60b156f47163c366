// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Step identifies one step of the onboarding wizard, 0-based.
type Step int

// The four wizard steps, in order.
const (
	StepBusinessProfile Step = iota // Business identity and contact details.
	StepKnowledgeBase               // Knowledge entries feeding the chatbot prompt.
	StepFeatures                    // Feature-flag selection for the console.
	StepChannelConnect              // Chat-channel pairing.

	// StepCount is the total number of wizard steps.
	StepCount = 4
)

// Valid reports whether the step index is within the wizard range.
func (s Step) Valid() bool {
	return s >= StepBusinessProfile && s < StepCount
}

// Label returns a short human-readable name for the step.
func (s Step) Label() string {
	switch s {
	case StepBusinessProfile:
		return "business-profile"
	case StepKnowledgeBase:
		return "knowledge-base"
	case StepFeatures:
		return "features"
	case StepChannelConnect:
		return "channel-connect"
	default:
		return "unknown"
	}
}

// OnboardingStatus is the authoritative per-user record of wizard progress.
// It is created on first onboarding access and mutated only through explicit
// step-completion and current-step updates, never deleted.
type OnboardingStatus struct {
	UserID         uuid.UUID  `json:"user_id"`         // The user this status belongs to.
	CurrentStep    Step       `json:"current_step"`    // The step currently rendered for the user.
	CompletedSteps []Step     `json:"completed_steps"` // Steps whose completion handlers have succeeded.
	CompletedAt    *time.Time `json:"completed_at"`    // Set once, when the final step completes. Terminal.
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsCompleted reports whether the whole wizard has been finished.
func (s *OnboardingStatus) IsCompleted() bool {
	return s.CompletedAt != nil
}

// HasCompleted reports whether a specific step has been completed.
func (s *OnboardingStatus) HasCompleted(step Step) bool {
	for _, done := range s.CompletedSteps {
		if done == step {
			return true
		}
	}

	return false
}

// CanNavigateTo reports whether the user may switch the wizard to target.
// Backward navigation is always allowed; forward navigation requires the
// target step to have been completed before.
func (s *OnboardingStatus) CanNavigateTo(target Step) bool {
	if !target.Valid() {
		return false
	}

	return target < s.CurrentStep || s.HasCompleted(target)
}
