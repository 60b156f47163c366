package service

import (
	"context"
	"time"
)

// OnboardingCompletedEvent is published exactly once, when a user finishes
// the final onboarding step.
type OnboardingCompletedEvent struct {
	RequestID         string    `json:"request_id,omitempty"` // For distributed tracing
	UserID            string    `json:"user_id"`
	BusinessProfileID string    `json:"business_profile_id"`
	BusinessName      string    `json:"business_name"`
	CompletedAt       time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOnboardingCompleted publishes the completion event for async processing
	PublishOnboardingCompleted(ctx context.Context, event *OnboardingCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
