package model

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingStatusModel mirrors the 'onboarding_statuses' table. One row per
// user, created on first wizard access and never deleted.
type OnboardingStatusModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primary_key"`
	CurrentStep int       `gorm:"not null;default:0"`

	// CompletedSteps is the set of completed step indexes, stored as a JSON
	// array so membership survives out-of-order completion.
	CompletedSteps []int64 `gorm:"serializer:json;type:jsonb;not null;default:'[]'"`

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OnboardingStatusModel) TableName() string {
	return "onboarding_statuses"
}
