// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a console account. Every business profile, knowledge entry and
// onboarding status hangs off exactly one user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"` // Login identifier, unique.
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
