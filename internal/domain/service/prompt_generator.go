package service

import (
	"context"

	"github.com/google/uuid"
)

// PromptGenerator is the external service that synthesizes a chatbot system
// prompt from all completed knowledge entries of a business profile.
type PromptGenerator interface {
	// GenerateSystemPrompt returns the synthesized instruction text.
	GenerateSystemPrompt(ctx context.Context, businessProfileID uuid.UUID) (string, error)
}
