package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile is the tenant record every knowledge entry, feature flag
// and onboarding status is scoped to. One profile per owning user.
type BusinessProfile struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"` // The user who owns this business.
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	BusinessHours string    `json:"business_hours"`

	// SystemPrompt is the synthesized chatbot instruction text generated
	// from the completed knowledge entries.
	SystemPrompt string `json:"system_prompt,omitempty"`

	// Feature flags persisted from the feature-selection step.
	FeatureProductCatalog  bool `json:"feature_product_catalog"`
	FeatureOrderManagement bool `json:"feature_order_management"`
	FeaturePaymentSystem   bool `json:"feature_payment_system"`

	// ChannelConnected is set when the chat channel has been paired.
	ChannelConnected bool `json:"channel_connected"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
