package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfileModel mirrors the 'business_profiles' table. OwnerID
// references users.id and is unique: one profile per account.
type BusinessProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;unique;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	Address       string    `gorm:"type:text"`
	Phone         string    `gorm:"type:varchar(32);not null"`
	BusinessHours string    `gorm:"type:varchar(100)"`

	SystemPrompt string `gorm:"type:text"`

	FeatureProductCatalog  bool `gorm:"not null;default:false"`
	FeatureOrderManagement bool `gorm:"not null;default:false"`
	FeaturePaymentSystem   bool `gorm:"not null;default:false"`

	ChannelConnected bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	KnowledgeEntries []KnowledgeEntryModel `gorm:"foreignKey:BusinessProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
