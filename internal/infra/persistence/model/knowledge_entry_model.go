package model

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntryModel mirrors the 'knowledge_entries' table. The source
// variants of the domain entity are flattened into nullable columns
// discriminated by Kind; only the columns of the active variant are set.
type KnowledgeEntryModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind              string    `gorm:"type:varchar(16);not null;index"`
	Title             string    `gorm:"type:varchar(255);not null"`

	// text variant
	TextContent *string `gorm:"type:text"`

	// url variant
	URL *string `gorm:"type:varchar(2048)"`

	// document variant
	FileName    *string `gorm:"type:varchar(255)"`
	FileSize    *int64
	FileType    *string `gorm:"type:varchar(100)"`
	StoragePath *string `gorm:"type:varchar(1024)"`

	ProcessingStatus string `gorm:"type:varchar(16);not null;default:'pending'"`
	ErrorMessage     string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KnowledgeEntryModel) TableName() string {
	return "knowledge_entries"
}
