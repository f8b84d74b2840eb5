package model

import (
	"time"

	"github.com/google/uuid"
)

// PublicationConfigModel mirrors the 'publication_configs' table. One row per
// account; the unique index on slug is the authoritative guard against
// check-then-write races on slug allocation.
type PublicationConfigModel struct {
	AccountID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug         string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ThemeID      string    `gorm:"type:varchar(32);not null"`
	PrimaryColor string    `gorm:"type:varchar(32);not null"`
	Published    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PublicationConfigModel) TableName() string {
	return "publication_configs"
}
