package model

import (
	"time"

	"github.com/google/uuid"
)

// SpecialtyModel mirrors the 'specialties' table.
type SpecialtyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpecialtyModel) TableName() string {
	return "specialties"
}
