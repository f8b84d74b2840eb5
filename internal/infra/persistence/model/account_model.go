// Package model contains the GORM persistence models mirroring the database
// schema. Exported so the gorm gen tool can consume them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The unique index on external_id is the serialization
// point for concurrent first-touch provisioning.
type AccountModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExternalID string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email      string    `gorm:"type:varchar(255);not null"`
	Name       string    `gorm:"type:varchar(100)"`

	Title        string `gorm:"type:varchar(100)"`
	LicenseNo    string `gorm:"type:varchar(64)"`
	Organization string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(32)"`
	ContactQR    string `gorm:"type:varchar(512)"`
	Bio          string `gorm:"type:text"`
	AvatarURL    string `gorm:"type:varchar(512)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Publication *PublicationConfigModel `gorm:"foreignKey:AccountID"`
	Cases       []CaseStudyModel        `gorm:"foreignKey:AccountID"`
	Specialties []SpecialtyModel        `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
