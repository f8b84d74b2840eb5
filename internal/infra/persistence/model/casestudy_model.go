package model

import (
	"time"

	"github.com/google/uuid"
)

// CaseStudyModel mirrors the 'case_studies' table. Date is nullable; display
// ordering is date descending with NULLS LAST, pinned in the repository.
type CaseStudyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Result      string    `gorm:"type:text"`
	Date        *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CaseStudyModel) TableName() string {
	return "case_studies"
}
