// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the internal record for one platform user. It is keyed by the
// opaque identifier the external identity provider assigns (ExternalID);
// exactly one Account exists per external identity. Email is informational
// and carries no uniqueness guarantee.
type Account struct {
	ID         uuid.UUID `json:"id"`          // Internal, stable identifier.
	ExternalID string    `json:"external_id"` // Identity-provider subject. Unique, immutable after creation.
	Email      string    `json:"email"`
	Name       string    `json:"name"`

	// Lawyer profile fields shown on the public page. All optional.
	Title        string `json:"title"`        // Professional title, e.g. "Senior Partner".
	LicenseNo    string `json:"license_no"`   // Bar license number.
	Organization string `json:"organization"` // Firm or chamber name.
	Phone        string `json:"phone"`
	ContactQR    string `json:"contact_qr"` // Image reference for a secondary-contact QR (e.g. WeChat).
	Bio          string `json:"bio"`        // Free-text biography.
	AvatarURL    string `json:"avatar_url"` // Image reference for the avatar.

	Publication *PublicationConfig `json:"publication,omitempty"` // Nil while the account is unconfigured.
	Cases       []CaseStudy        `json:"cases,omitempty"`
	Specialties []Specialty        `json:"specialties,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CaseStudy is one published case on a lawyer's page. Title and description
// are mandatory; outcome and date are optional. Cases are created and deleted,
// never edited in place.
type CaseStudy struct {
	ID          uuid.UUID  `json:"id"`
	AccountID   uuid.UUID  `json:"account_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Result      string     `json:"result"` // Outcome text. Optional.
	Date        *time.Time `json:"date"`   // Nil for undated cases; they sort after dated ones.
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Specialty is a practice-area name attached to an account. Read-only in the
// dashboard; managed out of band.
type Specialty struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
