package repository

import (
	"context"
	"errors"

	"lexsite/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCaseNotFound is returned when no case study matches the lookup key.
var ErrCaseNotFound = errors.New("case study not found")

// CaseStudyRepository defines the operations for case-study persistence.
type CaseStudyRepository interface {
	// FindByID retrieves a single case study regardless of owner. Ownership
	// is asserted by the usecase layer, deliberately not by a query filter.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CaseStudy, error)

	// ListByAccountID returns an account's cases ordered by date descending
	// with undated cases last.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.CaseStudy, error)

	// Create persists a new case study.
	Create(ctx context.Context, cs *entity.CaseStudy) error

	// Delete removes a case study by id.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SpecialtyRepository defines the read-only operations for specialties.
type SpecialtyRepository interface {
	// ListByAccountID returns an account's specialties ordered by name ascending.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Specialty, error)
}
