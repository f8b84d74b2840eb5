package usecase

import (
	"context"
	"time"

	"lexsite/internal/domain/entity"

	"github.com/google/uuid"
)

// CaseStudyUsecase manages the case list shown on a lawyer's page. Cases are
// added and removed, never edited.
type CaseStudyUsecase interface {
	// CreateCaseStudy validates and persists a new case.
	CreateCaseStudy(ctx context.Context, accountID uuid.UUID, input *CreateCaseStudyInput) (*entity.CaseStudy, error)

	// DeleteCaseStudy removes a case after asserting the caller owns it.
	// A case owned by someone else fails Forbidden, not NotFound.
	DeleteCaseStudy(ctx context.Context, accountID, caseID uuid.UUID) error

	// ListCaseStudies returns the account's cases, date descending with
	// undated cases last.
	ListCaseStudies(ctx context.Context, accountID uuid.UUID) ([]entity.CaseStudy, error)

	// ListSpecialties returns the account's specialties, name ascending.
	ListSpecialties(ctx context.Context, accountID uuid.UUID) ([]entity.Specialty, error)
}

// CreateCaseStudyInput defines the data required to add a case.
type CreateCaseStudyInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Result      string     `json:"result,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}
