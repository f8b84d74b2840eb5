package postgres

import (
	"context"

	"lexsite/internal/domain/entity"
	"lexsite/internal/domain/repository"
	"lexsite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// caseStudyRepository implements repository.CaseStudyRepository using GORM.
type caseStudyRepository struct {
	db *gorm.DB
}

// NewCaseStudyRepository is the constructor for caseStudyRepository.
func NewCaseStudyRepository(db *gorm.DB) repository.CaseStudyRepository {
	return &caseStudyRepository{db: db}
}

// FindByID retrieves a case study by id, unfiltered by owner. The usecase
// layer asserts ownership so authorization stays visible and testable.
func (repo *caseStudyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CaseStudy, error) {
	var caseM model.CaseStudyModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&caseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find case study by id")
	}

	return toCaseStudyDomain(&caseM), nil
}

// ListByAccountID returns an account's cases, date descending, undated last.
func (repo *caseStudyRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.CaseStudy, error) {
	var caseMs []model.CaseStudyModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order(caseOrder).
		Find(&caseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list case studies")
	}

	cases := make([]entity.CaseStudy, 0, len(caseMs))
	for i := range caseMs {
		cases = append(cases, *toCaseStudyDomain(&caseMs[i]))
	}

	return cases, nil
}

// Create persists a new case study. A foreign-key violation on account_id
// means the owning account vanished underneath us and surfaces as
// ErrAccountNotFound.
func (repo *caseStudyRepository) Create(ctx context.Context, cs *entity.CaseStudy) error {
	caseM := fromCaseStudyDomain(cs)

	if err := repo.db.WithContext(ctx).Create(caseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to create case study")
	}

	cs.ID = caseM.ID
	cs.CreatedAt = caseM.CreatedAt
	cs.UpdatedAt = caseM.UpdatedAt

	return nil
}

// Delete removes a case study by id.
func (repo *caseStudyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CaseStudyModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete case study")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCaseNotFound
	}

	return nil
}

// specialtyRepository implements repository.SpecialtyRepository using GORM.
type specialtyRepository struct {
	db *gorm.DB
}

// NewSpecialtyRepository is the constructor for specialtyRepository.
func NewSpecialtyRepository(db *gorm.DB) repository.SpecialtyRepository {
	return &specialtyRepository{db: db}
}

// ListByAccountID returns an account's specialties, name ascending.
func (repo *specialtyRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Specialty, error) {
	var specialtyMs []model.SpecialtyModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&specialtyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list specialties")
	}

	specialties := make([]entity.Specialty, 0, len(specialtyMs))
	for i := range specialtyMs {
		specialties = append(specialties, *toSpecialtyDomain(&specialtyMs[i]))
	}

	return specialties, nil
}
