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

// publicationRepository implements repository.PublicationRepository using GORM.
type publicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository is the constructor for publicationRepository.
func NewPublicationRepository(db *gorm.DB) repository.PublicationRepository {
	return &publicationRepository{db: db}
}

// FindByAccountID retrieves the config owned by an account.
func (repo *publicationRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PublicationConfig, error) {
	var configM model.PublicationConfigModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&configM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find publication config by account id")
	}

	return toPublicationDomain(&configM), nil
}

// FindBySlug retrieves the config holding a slug. Exact match: slugs are
// constrained to lowercase at write time, so no folding happens here.
func (repo *publicationRepository) FindBySlug(ctx context.Context, slug string) (*entity.PublicationConfig, error) {
	var configM model.PublicationConfigModel

	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&configM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPublicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find publication config by slug")
	}

	return toPublicationDomain(&configM), nil
}

// Create persists a new config. A duplicate slug that slipped past the
// usecase pre-check is caught by the unique index here.
func (repo *publicationRepository) Create(ctx context.Context, config *entity.PublicationConfig) error {
	configM := fromPublicationDomain(config)

	if err := repo.db.WithContext(ctx).Create(configM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return errors.Wrap(err, "failed to create publication config")
	}

	config.CreatedAt = configM.CreatedAt
	config.UpdatedAt = configM.UpdatedAt

	return nil
}

// Update persists the config's columns, including a false published flag.
// Select forces zero values through GORM's struct-update semantics.
func (repo *publicationRepository) Update(ctx context.Context, config *entity.PublicationConfig) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PublicationConfigModel{}).
		Where("account_id = ?", config.AccountID).
		Select("slug", "theme_id", "primary_color", "published").
		Updates(fromPublicationDomain(config))
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return errors.Wrap(result.Error, "failed to update publication config")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPublicationNotFound
	}

	return nil
}
