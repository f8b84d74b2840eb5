// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// caseOrder pins the display ordering for case studies: date descending with
// undated cases last. The NULLS LAST is explicit so the ordering does not
// drift with the engine's default null placement.
const caseOrder = "date DESC NULLS LAST"

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves an account by internal id with publication config, cases,
// and specialties eagerly loaded in their display order.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.preloaded(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByExternalID retrieves an account by its external identity reference.
func (repo *accountRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.preloaded(ctx).
		Where("external_id = ?", externalID).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by external id")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The unique index on external_id rejects a
// concurrent first-touch duplicate; that surfaces as ErrDuplicateExternalID
// so the usecase can fall back to a re-lookup.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateExternalID
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update persists the account's profile columns. Associations are owned by
// their dedicated repositories and deliberately not saved here.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Select("email", "name", "title", "license_no", "organization", "phone", "contact_qr", "bio", "avatar_url").
		Updates(accountM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ListAll returns every account with publication config preloaded, newest first.
func (repo *accountRepository) ListAll(ctx context.Context) ([]entity.Account, error) {
	var accountMs []model.AccountModel

	err := repo.db.WithContext(ctx).
		Preload("Publication").
		Order("created_at DESC").
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, *toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

func (repo *accountRepository) preloaded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Publication").
		Preload("Cases", func(db *gorm.DB) *gorm.DB {
			return db.Order(caseOrder)
		}).
		Preload("Specialties", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		})
}
