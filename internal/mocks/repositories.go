package mocks

import (
	"context"

	"lexsite/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AccountRepository is a testify mock of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Account, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *AccountRepository) ListAll(ctx context.Context) ([]entity.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Account), args.Error(1)
}

// PublicationRepository is a testify mock of repository.PublicationRepository.
type PublicationRepository struct {
	mock.Mock
}

func (m *PublicationRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PublicationConfig, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PublicationConfig), args.Error(1)
}

func (m *PublicationRepository) FindBySlug(ctx context.Context, slug string) (*entity.PublicationConfig, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PublicationConfig), args.Error(1)
}

func (m *PublicationRepository) Create(ctx context.Context, config *entity.PublicationConfig) error {
	return m.Called(ctx, config).Error(0)
}

func (m *PublicationRepository) Update(ctx context.Context, config *entity.PublicationConfig) error {
	return m.Called(ctx, config).Error(0)
}

// CaseStudyRepository is a testify mock of repository.CaseStudyRepository.
type CaseStudyRepository struct {
	mock.Mock
}

func (m *CaseStudyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CaseStudy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CaseStudy), args.Error(1)
}

func (m *CaseStudyRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.CaseStudy, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.CaseStudy), args.Error(1)
}

func (m *CaseStudyRepository) Create(ctx context.Context, cs *entity.CaseStudy) error {
	return m.Called(ctx, cs).Error(0)
}

func (m *CaseStudyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// SpecialtyRepository is a testify mock of repository.SpecialtyRepository.
type SpecialtyRepository struct {
	mock.Mock
}

func (m *SpecialtyRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Specialty, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Specialty), args.Error(1)
}
