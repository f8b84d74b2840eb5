// Package mocks provides hand-written test doubles for the domain interfaces.
package mocks

import (
	"context"

	"lexsite/internal/domain/repository"
)

// TransactionManager runs the unit-of-work closure directly against the
// configured factory, with no real transaction underneath.
type TransactionManager struct {
	Factory *RepositoryFactory
}

func NewTransactionManager(factory *RepositoryFactory) *TransactionManager {
	return &TransactionManager{Factory: factory}
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// RepositoryFactory hands out the repository mocks configured on it.
type RepositoryFactory struct {
	Accounts     *AccountRepository
	Publications *PublicationRepository
	Cases        *CaseStudyRepository
	Specialties  *SpecialtyRepository
}

func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		Accounts:     &AccountRepository{},
		Publications: &PublicationRepository{},
		Cases:        &CaseStudyRepository{},
		Specialties:  &SpecialtyRepository{},
	}
}

func (f *RepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.Accounts
}

func (f *RepositoryFactory) PublicationRepo() repository.PublicationRepository {
	return f.Publications
}

func (f *RepositoryFactory) CaseStudyRepo() repository.CaseStudyRepository {
	return f.Cases
}

func (f *RepositoryFactory) SpecialtyRepo() repository.SpecialtyRepository {
	return f.Specialties
}
