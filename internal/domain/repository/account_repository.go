// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lexsite/internal/domain/entity"

	"github.com/google/uuid"
)

// Sentinel errors the repositories translate storage failures into. The
// usecase layer matches on these, never on driver errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateExternalID is returned when the unique index on the external
	// identity reference rejects a create. It signals a lost first-touch race,
	// not a caller mistake.
	ErrDuplicateExternalID = errors.New("external id already registered")
)

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByID retrieves an account by internal id with its publication
	// config, cases (date descending, undated last), and specialties
	// (name ascending) preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByExternalID retrieves an account by its external identity
	// reference, preloaded the same way as FindByID.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Account, error)

	// Create persists a new account. The unique index on external_id is the
	// authoritative guard against concurrent first-touch provisioning.
	Create(ctx context.Context, account *entity.Account) error

	// Update persists changed profile fields of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// ListAll returns every account with its publication config preloaded,
	// ordered by creation time descending. Admin surface only.
	ListAll(ctx context.Context) ([]entity.Account, error)
}
