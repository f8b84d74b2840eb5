package repository

import (
	"context"
	"errors"

	"lexsite/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrPublicationNotFound is returned when an account has no publication
	// config, or no config holds the looked-up slug.
	ErrPublicationNotFound = errors.New("publication config not found")
	// ErrDuplicateSlug is returned when the unique slug index rejects a
	// write. The pre-check in the usecase narrows the window; this error is
	// what closes it.
	ErrDuplicateSlug = errors.New("slug already taken")
)

// PublicationRepository defines the operations for publication-config
// persistence. Slug uniqueness is enforced by the storage layer's unique
// index, not by these methods.
type PublicationRepository interface {
	// FindByAccountID retrieves the config owned by an account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PublicationConfig, error)

	// FindBySlug retrieves the config holding a slug, exact match.
	FindBySlug(ctx context.Context, slug string) (*entity.PublicationConfig, error)

	// Create persists a new config. A unique-index rejection on the slug
	// column surfaces as ErrDuplicateSlug.
	Create(ctx context.Context, config *entity.PublicationConfig) error

	// Update persists changed fields of an existing config. Slug collisions
	// surface as ErrDuplicateSlug.
	Update(ctx context.Context, config *entity.PublicationConfig) error
}
