package usecase

import (
	"context"
	"time"

	"lexsite/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase exposes the privileged account directory. Authorization (the
// allowlist check) happens at the delivery boundary; this usecase assumes a
// vetted caller.
type AdminUsecase interface {
	// ListAccounts returns a summary row per account, newest first.
	ListAccounts(ctx context.Context) ([]AccountSummary, error)
}

// AccountSummary is one row of the admin account table.
type AccountSummary struct {
	ID        uuid.UUID               `json:"id"`
	Email     string                  `json:"email"`
	Name      string                  `json:"name"`
	Slug      string                  `json:"slug,omitempty"`
	State     entity.PublicationState `json:"state"`
	CreatedAt time.Time               `json:"created_at"`
}
