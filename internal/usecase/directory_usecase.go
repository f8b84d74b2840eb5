// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"lexsite/internal/domain/entity"
	"lexsite/internal/domain/service"
)

// DirectoryUsecase maps external identities to internal accounts and owns the
// lazy provisioning rule: the first authenticated touch creates the account.
type DirectoryUsecase interface {
	// GetOrCreateAccount returns the account for an identity, creating it on
	// first sight. Idempotent under concurrent first-touch: the loser of the
	// unique-index race re-reads the winner's row instead of failing.
	GetOrCreateAccount(ctx context.Context, identity *service.Identity) (*entity.Account, error)

	// UpdateAccount applies a partial profile update. Nil fields stay
	// untouched; non-nil empty strings clear the field. Name is the
	// exception: an empty name is ignored rather than cleared.
	UpdateAccount(ctx context.Context, externalID string, input *UpdateAccountInput) (*entity.Account, error)

	// GetDashboardOverview assembles the owner's dashboard summary.
	GetDashboardOverview(ctx context.Context, externalID string) (*DashboardOverview, error)
}

// UpdateAccountInput defines the partial-update fields for a profile save.
type UpdateAccountInput struct {
	Name         *string `json:"name,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	Title        *string `json:"title,omitempty"`
	LicenseNo    *string `json:"license_no,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ContactQR    *string `json:"contact_qr,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

// DashboardOverview is the owner's dashboard summary.
type DashboardOverview struct {
	Account   *entity.Account         `json:"account"`
	State     entity.PublicationState `json:"state"`
	CaseCount int                     `json:"case_count"`
	// PublicURL is only set while the site is live.
	PublicURL string `json:"public_url,omitempty"`
}
