package usecase

import (
	"context"

	"lexsite/internal/domain/entity"

	"github.com/google/uuid"
)

// PublicationUsecase owns slug allocation and the publish lifecycle. This is
// the only component allowed to write publication configs.
type PublicationUsecase interface {
	// UpsertPublicationConfig runs one settings save: validates the slug,
	// checks uniqueness against other accounts, creates the config with
	// defaults on first save, or partially updates the existing one.
	// Published is always explicit; the other fields are optional.
	UpsertPublicationConfig(ctx context.Context, accountID uuid.UUID, input *UpsertPublicationInput) (*entity.PublicationConfig, error)
}

// UpsertPublicationInput defines one settings save. Nil (or empty) Slug,
// ThemeID, and PrimaryColor mean "leave unchanged" on update and "use the
// default" on create.
type UpsertPublicationInput struct {
	Slug         *string `json:"slug,omitempty"`
	ThemeID      *string `json:"theme_id,omitempty"`
	PrimaryColor *string `json:"primary_color,omitempty"`
	Published    bool    `json:"published"`
}
