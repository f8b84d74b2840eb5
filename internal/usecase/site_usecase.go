package usecase

import (
	"context"

	"lexsite/internal/domain/entity"
)

// SiteUsecase resolves public slugs to rendering payloads, enforcing the
// visibility gate: only live sites resolve, and a draft is indistinguishable
// from a nonexistent slug.
type SiteUsecase interface {
	// ResolvePublicSite assembles the payload for a published site.
	ResolvePublicSite(ctx context.Context, slug string) (*entity.SitePayload, error)

	// PublicSiteURL returns the stable shareable address for a slug.
	PublicSiteURL(slug string) string
}
