package impl

import (
	"context"
	"log/slog"

	"lexsite/config"
	"lexsite/internal/domain/entity"
	domainerrors "lexsite/internal/domain/errors"
	"lexsite/internal/domain/repository"
	"lexsite/internal/usecase"

	"github.com/pkg/errors"
)

// siteService implements the SiteUsecase interface.
type siteService struct {
	txManager repository.TransactionManager
	cfg       *config.Config
	logger    *slog.Logger
}

// NewSiteService is the constructor for siteService.
func NewSiteService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SiteUsecase {
	return &siteService{
		txManager: txManager,
		cfg:       cfg,
		logger:    logger,
	}
}

// ResolvePublicSite assembles the payload for a published site. A missing
// slug and an unpublished one return the same NotFound so draft existence
// never leaks to the public.
func (srv *siteService) ResolvePublicSite(ctx context.Context, slug string) (*entity.SitePayload, error) {
	var payload *entity.SitePayload

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pubRepo := repoFactory.PublicationRepo()
		accountRepo := repoFactory.AccountRepo()

		pubConfig, err := pubRepo.FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrPublicationNotFound) {
				return domainerrors.ErrSiteNotFound.WrapMessage("no config for slug")
			}

			return errors.Wrap(err, "failed to resolve slug")
		}

		if !pubConfig.Published {
			return domainerrors.ErrSiteNotFound.WrapMessage("site not published")
		}

		account, err := accountRepo.FindByID(ctx, pubConfig.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to load site owner")
		}

		payload = &entity.SitePayload{
			Account:     account,
			Config:      pubConfig,
			Cases:       account.Cases,
			Specialties: account.Specialties,
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve public site")
	}

	return payload, nil
}

// PublicSiteURL returns the stable shareable address for a slug.
func (srv *siteService) PublicSiteURL(slug string) string {
	return srv.cfg.Site.BaseURL + "/site/" + slug
}
