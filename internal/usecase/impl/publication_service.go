package impl

import (
	"context"
	"log/slog"

	"lexsite/config"
	"lexsite/internal/domain/entity"
	domainerrors "lexsite/internal/domain/errors"
	"lexsite/internal/domain/repository"
	"lexsite/internal/domain/service"
	"lexsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// publicationService implements the PublicationUsecase interface. It is the
// single writer of publication configs and the owner of the
// Unconfigured -> Draft/Live lifecycle.
type publicationService struct {
	txManager repository.TransactionManager
	viewCache service.ViewCache
	cfg       *config.Config
	logger    *slog.Logger
}

// NewPublicationService is the constructor for publicationService.
func NewPublicationService(
	txManager repository.TransactionManager,
	viewCache service.ViewCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PublicationUsecase {
	return &publicationService{
		txManager: txManager,
		viewCache: viewCache,
		cfg:       cfg,
		logger:    logger,
	}
}

// UpsertPublicationConfig runs one settings save.
//
// The slug pre-check against other accounts narrows the race window but the
// unique index on the slug column is the authoritative guard: a duplicate
// that slips past the check still comes back as SlugTaken, never as a
// generic failure.
func (srv *publicationService) UpsertPublicationConfig(ctx context.Context, accountID uuid.UUID, input *usecase.UpsertPublicationInput) (*entity.PublicationConfig, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing settings input")
	}

	requestedSlug := optionalString(input.Slug)
	if requestedSlug != "" && !entity.ValidSlug(requestedSlug) {
		return nil, domainerrors.ErrInvalidSlug.WrapMessage("slug format rejected")
	}

	var (
		result    *entity.PublicationConfig
		oldSlug   string
		slugMoved bool
		published bool
		wasLive   bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		pubRepo := repoFactory.PublicationRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("no account for id")
			}

			return errors.Wrap(err, "failed to find account")
		}

		current := account.Publication
		wasLive = current.State() == entity.StateLive
		if current != nil {
			oldSlug = current.Slug
		}

		// Uniqueness pre-check, only when the slug would actually change
		// hands. Re-saving one's own slug is always allowed.
		if requestedSlug != "" && (current == nil || requestedSlug != current.Slug) {
			holder, err := pubRepo.FindBySlug(ctx, requestedSlug)
			if err != nil && !errors.Is(err, repository.ErrPublicationNotFound) {
				return errors.Wrap(err, "failed to check slug availability")
			}
			if err == nil && holder.AccountID != accountID {
				return domainerrors.ErrSlugTaken.WrapMessage("slug held by another account")
			}
		}

		if current == nil {
			result, err = srv.createConfig(ctx, pubRepo, account, requestedSlug, input)
		} else {
			result, err = srv.updateConfig(ctx, pubRepo, current, requestedSlug, input)
		}
		if err != nil {
			return err
		}

		slugMoved = oldSlug != result.Slug
		published = result.Published

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert publication config")
	}

	srv.invalidateAfterSave(ctx, accountID, oldSlug, result.Slug, slugMoved, wasLive != published)

	return result, nil
}

// createConfig handles the Unconfigured -> Draft|Live transition, filling
// omitted fields with their defaults.
func (srv *publicationService) createConfig(
	ctx context.Context,
	pubRepo repository.PublicationRepository,
	account *entity.Account,
	requestedSlug string,
	input *usecase.UpsertPublicationInput,
) (*entity.PublicationConfig, error) {
	slug := requestedSlug
	if slug == "" {
		slug = entity.DeriveSlug(account.ExternalID)
	}

	themeID := optionalString(input.ThemeID)
	if themeID == "" {
		themeID = srv.cfg.Site.DefaultTheme
	}

	color := optionalString(input.PrimaryColor)
	if color == "" {
		color = srv.cfg.Site.DefaultAccentColor
	}

	fresh := &entity.PublicationConfig{
		AccountID:    account.ID,
		Slug:         slug,
		ThemeID:      themeID,
		PrimaryColor: color,
		Published:    input.Published,
	}

	if err := pubRepo.Create(ctx, fresh); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrSlugTaken.WrapMessage("slug taken at write time")
		}

		return nil, errors.Wrap(err, "failed to create publication config")
	}

	srv.logger.Info("publication config created",
		"accountID", account.ID, "slug", fresh.Slug, "published", fresh.Published)

	return fresh, nil
}

// updateConfig applies only the supplied fields to an existing config.
// Published is always explicit on update and never defaulted.
func (srv *publicationService) updateConfig(
	ctx context.Context,
	pubRepo repository.PublicationRepository,
	current *entity.PublicationConfig,
	requestedSlug string,
	input *usecase.UpsertPublicationInput,
) (*entity.PublicationConfig, error) {
	if requestedSlug != "" {
		current.Slug = requestedSlug
	}
	if themeID := optionalString(input.ThemeID); themeID != "" {
		current.ThemeID = themeID
	}
	if color := optionalString(input.PrimaryColor); color != "" {
		current.PrimaryColor = color
	}
	current.Published = input.Published

	if err := pubRepo.Update(ctx, current); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrSlugTaken.WrapMessage("slug taken at write time")
		}

		return nil, errors.Wrap(err, "failed to update publication config")
	}

	return current, nil
}

// invalidateAfterSave stales the owner's dashboard views and, when the public
// surface moved, both site paths: the old slug must stop resolving and the
// new one must start fresh.
func (srv *publicationService) invalidateAfterSave(ctx context.Context, accountID uuid.UUID, oldSlug, newSlug string, slugMoved, publishedChanged bool) {
	paths := []string{
		service.DashboardOverviewView(accountID),
		service.SettingsView(accountID),
	}
	if slugMoved || publishedChanged {
		if oldSlug != "" {
			paths = append(paths, service.PublicSiteView(oldSlug))
		}
		if newSlug != oldSlug {
			paths = append(paths, service.PublicSiteView(newSlug))
		}
	}

	if err := srv.viewCache.Invalidate(ctx, paths...); err != nil {
		srv.logger.Warn("failed to invalidate publication views", "accountID", accountID, "error", err)
	}
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
