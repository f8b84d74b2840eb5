// Package impl contains the application-specific business rules implementations.
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

	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	txManager repository.TransactionManager
	viewCache service.ViewCache
	cfg       *config.Config
	logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	txManager repository.TransactionManager,
	viewCache service.ViewCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		txManager: txManager,
		viewCache: viewCache,
		cfg:       cfg,
		logger:    logger,
	}
}

// GetOrCreateAccount returns the account for an identity, provisioning it on
// first sight. Two concurrent first-touch calls race on the unique
// external_id index; the loser re-reads the winner's row exactly once.
func (srv *directoryService) GetOrCreateAccount(ctx context.Context, identity *service.Identity) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByExternalID(ctx, identity.ExternalID)
		if err == nil {
			account = found

			return nil
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to look up account")
		}

		fresh := &entity.Account{
			ExternalID: identity.ExternalID,
			Email:      identity.Email,
			Name:       identity.Name,
			AvatarURL:  identity.AvatarURL,
		}

		if err := accountRepo.Create(ctx, fresh); err != nil {
			if errors.Is(err, repository.ErrDuplicateExternalID) {
				// Lost the first-touch race. The winner's row exists now;
				// one re-lookup resolves it.
				srv.logger.Debug("lost account provisioning race, re-reading",
					"externalID", identity.ExternalID)

				winner, findErr := accountRepo.FindByExternalID(ctx, identity.ExternalID)
				if findErr != nil {
					return errors.Wrap(findErr, "failed to re-read account after lost race")
				}
				account = winner

				return nil
			}

			return errors.Wrap(err, "failed to create account")
		}

		srv.logger.Info("provisioned account", "externalID", identity.ExternalID, "accountID", fresh.ID)
		account = fresh

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get or create account")
	}

	return account, nil
}

// UpdateAccount applies a partial profile update. Nil means unchanged,
// pointer-to-empty clears, and an empty name is ignored rather than cleared.
func (srv *directoryService) UpdateAccount(ctx context.Context, externalID string, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing profile input")
	}

	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByExternalID(ctx, externalID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("no account for external id")
			}

			return errors.Wrap(err, "failed to find account")
		}

		applyProfileUpdate(found, input)

		if err := accountRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		account = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update account profile")
	}

	srv.invalidateOwnerViews(ctx, account)

	return account, nil
}

// GetDashboardOverview assembles the owner's dashboard summary.
func (srv *directoryService) GetDashboardOverview(ctx context.Context, externalID string) (*usecase.DashboardOverview, error) {
	var overview *usecase.DashboardOverview

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByExternalID(ctx, externalID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("no account for external id")
			}

			return errors.Wrap(err, "failed to find account")
		}

		overview = &usecase.DashboardOverview{
			Account:   account,
			State:     account.Publication.State(),
			CaseCount: len(account.Cases),
		}
		if overview.State == entity.StateLive {
			overview.PublicURL = srv.cfg.Site.BaseURL + "/site/" + account.Publication.Slug
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to build dashboard overview")
	}

	return overview, nil
}

func applyProfileUpdate(account *entity.Account, input *usecase.UpdateAccountInput) {
	if input.Name != nil && *input.Name != "" {
		account.Name = *input.Name
	}
	if input.AvatarURL != nil {
		account.AvatarURL = *input.AvatarURL
	}
	if input.Title != nil {
		account.Title = *input.Title
	}
	if input.LicenseNo != nil {
		account.LicenseNo = *input.LicenseNo
	}
	if input.Organization != nil {
		account.Organization = *input.Organization
	}
	if input.Phone != nil {
		account.Phone = *input.Phone
	}
	if input.ContactQR != nil {
		account.ContactQR = *input.ContactQR
	}
	if input.Bio != nil {
		account.Bio = *input.Bio
	}
}

// invalidateOwnerViews stales the renderings a profile save may have
// affected, including the public page when the account is live.
// Call-and-forget: a cache failure never fails the mutation.
func (srv *directoryService) invalidateOwnerViews(ctx context.Context, account *entity.Account) {
	paths := []string{
		service.DashboardOverviewView(account.ID),
		service.ProfileView(account.ID),
	}
	if account.Publication.State() == entity.StateLive {
		paths = append(paths, service.PublicSiteView(account.Publication.Slug))
	}

	err := srv.viewCache.Invalidate(ctx, paths...)
	if err != nil {
		srv.logger.Warn("failed to invalidate profile views", "accountID", account.ID, "error", err)
	}
}
