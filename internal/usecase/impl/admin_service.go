package impl

import (
	"context"
	"log/slog"

	"lexsite/internal/domain/repository"
	"lexsite/internal/usecase"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListAccounts returns a summary row per account, newest first.
func (srv *adminService) ListAccounts(ctx context.Context) ([]usecase.AccountSummary, error) {
	var summaries []usecase.AccountSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts, err := repoFactory.AccountRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list accounts")
		}

		summaries = make([]usecase.AccountSummary, 0, len(accounts))
		for i := range accounts {
			account := &accounts[i]
			summary := usecase.AccountSummary{
				ID:        account.ID,
				Email:     account.Email,
				Name:      account.Name,
				State:     account.Publication.State(),
				CreatedAt: account.CreatedAt,
			}
			if account.Publication != nil {
				summary.Slug = account.Publication.Slug
			}
			summaries = append(summaries, summary)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to build account directory")
	}

	return summaries, nil
}
