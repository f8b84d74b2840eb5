package impl

import (
	"context"
	"log/slog"
	"strings"

	"lexsite/internal/domain/entity"
	domainerrors "lexsite/internal/domain/errors"
	"lexsite/internal/domain/repository"
	"lexsite/internal/domain/service"
	"lexsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// caseStudyService implements the CaseStudyUsecase interface.
type caseStudyService struct {
	txManager repository.TransactionManager
	viewCache service.ViewCache
	logger    *slog.Logger
}

// NewCaseStudyService is the constructor for caseStudyService.
func NewCaseStudyService(
	txManager repository.TransactionManager,
	viewCache service.ViewCache,
	logger *slog.Logger,
) usecase.CaseStudyUsecase {
	return &caseStudyService{
		txManager: txManager,
		viewCache: viewCache,
		logger:    logger,
	}
}

// CreateCaseStudy validates and persists a new case.
func (srv *caseStudyService) CreateCaseStudy(ctx context.Context, accountID uuid.UUID, input *usecase.CreateCaseStudyInput) (*entity.CaseStudy, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing case input")
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and description are required")
	}

	caseStudy := &entity.CaseStudy{
		AccountID:   accountID,
		Title:       title,
		Description: description,
		Result:      strings.TrimSpace(input.Result),
		Date:        input.Date,
	}

	var liveSlug string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CaseStudyRepo().Create(ctx, caseStudy); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("owning account no longer exists")
			}

			return errors.Wrap(err, "failed to create case study")
		}
		liveSlug = findLiveSlug(ctx, repoFactory, accountID)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to add case study")
	}

	srv.invalidateCaseViews(ctx, accountID, liveSlug)

	return caseStudy, nil
}

// DeleteCaseStudy removes a case after asserting ownership. The assertion is
// an explicit comparison, not a query filter, so a missing case and a
// foreign case fail differently and authorization stays testable.
func (srv *caseStudyService) DeleteCaseStudy(ctx context.Context, accountID, caseID uuid.UUID) error {
	var liveSlug string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		caseRepo := repoFactory.CaseStudyRepo()

		caseStudy, err := caseRepo.FindByID(ctx, caseID)
		if err != nil {
			if errors.Is(err, repository.ErrCaseNotFound) {
				return domainerrors.ErrCaseNotFound.WrapMessage("no case for id")
			}

			return errors.Wrap(err, "failed to find case study")
		}

		if caseStudy.AccountID != accountID {
			return domainerrors.ErrForbidden.WrapMessage("case owned by another account")
		}

		if err := caseRepo.Delete(ctx, caseID); err != nil {
			return errors.Wrap(err, "failed to delete case study")
		}
		liveSlug = findLiveSlug(ctx, repoFactory, accountID)

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to remove case study")
	}

	srv.invalidateCaseViews(ctx, accountID, liveSlug)

	return nil
}

// ListCaseStudies returns the account's cases in display order.
func (srv *caseStudyService) ListCaseStudies(ctx context.Context, accountID uuid.UUID) ([]entity.CaseStudy, error) {
	var cases []entity.CaseStudy

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CaseStudyRepo().ListByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to list case studies")
		}
		cases = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list case studies")
	}

	return cases, nil
}

// ListSpecialties returns the account's specialties in display order.
func (srv *caseStudyService) ListSpecialties(ctx context.Context, accountID uuid.UUID) ([]entity.Specialty, error) {
	var specialties []entity.Specialty

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SpecialtyRepo().ListByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to list specialties")
		}
		specialties = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list specialties")
	}

	return specialties, nil
}

func (srv *caseStudyService) invalidateCaseViews(ctx context.Context, accountID uuid.UUID, liveSlug string) {
	paths := []string{
		service.DashboardOverviewView(accountID),
		service.CaseListView(accountID),
	}
	if liveSlug != "" {
		paths = append(paths, service.PublicSiteView(liveSlug))
	}

	err := srv.viewCache.Invalidate(ctx, paths...)
	if err != nil {
		srv.logger.Warn("failed to invalidate case views", "accountID", accountID, "error", err)
	}
}

// findLiveSlug returns the account's slug when its page is live, empty
// otherwise. Lookup failures degrade to empty rather than failing the
// surrounding mutation.
func findLiveSlug(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID) string {
	pubConfig, err := repoFactory.PublicationRepo().FindByAccountID(ctx, accountID)
	if err != nil || !pubConfig.Published {
		return ""
	}

	return pubConfig.Slug
}
