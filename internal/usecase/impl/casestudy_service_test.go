package impl

import (
	"context"
	"testing"
	"time"

	"lexsite/internal/domain/entity"
	domainerrors "lexsite/internal/domain/errors"
	"lexsite/internal/domain/repository"
	"lexsite/internal/domain/service"
	"lexsite/internal/mocks"
	"lexsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// caseStudyServiceFixtures holds all test dependencies for case study service tests.
type caseStudyServiceFixtures struct {
	service   usecase.CaseStudyUsecase
	factory   *mocks.RepositoryFactory
	viewCache *mocks.ViewCache
}

func createTestCaseStudyService(t *testing.T) caseStudyServiceFixtures {
	t.Helper()

	factory := mocks.NewRepositoryFactory()
	viewCache := mocks.NewViewCache()
	service := NewCaseStudyService(mocks.NewTransactionManager(factory), viewCache, testLogger())

	return caseStudyServiceFixtures{
		service:   service,
		factory:   factory,
		viewCache: viewCache,
	}
}

func TestCaseStudyService_Create_NilInput(t *testing.T) {
	fx := createTestCaseStudyService(t)

	// A request with no body binds to nothing; that must surface as a
	// validation failure, never reach the repository.
	_, err := fx.service.CreateCaseStudy(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.factory.Cases.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaseStudyService_Create_AccountVanished(t *testing.T) {
	fx := createTestCaseStudyService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.factory.Cases.
		On("Create", ctx, mock.AnythingOfType("*entity.CaseStudy")).
		Return(repository.ErrAccountNotFound)

	_, err := fx.service.CreateCaseStudy(ctx, accountID, &usecase.CreateCaseStudyInput{
		Title:       "title",
		Description: "description",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound, "FK violation maps to the taxonomy, not a 500")
}

func TestCaseStudyService_Create_RequiresTitleAndDescription(t *testing.T) {
	fx := createTestCaseStudyService(t)

	inputs := []*usecase.CreateCaseStudyInput{
		{Title: "", Description: "desc"},
		{Title: "title", Description: ""},
		{Title: "   ", Description: "desc"},
		{Title: "title", Description: "\t\n"},
	}

	for _, input := range inputs {
		_, err := fx.service.CreateCaseStudy(context.Background(), uuid.New(), input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}

	fx.factory.Cases.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaseStudyService_Create_TrimsAndPersists(t *testing.T) {
	fx := createTestCaseStudyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	fx.factory.Cases.
		On("Create", ctx, mock.AnythingOfType("*entity.CaseStudy")).
		Return(nil)
	fx.factory.Publications.
		On("FindByAccountID", ctx, accountID).
		Return(nil, repository.ErrPublicationNotFound)

	caseStudy, err := fx.service.CreateCaseStudy(ctx, accountID, &usecase.CreateCaseStudyInput{
		Title:       "  合同纠纷胜诉  ",
		Description: " 代理原告追回全部欠款 ",
		Result:      " 全额支持诉讼请求 ",
		Date:        &date,
	})

	require.NoError(t, err)
	assert.Equal(t, "合同纠纷胜诉", caseStudy.Title)
	assert.Equal(t, "代理原告追回全部欠款", caseStudy.Description)
	assert.Equal(t, "全额支持诉讼请求", caseStudy.Result)
	assert.Equal(t, accountID, caseStudy.AccountID)
	assert.Contains(t, fx.viewCache.Invalidated, service.CaseListView(accountID))
	assert.Contains(t, fx.viewCache.Invalidated, service.DashboardOverviewView(accountID))
}

func TestCaseStudyService_Create_LiveSiteInvalidated(t *testing.T) {
	fx := createTestCaseStudyService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.factory.Cases.
		On("Create", ctx, mock.AnythingOfType("*entity.CaseStudy")).
		Return(nil)
	fx.factory.Publications.
		On("FindByAccountID", ctx, accountID).
		Return(&entity.PublicationConfig{AccountID: accountID, Slug: "live-one", Published: true}, nil)

	_, err := fx.service.CreateCaseStudy(ctx, accountID, &usecase.CreateCaseStudyInput{
		Title:       "title",
		Description: "description",
	})

	require.NoError(t, err)
	assert.Contains(t, fx.viewCache.Invalidated, service.PublicSiteView("live-one"))
}

func TestCaseStudyService_Delete_ForeignCaseForbidden(t *testing.T) {
	fx := createTestCaseStudyService(t)

	ctx := context.Background()
	caseID := uuid.New()
	owner := uuid.New()
	intruder := uuid.New()

	fx.factory.Cases.
		On("FindByID", ctx, caseID).
		Return(&entity.CaseStudy{ID: caseID, AccountID: owner}, nil)

	err := fx.service.DeleteCaseStudy(ctx, intruder, caseID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden, "foreign case fails Forbidden, not NotFound")
	fx.factory.Cases.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCaseStudyService_Delete_MissingCase(t *testing.T) {
	fx := createTestCaseStudyService(t)

	ctx := context.Background()
	caseID := uuid.New()

	fx.factory.Cases.
		On("FindByID", ctx, caseID).
		Return(nil, repository.ErrCaseNotFound)

	err := fx.service.DeleteCaseStudy(ctx, uuid.New(), caseID)

	assert.ErrorIs(t, err, domainerrors.ErrCaseNotFound)
}

func TestCaseStudyService_Delete_OwnCase(t *testing.T) {
	fx := createTestCaseStudyService(t)

	ctx := context.Background()
	caseID := uuid.New()
	accountID := uuid.New()

	fx.factory.Cases.
		On("FindByID", ctx, caseID).
		Return(&entity.CaseStudy{ID: caseID, AccountID: accountID}, nil)
	fx.factory.Cases.
		On("Delete", ctx, caseID).
		Return(nil)
	fx.factory.Publications.
		On("FindByAccountID", ctx, accountID).
		Return(&entity.PublicationConfig{AccountID: accountID, Slug: "owner", Published: true}, nil)

	err := fx.service.DeleteCaseStudy(ctx, accountID, caseID)

	require.NoError(t, err)
	assert.Contains(t, fx.viewCache.Invalidated, service.CaseListView(accountID))
	assert.Contains(t, fx.viewCache.Invalidated, service.PublicSiteView("owner"))
}

func TestCaseStudyService_ListCaseStudies(t *testing.T) {
	fx := createTestCaseStudyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	dated := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	// Repository order is date descending with undated cases last.
	stored := []entity.CaseStudy{
		{Title: "recent", Date: &dated},
		{Title: "undated", Date: nil},
	}

	fx.factory.Cases.
		On("ListByAccountID", ctx, accountID).
		Return(stored, nil)

	cases, err := fx.service.ListCaseStudies(ctx, accountID)

	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "recent", cases[0].Title)
	assert.Equal(t, "undated", cases[1].Title)
}

func TestCaseStudyService_ListSpecialties(t *testing.T) {
	fx := createTestCaseStudyService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.factory.Specialties.
		On("ListByAccountID", ctx, accountID).
		Return([]entity.Specialty{{Name: "婚姻家事"}, {Name: "知识产权"}}, nil)

	specialties, err := fx.service.ListSpecialties(ctx, accountID)

	require.NoError(t, err)
	require.Len(t, specialties, 2)
	assert.Equal(t, "婚姻家事", specialties[0].Name)
}
