package impl

import (
	"context"
	"testing"

	"lexsite/internal/domain/entity"
	domainerrors "lexsite/internal/domain/errors"
	"lexsite/internal/domain/repository"
	"lexsite/internal/mocks"
	"lexsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// siteServiceFixtures holds all test dependencies for site service tests.
type siteServiceFixtures struct {
	service usecase.SiteUsecase
	factory *mocks.RepositoryFactory
}

func createTestSiteService(t *testing.T) siteServiceFixtures {
	t.Helper()

	factory := mocks.NewRepositoryFactory()
	service := NewSiteService(mocks.NewTransactionManager(factory), testConfig(), testLogger())

	return siteServiceFixtures{
		service: service,
		factory: factory,
	}
}

func TestSiteService_Resolve_UnknownSlug(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	fx.factory.Publications.
		On("FindBySlug", ctx, "nobody").
		Return(nil, repository.ErrPublicationNotFound)

	_, err := fx.service.ResolvePublicSite(ctx, "nobody")

	assert.ErrorIs(t, err, domainerrors.ErrSiteNotFound)
}

func TestSiteService_Resolve_DraftIndistinguishableFromMissing(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	fx.factory.Publications.
		On("FindBySlug", ctx, "drafted").
		Return(&entity.PublicationConfig{
			AccountID: uuid.New(),
			Slug:      "drafted",
			Published: false,
		}, nil)
	fx.factory.Publications.
		On("FindBySlug", ctx, "missing").
		Return(nil, repository.ErrPublicationNotFound)

	_, draftErr := fx.service.ResolvePublicSite(ctx, "drafted")
	_, missingErr := fx.service.ResolvePublicSite(ctx, "missing")

	require.Error(t, draftErr)
	require.Error(t, missingErr)

	var draftApp, missingApp domainerrors.AppError
	require.ErrorAs(t, draftErr, &draftApp)
	require.ErrorAs(t, missingErr, &missingApp)
	assert.Equal(t, missingApp.HTTPCode(), draftApp.HTTPCode())
	assert.Equal(t, missingApp.ErrorCode(), draftApp.ErrorCode())
	assert.Equal(t, missingApp.Message(), draftApp.Message())
}

func TestSiteService_Resolve_PublishedSite(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	accountID := uuid.New()
	pubConfig := &entity.PublicationConfig{
		AccountID:    accountID,
		Slug:         "zhang-wei",
		ThemeID:      entity.ThemeModern,
		PrimaryColor: "#0f172a",
		Published:    true,
	}
	account := &entity.Account{
		ID:          accountID,
		Name:        "张伟",
		Publication: pubConfig,
		Cases:       []entity.CaseStudy{{Title: "胜诉案例"}},
		Specialties: []entity.Specialty{{Name: "刑事辩护"}},
	}

	fx.factory.Publications.
		On("FindBySlug", ctx, "zhang-wei").
		Return(pubConfig, nil)
	fx.factory.Accounts.
		On("FindByID", ctx, accountID).
		Return(account, nil)

	payload, err := fx.service.ResolvePublicSite(ctx, "zhang-wei")

	require.NoError(t, err)
	assert.Equal(t, "张伟", payload.Account.Name)
	assert.Equal(t, entity.ThemeModern, payload.Config.ThemeID)
	require.Len(t, payload.Cases, 1)
	assert.Equal(t, "胜诉案例", payload.Cases[0].Title)
	require.Len(t, payload.Specialties, 1)
	assert.Equal(t, "刑事辩护", payload.Specialties[0].Name)
}

func TestSiteService_PublicSiteURL(t *testing.T) {
	fx := createTestSiteService(t)

	assert.Equal(t, "https://lexsite.example.com/site/li-na", fx.service.PublicSiteURL("li-na"))
}
