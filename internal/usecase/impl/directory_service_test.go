package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lexsite/config"
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

func testConfig() *config.Config {
	cfg := &config.Config{
		Site: &config.SiteConfig{
			BaseURL:            "https://lexsite.example.com",
			DefaultTheme:       entity.ThemeClassic,
			DefaultAccentColor: "#1e40af",
		},
		Admin: &config.AdminConfig{
			Emails: []string{"admin@example.com"},
		},
	}

	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// directoryServiceFixtures holds all test dependencies for directory service tests.
type directoryServiceFixtures struct {
	service   usecase.DirectoryUsecase
	factory   *mocks.RepositoryFactory
	viewCache *mocks.ViewCache
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	t.Helper()

	factory := mocks.NewRepositoryFactory()
	viewCache := mocks.NewViewCache()
	service := NewDirectoryService(mocks.NewTransactionManager(factory), viewCache, testConfig(), testLogger())

	return directoryServiceFixtures{
		service:   service,
		factory:   factory,
		viewCache: viewCache,
	}
}

func TestDirectoryService_GetOrCreateAccount_Existing(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	existing := &entity.Account{
		ID:         uuid.New(),
		ExternalID: "auth0|existing",
		Email:      "lawyer@example.com",
	}

	fx.factory.Accounts.
		On("FindByExternalID", ctx, "auth0|existing").
		Return(existing, nil)

	account, err := fx.service.GetOrCreateAccount(ctx, &service.Identity{ExternalID: "auth0|existing"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, account.ID)
	fx.factory.Accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDirectoryService_GetOrCreateAccount_ProvisionsOnFirstTouch(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	identity := &service.Identity{
		ExternalID: "auth0|first-touch",
		Email:      "new@example.com",
		Name:       "New Lawyer",
		AvatarURL:  "https://cdn.example.com/a.png",
	}

	fx.factory.Accounts.
		On("FindByExternalID", ctx, identity.ExternalID).
		Return(nil, repository.ErrAccountNotFound)
	fx.factory.Accounts.
		On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	account, err := fx.service.GetOrCreateAccount(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, identity.ExternalID, account.ExternalID)
	assert.Equal(t, identity.Email, account.Email)
	assert.Equal(t, identity.Name, account.Name)
	assert.Equal(t, identity.AvatarURL, account.AvatarURL)
}

func TestDirectoryService_GetOrCreateAccount_LostRaceRereadsWinner(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	identity := &service.Identity{ExternalID: "auth0|racer"}
	winner := &entity.Account{
		ID:         uuid.New(),
		ExternalID: identity.ExternalID,
	}

	fx.factory.Accounts.
		On("FindByExternalID", ctx, identity.ExternalID).
		Return(nil, repository.ErrAccountNotFound).Once()
	fx.factory.Accounts.
		On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateExternalID)
	fx.factory.Accounts.
		On("FindByExternalID", ctx, identity.ExternalID).
		Return(winner, nil).Once()

	account, err := fx.service.GetOrCreateAccount(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, winner.ID, account.ID)
	fx.factory.Accounts.AssertNumberOfCalls(t, "FindByExternalID", 2)
}

func TestDirectoryService_UpdateAccount_NilInput(t *testing.T) {
	fx := createTestDirectoryService(t)

	// A request with no body binds to nothing; that must surface as a
	// validation failure, never a panic.
	_, err := fx.service.UpdateAccount(context.Background(), "auth0|abc", nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.factory.Accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDirectoryService_UpdateAccount_PartialUpdate(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	existing := &entity.Account{
		ID:         uuid.New(),
		ExternalID: "auth0|partial",
		Name:       "Original Name",
		Title:      "Partner",
		Phone:      "13800000000",
	}

	fx.factory.Accounts.
		On("FindByExternalID", ctx, existing.ExternalID).
		Return(existing, nil)
	fx.factory.Accounts.
		On("Update", ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	emptyName := ""
	newTitle := "Senior Partner"
	clearedPhone := ""
	account, err := fx.service.UpdateAccount(ctx, existing.ExternalID, &usecase.UpdateAccountInput{
		Name:  &emptyName,
		Title: &newTitle,
		Phone: &clearedPhone,
	})

	require.NoError(t, err)
	assert.Equal(t, "Original Name", account.Name, "empty name is ignored, not cleared")
	assert.Equal(t, "Senior Partner", account.Title)
	assert.Empty(t, account.Phone, "explicit empty string clears the field")
	assert.Contains(t, fx.viewCache.Invalidated, service.DashboardOverviewView(existing.ID))
	assert.Contains(t, fx.viewCache.Invalidated, service.ProfileView(existing.ID))
}

func TestDirectoryService_UpdateAccount_LiveSiteInvalidated(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	existing := &entity.Account{
		ID:         uuid.New(),
		ExternalID: "auth0|live",
		Publication: &entity.PublicationConfig{
			Slug:      "zhang-wei",
			Published: true,
		},
	}

	fx.factory.Accounts.
		On("FindByExternalID", ctx, existing.ExternalID).
		Return(existing, nil)
	fx.factory.Accounts.
		On("Update", ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	bio := "updated bio"
	_, err := fx.service.UpdateAccount(ctx, existing.ExternalID, &usecase.UpdateAccountInput{Bio: &bio})

	require.NoError(t, err)
	assert.Contains(t, fx.viewCache.Invalidated, service.PublicSiteView("zhang-wei"))
}

func TestDirectoryService_UpdateAccount_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	fx.factory.Accounts.
		On("FindByExternalID", ctx, "auth0|ghost").
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.UpdateAccount(ctx, "auth0|ghost", &usecase.UpdateAccountInput{})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestDirectoryService_GetDashboardOverview(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:         uuid.New(),
		ExternalID: "auth0|overview",
		Cases:      []entity.CaseStudy{{Title: "a"}, {Title: "b"}},
		Publication: &entity.PublicationConfig{
			Slug:      "li-na",
			Published: true,
		},
	}

	fx.factory.Accounts.
		On("FindByExternalID", ctx, account.ExternalID).
		Return(account, nil)

	overview, err := fx.service.GetDashboardOverview(ctx, account.ExternalID)

	require.NoError(t, err)
	assert.Equal(t, entity.StateLive, overview.State)
	assert.Equal(t, 2, overview.CaseCount)
	assert.Equal(t, "https://lexsite.example.com/site/li-na", overview.PublicURL)
}

func TestDirectoryService_GetDashboardOverview_DraftHasNoPublicURL(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:          uuid.New(),
		ExternalID:  "auth0|draft",
		Publication: &entity.PublicationConfig{Slug: "wang", Published: false},
	}

	fx.factory.Accounts.
		On("FindByExternalID", ctx, account.ExternalID).
		Return(account, nil)

	overview, err := fx.service.GetDashboardOverview(ctx, account.ExternalID)

	require.NoError(t, err)
	assert.Equal(t, entity.StateDraft, overview.State)
	assert.Empty(t, overview.PublicURL)
}
