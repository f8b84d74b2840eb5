package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"lexsite/internal/delivery/http/middleware"
	"lexsite/internal/delivery/http/response"
	"lexsite/internal/delivery/http/validator"
	"lexsite/internal/domain/entity"
	"lexsite/internal/domain/service"
	"lexsite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an Echo context the way the server wires it: the
// struct-tag validator installed and an authenticated identity already set.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, &service.Identity{
		ExternalID: "auth0|abc123",
		Email:      "lawyer@example.com",
	})

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func testHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// directoryStub satisfies usecase.DirectoryUsecase with a fixed account and
// records whether a profile update reached the usecase layer.
type directoryStub struct {
	account *entity.Account
	updated int
}

func (s *directoryStub) GetOrCreateAccount(context.Context, *service.Identity) (*entity.Account, error) {
	return s.account, nil
}

func (s *directoryStub) UpdateAccount(context.Context, string, *usecase.UpdateAccountInput) (*entity.Account, error) {
	s.updated++

	return s.account, nil
}

func (s *directoryStub) GetDashboardOverview(context.Context, string) (*usecase.DashboardOverview, error) {
	return &usecase.DashboardOverview{Account: s.account}, nil
}

// caseStub satisfies usecase.CaseStudyUsecase and counts creations.
type caseStub struct {
	created int
}

func (s *caseStub) CreateCaseStudy(_ context.Context, accountID uuid.UUID, input *usecase.CreateCaseStudyInput) (*entity.CaseStudy, error) {
	s.created++

	return &entity.CaseStudy{
		ID:          uuid.New(),
		AccountID:   accountID,
		Title:       input.Title,
		Description: input.Description,
	}, nil
}

func (s *caseStub) DeleteCaseStudy(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (s *caseStub) ListCaseStudies(context.Context, uuid.UUID) ([]entity.CaseStudy, error) {
	return nil, nil
}

func (s *caseStub) ListSpecialties(context.Context, uuid.UUID) ([]entity.Specialty, error) {
	return nil, nil
}

// publicationStub satisfies usecase.PublicationUsecase and counts saves.
type publicationStub struct {
	saved int
}

func (s *publicationStub) UpsertPublicationConfig(_ context.Context, accountID uuid.UUID, input *usecase.UpsertPublicationInput) (*entity.PublicationConfig, error) {
	s.saved++

	return &entity.PublicationConfig{AccountID: accountID, Published: input.Published}, nil
}
