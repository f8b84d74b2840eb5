package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lexsite/config"
	"lexsite/internal/domain/service"
	"lexsite/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			Emails: []string{"Admin@Example.com"},
		},
	}
}

func invokeWithAuth(t *testing.T, mw *AuthMiddleware, header string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.Authenticate(handler)(c)
	require.NoError(t, err)

	return rec
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	verifier := &mocks.IdentityVerifier{}
	mw := NewAuthMiddleware(verifier, testAuthConfig())

	rec := invokeWithAuth(t, mw, "", func(c echo.Context) error {
		t.Fatal("handler must not run without credentials")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	verifier := &mocks.IdentityVerifier{}
	mw := NewAuthMiddleware(verifier, testAuthConfig())

	rec := invokeWithAuth(t, mw, "Basic dXNlcjpwYXNz", func(c echo.Context) error {
		t.Fatal("handler must not run without a bearer token")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	verifier := &mocks.IdentityVerifier{}
	verifier.
		On("Verify", mock.Anything, "bad-token").
		Return(nil, errors.New("signature mismatch"))
	mw := NewAuthMiddleware(verifier, testAuthConfig())

	rec := invokeWithAuth(t, mw, "Bearer bad-token", func(c echo.Context) error {
		t.Fatal("handler must not run with an invalid token")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	verifier := &mocks.IdentityVerifier{}
	identity := &service.Identity{ExternalID: "auth0|ok", Email: "lawyer@example.com"}
	verifier.
		On("Verify", mock.Anything, "good-token").
		Return(identity, nil)
	mw := NewAuthMiddleware(verifier, testAuthConfig())

	var seen *service.Identity
	rec := invokeWithAuth(t, mw, "Bearer good-token", func(c echo.Context) error {
		got, ok := IdentityFrom(c)
		require.True(t, ok)
		seen = got

		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "auth0|ok", seen.ExternalID)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	mw := NewAuthMiddleware(&mocks.IdentityVerifier{}, testAuthConfig())

	cases := []struct {
		name     string
		identity *service.Identity
		wantCode int
	}{
		{"allowlisted email", &service.Identity{Email: "admin@example.com"}, http.StatusOK},
		{"case-insensitive match", &service.Identity{Email: "ADMIN@EXAMPLE.COM"}, http.StatusOK},
		{"other email", &service.Identity{Email: "user@example.com"}, http.StatusForbidden},
		{"no email", &service.Identity{}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/accounts", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(IdentityKey, tc.identity)

			err := mw.RequireAdmin(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireAdmin_NoIdentity(t *testing.T) {
	mw := NewAuthMiddleware(&mocks.IdentityVerifier{}, testAuthConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/accounts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.RequireAdmin(func(c echo.Context) error {
		t.Fatal("handler must not run without an identity")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
