package middleware

import (
	"strings"

	"lexsite/config"
	"lexsite/internal/delivery/http/response"
	"lexsite/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// IdentityKey is the echo context key the verified identity is stored under.
const IdentityKey = "identity"

// AuthMiddleware provides middleware for identity verification and the admin
// gate.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, cfg: cfg}
}

// Authenticate validates the bearer credential and stores the resulting
// identity on the context. Handlers never see an unverified request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		credential := strings.TrimPrefix(authHeader, "Bearer ")
		if credential == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), credential)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		c.Set(IdentityKey, identity)

		return next(c)
	}
}

// RequireAdmin gates a route on the configured admin allowlist. Email
// comparison is case-insensitive. Must run AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := c.Get(IdentityKey).(*service.Identity)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Identity missing from request")
		}

		if !m.isAdmin(identity.Email) {
			return response.Forbidden(c, "FORBIDDEN", "Admin access required")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) isAdmin(email string) bool {
	if email == "" {
		return false
	}
	for _, allowed := range m.cfg.Admin.Emails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}

	return false
}

// IdentityFrom extracts the verified identity set by Authenticate.
func IdentityFrom(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(IdentityKey).(*service.Identity)

	return identity, ok
}
