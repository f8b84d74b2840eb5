package handler

import (
	"log/slog"
	"net/http"

	"lexsite/internal/delivery/http/response"
	"lexsite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the privileged directory handlers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUC usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

// ListAccounts returns the full account directory. The allowlist gate runs in
// middleware before this handler is reached.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.adminUC.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accounts, "Accounts retrieved successfully")
}
