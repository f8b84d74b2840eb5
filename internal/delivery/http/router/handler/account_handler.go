// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"lexsite/internal/delivery/http/middleware"
	"lexsite/internal/delivery/http/response"
	"lexsite/internal/domain/entity"
	domainerrors "lexsite/internal/domain/errors"
	"lexsite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(directoryUC usecase.DirectoryUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		directoryUC: directoryUC,
		logger:      logger,
	}
}

// GetMe returns the caller's account, provisioning it on first touch.
func (h *AccountHandler) GetMe(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Identity missing from request")
	}

	account, err := h.directoryUC.GetOrCreateAccount(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Account retrieved successfully")
}

// UpdateProfileRequest represents the request body for a partial profile
// update. Absent fields stay untouched; the length caps mirror the column
// widths so oversized input fails before it reaches the database.
type UpdateProfileRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	AvatarURL    *string `json:"avatar_url" validate:"omitempty,max=512"`
	Title        *string `json:"title" validate:"omitempty,max=100"`
	LicenseNo    *string `json:"license_no" validate:"omitempty,max=64"`
	Organization *string `json:"organization" validate:"omitempty,max=255"`
	Phone        *string `json:"phone" validate:"omitempty,max=32"`
	ContactQR    *string `json:"contact_qr" validate:"omitempty,max=512"`
	Bio          *string `json:"bio"`
}

// UpdateMe applies a partial profile update to the caller's account.
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Identity missing from request")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	account, err := h.directoryUC.UpdateAccount(c.Request().Context(), identity.ExternalID, &usecase.UpdateAccountInput{
		Name:         req.Name,
		AvatarURL:    req.AvatarURL,
		Title:        req.Title,
		LicenseNo:    req.LicenseNo,
		Organization: req.Organization,
		Phone:        req.Phone,
		ContactQR:    req.ContactQR,
		Bio:          req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Profile updated successfully")
}

// GetOverview returns the caller's dashboard summary.
func (h *AccountHandler) GetOverview(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Identity missing from request")
	}

	overview, err := h.directoryUC.GetDashboardOverview(c.Request().Context(), identity.ExternalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview, "Overview retrieved successfully")
}

// callerAccount resolves the caller's identity to its account, provisioning
// it when absent. Shared by the handlers that key their work on account id.
// Failures come back as taxonomy errors for the central error handler.
func callerAccount(c echo.Context, directoryUC usecase.DirectoryUsecase) (*entity.Account, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("identity missing from context")
	}

	account, err := directoryUC.GetOrCreateAccount(c.Request().Context(), identity)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return account, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
