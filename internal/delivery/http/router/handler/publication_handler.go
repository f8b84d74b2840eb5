package handler

import (
	"log/slog"
	"net/http"

	"lexsite/internal/delivery/http/response"
	domainerrors "lexsite/internal/domain/errors"
	"lexsite/internal/domain/service"
	"lexsite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PublicationHandler holds dependencies for site-settings handlers.
type PublicationHandler struct {
	directoryUC   usecase.DirectoryUsecase
	publicationUC usecase.PublicationUsecase
	siteUC        usecase.SiteUsecase
	qrSvc         service.QRCodeService
	logger        *slog.Logger
}

// NewPublicationHandler is the constructor for PublicationHandler, injected by Fx.
func NewPublicationHandler(
	directoryUC usecase.DirectoryUsecase,
	publicationUC usecase.PublicationUsecase,
	siteUC usecase.SiteUsecase,
	qrSvc service.QRCodeService,
	logger *slog.Logger,
) *PublicationHandler {
	return &PublicationHandler{
		directoryUC:   directoryUC,
		publicationUC: publicationUC,
		siteUC:        siteUC,
		qrSvc:         qrSvc,
		logger:        logger,
	}
}

// UpsertSiteRequest represents the request body for one settings save. Slug
// format and uniqueness are business rules and stay in the usecase; the tags
// only cap lengths to the column widths.
type UpsertSiteRequest struct {
	Slug         *string `json:"slug" validate:"omitempty,max=64"`
	ThemeID      *string `json:"theme_id" validate:"omitempty,max=32"`
	PrimaryColor *string `json:"primary_color" validate:"omitempty,max=32"`
	Published    bool    `json:"published"`
}

// UpsertSite handles one settings save for the caller's site.
func (h *PublicationHandler) UpsertSite(c echo.Context) error {
	account, err := callerAccount(c, h.directoryUC)
	if err != nil {
		return err
	}

	var req UpsertSiteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid site settings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pubConfig, err := h.publicationUC.UpsertPublicationConfig(c.Request().Context(), account.ID, &usecase.UpsertPublicationInput{
		Slug:         req.Slug,
		ThemeID:      req.ThemeID,
		PrimaryColor: req.PrimaryColor,
		Published:    req.Published,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pubConfig, "Site settings saved successfully")
}

// GetSiteQR returns a PNG QR code pointing at the caller's public page.
func (h *PublicationHandler) GetSiteQR(c echo.Context) error {
	account, err := callerAccount(c, h.directoryUC)
	if err != nil {
		return err
	}

	if account.Publication == nil {
		return domainerrors.ErrNotFound.WrapMessage("site not configured yet")
	}

	siteURL := h.siteUC.PublicSiteURL(account.Publication.Slug)
	png, err := h.qrSvc.GenerateSiteQR(siteURL)
	if err != nil {
		return errors.Wrap(err, "failed to generate site QR")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
