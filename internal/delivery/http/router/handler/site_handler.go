package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lexsite/internal/delivery/http/response"
	"lexsite/internal/domain/entity"
	"lexsite/internal/domain/service"
	"lexsite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SiteHandler serves the public, unauthenticated site surface.
type SiteHandler struct {
	siteUC    usecase.SiteUsecase
	renderer  service.ThemeRenderer
	viewCache service.ViewCache
	logger    *slog.Logger
}

// NewSiteHandler is the constructor for SiteHandler, injected by Fx.
func NewSiteHandler(
	siteUC usecase.SiteUsecase,
	renderer service.ThemeRenderer,
	viewCache service.ViewCache,
	logger *slog.Logger,
) *SiteHandler {
	return &SiteHandler{
		siteUC:    siteUC,
		renderer:  renderer,
		viewCache: viewCache,
		logger:    logger,
	}
}

// GetSitePage renders a published page as HTML. Rendered markup is cached
// under the slug's view path; mutations on the owning account invalidate it.
// Cache failures degrade to a fresh render, never to an error page.
func (h *SiteHandler) GetSitePage(c echo.Context) error {
	slug := c.Param("slug")
	ctx := c.Request().Context()
	viewPath := service.PublicSiteView(slug)

	if cached, ok, err := h.viewCache.Get(ctx, viewPath); err != nil {
		h.logger.Warn("site view cache read failed", "slug", slug, "error", err)
	} else if ok {
		return c.HTMLBlob(http.StatusOK, cached)
	}

	payload, err := h.siteUC.ResolvePublicSite(ctx, slug)
	if err != nil {
		return errors.WithStack(err)
	}

	html, err := h.renderer.Render(payload)
	if err != nil {
		return errors.Wrap(err, "failed to render site page")
	}

	if err := h.viewCache.Set(ctx, viewPath, html); err != nil {
		h.logger.Warn("site view cache write failed", "slug", slug, "error", err)
	}

	return c.HTMLBlob(http.StatusOK, html)
}

// GetSiteData returns the published page's data as JSON for headless clients.
// The payload is trimmed to what the page itself shows; internal identifiers
// and the provider subject never leave the service.
func (h *SiteHandler) GetSiteData(c echo.Context) error {
	payload, err := h.siteUC.ResolvePublicSite(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPublicSite(payload), "Site retrieved successfully")
}

// publicSite is the outward-facing JSON shape of one published page.
type publicSite struct {
	Slug         string       `json:"slug"`
	ThemeID      string       `json:"theme_id"`
	PrimaryColor string       `json:"primary_color"`
	Name         string       `json:"name"`
	Title        string       `json:"title,omitempty"`
	LicenseNo    string       `json:"license_no,omitempty"`
	Organization string       `json:"organization,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	ContactQR    string       `json:"contact_qr,omitempty"`
	Bio          string       `json:"bio,omitempty"`
	AvatarURL    string       `json:"avatar_url,omitempty"`
	Specialties  []string     `json:"specialties"`
	Cases        []publicCase `json:"cases"`
}

type publicCase struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Result      string     `json:"result,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

func toPublicSite(payload *entity.SitePayload) *publicSite {
	site := &publicSite{
		Slug:         payload.Config.Slug,
		ThemeID:      payload.Config.ThemeID,
		PrimaryColor: payload.Config.PrimaryColor,
		Name:         payload.Account.Name,
		Title:        payload.Account.Title,
		LicenseNo:    payload.Account.LicenseNo,
		Organization: payload.Account.Organization,
		Phone:        payload.Account.Phone,
		ContactQR:    payload.Account.ContactQR,
		Bio:          payload.Account.Bio,
		AvatarURL:    payload.Account.AvatarURL,
		Specialties:  make([]string, 0, len(payload.Specialties)),
		Cases:        make([]publicCase, 0, len(payload.Cases)),
	}

	for _, specialty := range payload.Specialties {
		site.Specialties = append(site.Specialties, specialty.Name)
	}
	for _, caseStudy := range payload.Cases {
		site.Cases = append(site.Cases, publicCase{
			Title:       caseStudy.Title,
			Description: caseStudy.Description,
			Result:      caseStudy.Result,
			Date:        caseStudy.Date,
		})
	}

	return site
}
