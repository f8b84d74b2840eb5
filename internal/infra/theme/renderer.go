// Package theme renders public site pages. Each theme is a pure function
// from an assembled payload to markup; the registry picks the variant by
// theme id and falls back to classic for anything it does not recognize.
package theme

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"lexsite/internal/domain/entity"
	"lexsite/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

type registry struct {
	templates map[string]*template.Template
	fallback  string
	bioPolicy *bluemonday.Policy
}

// NewRegistry parses the embedded theme templates and returns the renderer.
func NewRegistry() (service.ThemeRenderer, error) {
	templates := make(map[string]*template.Template)
	for _, id := range []string{entity.ThemeClassic, entity.ThemeModern} {
		tmpl, err := template.ParseFS(templateFS, "templates/"+id+".html.tmpl")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s theme template", id)
		}
		templates[id] = tmpl
	}

	return &registry{
		templates: templates,
		fallback:  entity.ThemeClassic,
		bioPolicy: bluemonday.UGCPolicy(),
	}, nil
}

// Render produces the markup for one public page.
func (r *registry) Render(payload *entity.SitePayload) ([]byte, error) {
	tmpl, ok := r.templates[payload.Config.ThemeID]
	if !ok {
		tmpl = r.templates[r.fallback]
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.buildView(payload)); err != nil {
		return nil, errors.Wrap(err, "failed to render site page")
	}

	return buf.Bytes(), nil
}

// pageView is the flattened template input.
type pageView struct {
	Name         string
	Initial      string
	Title        string
	Organization string
	Phone        string
	Email        string
	LicenseNo    string
	ContactQR    string
	AvatarURL    string
	Bio          template.HTML
	PrimaryColor string
	Specialties  []string
	Cases        []caseView
}

type caseView struct {
	Title       string
	Description string
	Result      string
	DateText    string
}

func (r *registry) buildView(payload *entity.SitePayload) pageView {
	account := payload.Account

	view := pageView{
		Name:         account.Name,
		Title:        account.Title,
		Organization: account.Organization,
		Phone:        account.Phone,
		Email:        account.Email,
		LicenseNo:    account.LicenseNo,
		ContactQR:    account.ContactQR,
		AvatarURL:    account.AvatarURL,
		PrimaryColor: payload.Config.PrimaryColor,
		// The bio may carry user-authored markup; sanitize it before the
		// template marks it trusted.
		Bio: template.HTML(r.bioPolicy.Sanitize(account.Bio)), //nolint:gosec // sanitized above
	}

	if view.Name == "" {
		view.Name = "律师主页"
	}
	for _, runeValue := range account.Name {
		view.Initial = string(runeValue)

		break
	}

	for _, specialty := range payload.Specialties {
		view.Specialties = append(view.Specialties, specialty.Name)
	}
	for _, cs := range payload.Cases {
		view.Cases = append(view.Cases, caseView{
			Title:       cs.Title,
			Description: cs.Description,
			Result:      cs.Result,
			DateText:    formatCaseDate(cs.Date),
		})
	}

	return view
}

func formatCaseDate(date *time.Time) string {
	if date == nil {
		return ""
	}

	return date.Format("2006年01月02日")
}
