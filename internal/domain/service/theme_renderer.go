package service

import "lexsite/internal/domain/entity"

// ThemeRenderer turns an assembled site payload into a full HTML page. Pure
// presentation: a renderer never reaches back into storage.
type ThemeRenderer interface {
	// Render produces the markup for one public page. The payload's theme id
	// selects the variant; unknown ids deterministically render the default
	// variant instead of failing the page.
	Render(payload *entity.SitePayload) ([]byte, error)
}
