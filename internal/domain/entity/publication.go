package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Theme identifiers understood by the renderer. The column stays an open
// string so future variants can ship without a migration; anything
// unrecognized renders as ThemeClassic.
const (
	ThemeClassic = "classic"
	ThemeModern  = "modern"
)

// PublicationState describes where an account sits in the publish lifecycle.
type PublicationState string

const (
	// StateUnconfigured means no publication config row exists yet.
	StateUnconfigured PublicationState = "unconfigured"
	// StateDraft means a config exists but the site is not publicly reachable.
	StateDraft PublicationState = "draft"
	// StateLive means the site resolves at /site/{slug}.
	StateLive PublicationState = "live"
)

// slugPattern is the only accepted slug shape. Lowercase so public paths are
// case-sensitive-stable.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// defaultSlugLen is how much of the external identity reference seeds the
// derived slug.
const defaultSlugLen = 8

// PublicationConfig owns the public identity of one account's site: the slug
// it resolves under, the theme and accent color it renders with, and the
// published gate. One-to-one with Account; absent until the first settings
// save.
type PublicationConfig struct {
	AccountID    uuid.UUID `json:"account_id"`
	Slug         string    `json:"slug"` // Globally unique across all accounts.
	ThemeID      string    `json:"theme_id"`
	PrimaryColor string    `json:"primary_color"` // Free-form style value, e.g. "#1e40af".
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// State reports the lifecycle state of a possibly-nil config.
func (c *PublicationConfig) State() PublicationState {
	switch {
	case c == nil:
		return StateUnconfigured
	case c.Published:
		return StateLive
	default:
		return StateDraft
	}
}

// ValidSlug reports whether s may be stored as a slug: one or more lowercase
// ASCII letters, digits, or hyphens.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// DeriveSlug returns the deterministic default slug for an external identity
// reference: its first eight characters, or the whole reference when shorter.
// Only caller-supplied slugs are format-checked; the derived default is used
// verbatim.
func DeriveSlug(externalID string) string {
	if len(externalID) > defaultSlugLen {
		return externalID[:defaultSlugLen]
	}

	return externalID
}
