package service

import (
	"context"

	"github.com/google/uuid"
)

// ViewCache is the call-and-forget invalidation hook for cached renderings.
// Every mutating usecase invalidates the views it may have staled; readers
// that cache (the public site page) store under the same paths.
type ViewCache interface {
	// Get returns the cached rendering for a view path, or ok=false on miss.
	Get(ctx context.Context, path string) (data []byte, ok bool, err error)

	// Set stores a rendering under a view path until it is invalidated.
	Set(ctx context.Context, path string, data []byte) error

	// Invalidate forces the next read of each path to bypass any cached
	// rendering. Unknown paths are ignored.
	Invalidate(ctx context.Context, paths ...string) error
}

// Logical view paths. These mirror the dashboard and public routes one-to-one
// so a handler and the usecase that stales it agree on the key.
func DashboardOverviewView(accountID uuid.UUID) string { return "view:dashboard:" + accountID.String() }
func ProfileView(accountID uuid.UUID) string           { return "view:profile:" + accountID.String() }
func CaseListView(accountID uuid.UUID) string          { return "view:cases:" + accountID.String() }
func SettingsView(accountID uuid.UUID) string          { return "view:settings:" + accountID.String() }
func PublicSiteView(slug string) string                { return "view:site:" + slug }
