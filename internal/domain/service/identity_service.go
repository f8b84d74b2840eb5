// Package service defines the ports for external collaborators the platform
// depends on but does not implement: the identity provider, the view cache,
// the theme renderers, and QR generation.
package service

import "context"

// Identity is what the external identity provider asserts about the
// authenticated subject of one request.
type Identity struct {
	ExternalID string // Provider-specific subject, e.g. the token's 'sub' claim.
	Email      string
	Name       string // Optional display name.
	AvatarURL  string // Optional profile picture reference.
}

// IdentityVerifier defines the interface for resolving a bearer credential to
// an identity. The platform never authenticates users itself; it only
// verifies what the provider signed.
type IdentityVerifier interface {
	// Verify checks the credential and returns the asserted identity.
	Verify(ctx context.Context, credential string) (*Identity, error)
}
