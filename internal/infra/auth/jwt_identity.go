// Package auth verifies credentials minted by the external identity provider.
// The platform itself never signs anything; it only checks the provider's
// HMAC signature and lifts the asserted claims into a domain Identity.
package auth

import (
	"context"

	"lexsite/config"
	"lexsite/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type jwtIdentityVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewJWTIdentityVerifier is the constructor for the JWT-based identity verifier.
func NewJWTIdentityVerifier(cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Identity == nil || cfg.Identity.Secret == "" {
		return nil, errors.New("identity configuration is missing")
	}

	return &jwtIdentityVerifier{
		secret:   []byte(cfg.Identity.Secret),
		issuer:   cfg.Identity.Issuer,
		audience: cfg.Identity.Audience,
	}, nil
}

// Verify parses and validates the provider token and returns the asserted
// identity. The 'sub' claim is mandatory; email, name, and picture are lifted
// when present.
func (v *jwtIdentityVerifier) Verify(_ context.Context, credential string) (*service.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.Parse(credential, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse identity token")
	}
	if !token.Valid {
		return nil, errors.New("identity token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected identity token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("identity token is missing subject")
	}

	identity := &service.Identity{ExternalID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		identity.AvatarURL = picture
	}

	return identity, nil
}
