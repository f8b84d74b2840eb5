package mocks

import (
	"context"

	"lexsite/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// IdentityVerifier is a testify mock of service.IdentityVerifier.
type IdentityVerifier struct {
	mock.Mock
}

func (m *IdentityVerifier) Verify(ctx context.Context, credential string) (*service.Identity, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Identity), args.Error(1)
}
