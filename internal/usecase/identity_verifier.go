package usecase

import (
	"context"

	"book-courier/internal/pkg/errs"
	"book-courier/internal/pkg/jwt"
)

var ErrUnauthorized = errs.New("unauthorized")

// Identity is the verified caller. Claims carries the decoded token for handlers that need more than the email.
type Identity struct {
	Email   string
	Name    string
	Picture string
	Claims  *jwt.Claims
}

// IdentityVerifier provides token verification for middleware
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type identityVerifierImpl struct {
	jwtService *jwt.Service
}

func NewIdentityVerifier(jwtService *jwt.Service) IdentityVerifier {
	return &identityVerifierImpl{
		jwtService: jwtService,
	}
}

func (v *identityVerifierImpl) Verify(_ context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "verify identity token"), ErrUnauthorized)
	}

	return &Identity{
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
		Claims:  claims,
	}, nil
}
