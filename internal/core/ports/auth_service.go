package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// RegisterInput carries an already shape-validated registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenIssuer signs bearer tokens for authenticated accounts.
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

// TokenVerifier resolves a bearer token to the identity it was issued for.
// Any failure is reported as domain.ErrUnauthenticated.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
