package ports

import (
	"context"

	"github.com/investasi/catalogue-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login returns a signed bearer token. Unknown usernames and wrong
	// passwords both fail with domain.ErrInvalidCredentials so the two
	// cases are indistinguishable to callers.
	Login(ctx context.Context, username, password string) (string, error)
}
