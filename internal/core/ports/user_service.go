package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

type UserService interface {
	SignUp(ctx context.Context, attrs domain.UserAttributes) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
