package ports

import (
	"context"

	"github.com/userhub/accounts-api/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, creds domain.AuthCredentials) (string, *domain.User, error)
	RequestPasscode(ctx context.Context, email string) error
	VerifyPasscode(ctx context.Context, email, code string) (bool, error)
	ResetPassword(ctx context.Context, email, code string, payload domain.ResetPassword) error
}

// OTPStore issues and consumes short-lived one-time passcodes.
type OTPStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Consume(ctx context.Context, email, code string) (bool, error)
}
