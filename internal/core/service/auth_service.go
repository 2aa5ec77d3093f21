package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
	"github.com/userhub/accounts-api/internal/core/validation"
)

// AuthService implements login and the passcode-gated password-reset flow.
type AuthService struct {
	users     ports.UserService
	otp       ports.OTPStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserService, otp ports.OTPStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, otp: otp, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login verifies the credentials and returns a signed token plus the user.
func (s *AuthService) Login(ctx context.Context, creds domain.AuthCredentials) (string, *domain.User, error) {
	if err := validation.Validate(creds); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, err
	}

	user, err := s.users.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return "", nil, err
	}

	if !user.VerifyPassword(creds.Password) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// RequestPasscode issues a one-time passcode for an existing account. The
// code is logged for now; delivery (mail/SMS) sits outside this service.
func (s *AuthService) RequestPasscode(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := s.otp.Issue(ctx, user.Email)
	if err != nil {
		return err
	}

	metrics.PasscodesIssuedTotal.Inc()
	s.log.Info().Str("user_id", user.ID.String()).Str("code", code).Msg("passcode issued")
	return nil
}

// VerifyPasscode consumes a passcode; a passcode verifies at most once.
func (s *AuthService) VerifyPasscode(ctx context.Context, email, code string) (bool, error) {
	return s.otp.Consume(ctx, email, code)
}

// ResetPassword validates the replacement password and the passcode guarding
// it. Stored users currently have no mutation path, so after the guards pass
// the operation reports itself unimplemented rather than writing anything.
func (s *AuthService) ResetPassword(ctx context.Context, email, code string, payload domain.ResetPassword) error {
	if err := validation.Validate(payload); err != nil {
		return err
	}

	ok, err := s.otp.Consume(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidPasscode
	}

	return domain.ErrNotImplemented
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":           user.ID.String(),
		"email":         user.Email,
		"accountStatus": string(user.AccountStatus),
		"exp":           time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
