package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
	"github.com/userhub/accounts-api/internal/core/validation"
)

// UserService orchestrates sign-up and lookups: validate the attributes,
// hash the secret, then hand off to the persistence contract.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// SignUp validates the attributes payload, replaces the cleartext password
// with its hash, and creates the user. The stored entity carries a freshly
// generated identity; an email collision surfaces as domain.ErrEmailTaken.
func (s *UserService) SignUp(ctx context.Context, attrs domain.UserAttributes) (*domain.User, error) {
	if err := validation.Validate(attrs); err != nil {
		return nil, err
	}

	// Validation proved presence, so the hashing contract holds.
	hashed, err := domain.HashPassword(*attrs.Password)
	if err != nil {
		return nil, err
	}
	attrs.Password = &hashed

	user, err := s.repo.Create(ctx, attrs)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignupConflictsTotal.Inc()
		}
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.Info().Str("user_id", user.ID.String()).Msg("user created")
	return user, nil
}

// FindByID parses the identity before any storage round-trip; a malformed
// token fails fast with domain.ErrInvalidUserID.
func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidUserID, id)
	}
	return s.repo.FindByPK(ctx, parsed)
}

// FindByEmail is the one sanctioned use of the dynamic predicate lookup.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.Find(ctx, map[string]any{"email": strings.TrimSpace(email)})
}
