package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/eventservice/user-directory/internal/core/domain"
	"github.com/eventservice/user-directory/internal/core/ports"
)

// UserService orchestrates validation, uniqueness checks, role assignment and
// not-found detection for the account CRUD workflows.
//
// The find-before-write uniqueness checks are a fast-path rejection only; the
// repository's unique indexes are the source of truth, so a concurrent create
// that slips past the checks still fails at save time with the same conflict
// error.
type UserService struct {
	repo        ports.UserRepository
	validator   *userValidator
	defaultRole string
	metrics     ports.WorkflowMetrics
	logger      zerolog.Logger
}

// NewUserService builds a UserService. defaultRole is the role stamped onto
// every created user regardless of client input. A nil metrics recorder is
// replaced with a no-op.
func NewUserService(repo ports.UserRepository, defaultRole string, metrics ports.WorkflowMetrics, logger zerolog.Logger) *UserService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UserService{
		repo:        repo,
		validator:   newUserValidator(),
		defaultRole: defaultRole,
		metrics:     metrics,
		logger:      logger,
	}
}

// Find looks a user up by username.
func (s *UserService) Find(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// Create runs the full creation workflow: validate, reject duplicate username
// then duplicate email (username wins when both collide), stamp the default
// role and persist. Validation failures return before any repository call.
func (s *UserService) Create(ctx context.Context, candidate *domain.User) (*domain.User, error) {
	if err := s.validator.check(candidate, true); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, candidate.Username); err == nil {
		s.metrics.UserConflict("username")
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, candidate.Email); err == nil {
		s.metrics.UserConflict("email")
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	candidate.Role = s.defaultRole

	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		if field := conflictField(err); field != "" {
			// Lost the check-then-write race; the index is authoritative.
			s.metrics.UserConflict(field)
			return nil, err
		}
		s.logger.Error().Err(err).Str("username", candidate.Username).Msg("failed to save user")
		return nil, err
	}

	s.metrics.UserCreated()
	s.logger.Info().Str("username", saved.Username).Str("user_id", saved.ID).Msg("user created")
	return saved, nil
}

// Edit validates the candidate, requires targetUsername to exist, re-applies
// the stored role (role is never client-settable via edit) and persists.
// An empty candidate password inherits the stored one. Uniqueness against
// other users is not re-checked here; the indexes backstop a rename onto an
// existing username or email.
func (s *UserService) Edit(ctx context.Context, candidate *domain.User, targetUsername string) (*domain.User, error) {
	if err := s.validator.check(candidate, false); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}

	candidate.Role = existing.Role
	if candidate.Password == "" {
		candidate.Password = existing.Password
	}
	if candidate.ID == "" {
		candidate.ID = existing.ID
	}

	saved, err := s.repo.Save(ctx, candidate)
	if err != nil {
		s.logger.Error().Err(err).Str("username", targetUsername).Msg("failed to update user")
		return nil, err
	}

	s.metrics.UserUpdated()
	s.logger.Info().Str("username", saved.Username).Str("user_id", saved.ID).Msg("user updated")
	return saved, nil
}

// Delete removes the user with the given username. No delete call is issued
// when the lookup fails.
func (s *UserService) Delete(ctx context.Context, username string) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, user.ID); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to delete user")
		return err
	}

	s.metrics.UserDeleted()
	s.logger.Info().Str("username", username).Str("user_id", user.ID).Msg("user deleted")
	return nil
}

// conflictField classifies a save-time conflict error by offending field.
func conflictField(err error) string {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return "username"
	case errors.Is(err, domain.ErrEmailTaken):
		return "email"
	}
	return ""
}

type noopMetrics struct{}

func (noopMetrics) UserCreated()          {}
func (noopMetrics) UserUpdated()          {}
func (noopMetrics) UserDeleted()          {}
func (noopMetrics) UserConflict(_ string) {}
