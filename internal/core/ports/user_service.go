package ports

import (
	"context"

	"github.com/eventservice/user-directory/internal/core/domain"
)

// UserService defines the account management use-cases.
//
// Every operation resolves to either a result or exactly one typed failure:
// *domain.ValidationError, domain.ErrUsernameTaken, domain.ErrEmailTaken,
// domain.ErrUserNotFound, or an unclassified error.
type UserService interface {
	// Find looks a user up by username.
	Find(ctx context.Context, username string) (*domain.User, error)
	// Create validates the candidate, rejects duplicate username/email
	// (username reported first when both collide), assigns the default role
	// and persists.
	Create(ctx context.Context, candidate *domain.User) (*domain.User, error)
	// Edit validates the candidate, requires targetUsername to exist,
	// re-applies the stored role and persists. An empty candidate password
	// inherits the stored one.
	Edit(ctx context.Context, candidate *domain.User, targetUsername string) (*domain.User, error)
	// Delete removes the user with the given username.
	Delete(ctx context.Context, username string) error
}
