package ports

import (
	"context"

	"github.com/eventservice/user-directory/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
//
// Save inserts when the user carries no ID and replace-upserts by ID
// otherwise; it returns the stored record with its assigned ID. Uniqueness of
// username and email is ultimately enforced here (unique indexes): Save
// returns domain.ErrUsernameTaken or domain.ErrEmailTaken when a write loses
// the race that the service-level checks did not catch.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
