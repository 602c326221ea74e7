package repository

import (
	"context"

	"github.com/QNhat1998/sales-api/internal/domain"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByUsername retrieves a user by username, nil when absent
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetByEmail retrieves a user by email, nil when absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByUsernameOrEmail checks whether either identity is taken
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	// List returns a page of users plus the total count
	List(ctx context.Context, limit, offset int) ([]*domain.User, int64, error)
	// Update persists user changes
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user and all of their ledger tokens in one
	// transaction
	Delete(ctx context.Context, id string) error
}
