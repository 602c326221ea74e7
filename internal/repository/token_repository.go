package repository

import (
	"context"

	"github.com/QNhat1998/sales-api/internal/domain"
)

// AccessTokenRepository defines the access-token side of the ledger
type AccessTokenRepository interface {
	// Create persists an issued access token
	Create(ctx context.Context, token *domain.LedgerToken) error
	// GetByToken retrieves a ledger entry by token string, nil when
	// absent
	GetByToken(ctx context.Context, token string) (*domain.LedgerToken, error)
	// Delete removes the entry matching user and token; no error when
	// already absent
	Delete(ctx context.Context, userID, token string) error
	// DeleteByToken removes the entry for a token string
	DeleteByToken(ctx context.Context, token string) error
	// DeleteByUserID removes all entries for a user
	DeleteByUserID(ctx context.Context, userID string) error
}

// RefreshTokenRepository defines the refresh-token side of the ledger
type RefreshTokenRepository interface {
	// Create persists an issued refresh token
	Create(ctx context.Context, token *domain.LedgerToken) error
	// Claim atomically consumes the entry for a token string and
	// returns it, nil when absent. At most one concurrent caller can
	// claim a given token.
	Claim(ctx context.Context, token string) (*domain.LedgerToken, error)
	// DeleteByUserID removes all entries for a user
	DeleteByUserID(ctx context.Context, userID string) error
}
