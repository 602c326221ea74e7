package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/QNhat1998/sales-api/internal/domain"
)

// PostgresAccessTokenRepository implements AccessTokenRepository
// using PostgreSQL
type PostgresAccessTokenRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccessTokenRepository creates a new
// PostgresAccessTokenRepository
func NewPostgresAccessTokenRepository(pool *pgxpool.Pool) *PostgresAccessTokenRepository {
	return &PostgresAccessTokenRepository{pool: pool}
}

// Create persists an issued access token
func (r *PostgresAccessTokenRepository) Create(ctx context.Context, token *domain.LedgerToken) error {
	query := `
		INSERT INTO access_tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create access token: %w", err)
	}
	return nil
}

// GetByToken retrieves a ledger entry by token string
func (r *PostgresAccessTokenRepository) GetByToken(ctx context.Context, tokenString string) (*domain.LedgerToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, created_at
		FROM access_tokens
		WHERE token = $1
	`
	token := &domain.LedgerToken{}
	err := r.pool.QueryRow(ctx, query, tokenString).Scan(
		&token.ID,
		&token.UserID,
		&token.Token,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

// Delete removes the entry matching user and token; deleting an
// absent entry is not an error
func (r *PostgresAccessTokenRepository) Delete(ctx context.Context, userID, tokenString string) error {
	query := `DELETE FROM access_tokens WHERE user_id = $1 AND token = $2`
	_, err := r.pool.Exec(ctx, query, userID, tokenString)
	return err
}

// DeleteByToken removes the entry for a token string
func (r *PostgresAccessTokenRepository) DeleteByToken(ctx context.Context, tokenString string) error {
	query := `DELETE FROM access_tokens WHERE token = $1`
	_, err := r.pool.Exec(ctx, query, tokenString)
	return err
}

// DeleteByUserID removes all entries for a user
func (r *PostgresAccessTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM access_tokens WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

// PostgresRefreshTokenRepository implements RefreshTokenRepository
// using PostgreSQL
type PostgresRefreshTokenRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRefreshTokenRepository creates a new
// PostgresRefreshTokenRepository
func NewPostgresRefreshTokenRepository(pool *pgxpool.Pool) *PostgresRefreshTokenRepository {
	return &PostgresRefreshTokenRepository{pool: pool}
}

// Create persists an issued refresh token
func (r *PostgresRefreshTokenRepository) Create(ctx context.Context, token *domain.LedgerToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

// Claim consumes the entry for a token string in a single round trip.
// The DELETE ... RETURNING makes the claim atomic: when two refresh
// calls race on the same token, exactly one gets the row back.
func (r *PostgresRefreshTokenRepository) Claim(ctx context.Context, tokenString string) (*domain.LedgerToken, error) {
	query := `
		DELETE FROM refresh_tokens
		WHERE token = $1
		RETURNING id, user_id, token, expires_at, created_at
	`
	token := &domain.LedgerToken{}
	err := r.pool.QueryRow(ctx, query, tokenString).Scan(
		&token.ID,
		&token.UserID,
		&token.Token,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

// DeleteByUserID removes all entries for a user
func (r *PostgresRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM refresh_tokens WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}
