package domain

import "time"

// LedgerToken is a persisted access or refresh token. The ledger row
// carries its own expiry so a token can be revoked even while its
// signature is still cryptographically valid.
type LedgerToken struct {
	ID        string    `json:"token_id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the ledger entry is past its expiry
func (t *LedgerToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
