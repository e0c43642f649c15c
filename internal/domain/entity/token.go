package entity

import "time"

// AuthToken is a signed session token issued to a user. The token value
// itself is the partition key.
type AuthToken struct {
	Token     string    `json:"token"`
	UserEmail string    `json:"user_email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t *AuthToken) EntityKind() Kind     { return KindToken }
func (t *AuthToken) PartitionKey() string { return t.Token }
func (t *AuthToken) SortKey() string      { return "" }
