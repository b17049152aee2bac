package domain

import "time"

// AccessToken describes a validated bearer token.
type AccessToken struct {
	TokenID   string
	UserID    int64
	ExpiresAt time.Time
}
