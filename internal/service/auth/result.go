package auth

import "time"

// LoginResult holds the issued admin token.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}
