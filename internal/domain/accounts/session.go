package accounts

import "time"

// Session is a freshly issued session token.
type Session struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// Claims are the verified contents of a session token.
type Claims struct {
	UserID    string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// HasRole reports whether the claims carry one of roles.
func (c *Claims) HasRole(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}
