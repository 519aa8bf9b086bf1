package accounts

import (
	"context"
	"time"
)

// AccountService registers and authenticates users.
type AccountService interface {
	// Register creates a student or teacher account. Teacher signups are
	// linked to an instructor profile, reusing one registered with the same email.
	Register(ctx context.Context, input *RegisterInput) (*User, error)
	// Authenticate returns the user matching email and password.
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	// CreateAdmin creates an administrator account; it is not reachable over HTTP.
	CreateAdmin(ctx context.Context, email, password, firstName, lastName string) (*User, error)
}

// UserRepository defines persistence for users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	DeleteByID(ctx context.Context, userID string) error
}

// SessionManager issues, verifies and revokes session tokens.
type SessionManager interface {
	Issue(user *User) (*Session, error)
	// Parse verifies token and returns its claims. Revoked tokens yield ErrRevokedToken.
	Parse(ctx context.Context, token string) (*Claims, error)
	Revoke(ctx context.Context, claims *Claims) error
}

// RevocationStore remembers revoked token IDs until their expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
