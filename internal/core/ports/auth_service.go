package ports

import (
	"context"
	"time"
)

// UserView is the safe outward representation of an account: the password
// hash never leaves the core, and the role is resolved to its display form.
type UserView struct {
	ID        string
	Username  string
	RoleID    string
	RoleName  string
	RoleStyle string
	CreatedAt time.Time
}

// RegisterInput carries a registration request. Field-level validation
// (length, charset, confirmation) happens at the transport edge; the service
// re-checks before touching the aggregate.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Username string
	Password string
}

// AuthResult is returned on successful register or login.
type AuthResult struct {
	Token string
	User  UserView
}

// AuthService implements registration, login, and the single-user session.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	// Session re-resolves the stored snapshot against the live user set; a
	// snapshot whose account no longer exists clears the session and reports
	// logged out via domain.ErrAggregateNotFound.
	Session(ctx context.Context) (*UserView, error)
	ClearSession(ctx context.Context) error
}
