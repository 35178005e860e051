package ports

import (
	"context"

	"github.com/niko-dev25/threadirc/internal/core/domain"
)

// RoleView is the outward representation of a role.
type RoleView struct {
	ID          string
	Name        string
	Style       string
	Permissions []domain.Permission
}

// MemberView joins a user with its resolved role for the member list.
type MemberView struct {
	UserView
	Permissions []domain.Permission
}

// CreateRoleInput carries a user-defined role. The actor must hold
// manage_roles.
type CreateRoleInput struct {
	Name        string
	Style       string
	Permissions []domain.Permission
	ActorID     string
}

// AssignRoleInput reassigns a member's role. The actor must hold
// assign_roles.
type AssignRoleInput struct {
	UserID  string
	RoleID  string
	ActorID string
}

// RoleService defines role management and the member directory.
type RoleService interface {
	ListRoles(ctx context.Context) ([]RoleView, error)
	CreateRole(ctx context.Context, in CreateRoleInput) (*RoleView, error)
	AssignRole(ctx context.Context, in AssignRoleInput) (*UserView, error)
	ListMembers(ctx context.Context) ([]MemberView, error)
}
