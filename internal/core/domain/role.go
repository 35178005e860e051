package domain

// Permission is a single capability grantable through a role.
type Permission string

const (
	PermDeleteAnyPost          Permission = "delete_any_post"
	PermDeleteAnyThread        Permission = "delete_any_thread"
	PermCreateInfiniteChannels Permission = "create_infinite_channels"
	PermAssignRoles            Permission = "assign_roles"
	PermManageRoles            Permission = "manage_roles"
)

// AllPermissions is the closed set of known permissions, used to validate
// user-defined roles at the edge.
var AllPermissions = []Permission{
	PermDeleteAnyPost,
	PermDeleteAnyThread,
	PermCreateInfiniteChannels,
	PermAssignRoles,
	PermManageRoles,
}

// ValidPermission reports whether p is one of the known permissions.
func ValidPermission(p Permission) bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// Role groups a set of permissions under a display name. Style is a cosmetic
// tag rendered by clients and carries no access-control meaning.
type Role struct {
	ID          string       `json:"id" bson:"id"`
	Name        string       `json:"name" bson:"name"`
	Permissions []Permission `json:"permissions" bson:"permissions"`
	Style       string       `json:"style" bson:"style"`
}

// Grants reports whether the role includes the given permission.
func (r *Role) Grants(p Permission) bool {
	for _, granted := range r.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}
