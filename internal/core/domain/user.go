package domain

import "time"

// User is a registered account. RoleID references a Role in the same
// aggregate; an id that no longer resolves degrades to "no permissions"
// rather than failing (see Forum.HasPermission).
//
// PasswordHash is serialized because the whole aggregate is persisted as one
// JSON document. API responses use transport types and never expose it.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"password_hash" bson:"password_hash"`
	RoleID       string    `json:"role_id" bson:"role_id"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Author is the point-in-time snapshot of a post's author. It is stored on
// the post itself so later renames or account removal never rewrite
// historical authorship.
type Author struct {
	ID       string `json:"id" bson:"id"`
	Username string `json:"username" bson:"username"`
}

// Snapshot returns the author view of the user.
func (u *User) Snapshot() Author {
	return Author{ID: u.ID, Username: u.Username}
}
