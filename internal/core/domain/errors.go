package domain

import "errors"

var (
	ErrUserExists          = errors.New("username already taken")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRegistration = errors.New("invalid registration details")
	ErrInvalidVote         = errors.New("invalid vote direction")

	ErrChannelNotFound      = errors.New("channel not found")
	ErrChannelLimitReached  = errors.New("channel limit reached")
	ErrThreadNotFound       = errors.New("thread not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrRoleNotFound         = errors.New("role not found")
	ErrForbidden            = errors.New("access forbidden")

	// ErrAggregateNotFound is returned by repositories when the stored forum
	// document is absent, unparseable, or fails the shape check. The store
	// reacts by seeding the default dataset.
	ErrAggregateNotFound = errors.New("forum document not found")
)
