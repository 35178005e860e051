package domain

import "time"

// AuditAction names a recorded moderation-relevant action.
type AuditAction string

const (
	ActionUserRegistered AuditAction = "user_registered"
	ActionChannelCreated AuditAction = "channel_created"
	ActionThreadCreated  AuditAction = "thread_created"
	ActionCommentCreated AuditAction = "comment_created"
	ActionVoteCast       AuditAction = "vote_cast"
	ActionPostDeleted    AuditAction = "post_deleted"
	ActionThreadDeleted  AuditAction = "thread_deleted"
	ActionRoleCreated    AuditAction = "role_created"
	ActionRoleAssigned   AuditAction = "role_assigned"
)

// AuditEvent is one entry in the moderation audit trail. Events are recorded
// asynchronously and kept outside the forum aggregate; losing one is logged
// but never fails the originating request.
type AuditEvent struct {
	Actor     Author      `json:"actor" bson:"actor"`
	Action    AuditAction `json:"action" bson:"action"`
	TargetID  string      `json:"target_id,omitempty" bson:"target_id,omitempty"`
	ChannelID string      `json:"channel_id,omitempty" bson:"channel_id,omitempty"`
	ThreadID  string      `json:"thread_id,omitempty" bson:"thread_id,omitempty"`
	Detail    string      `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
}
