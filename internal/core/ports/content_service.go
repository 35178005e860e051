package ports

import (
	"context"
	"time"

	"github.com/niko-dev25/threadirc/internal/core/domain"
)

// AuthorView mirrors the author snapshot stored on a post.
type AuthorView struct {
	ID       string
	Username string
}

// ChannelSummary is the lightweight channel view used in lists.
type ChannelSummary struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	IsPrivate   bool
	ThreadCount int
}

// ThreadSummary is the channel-page view of a thread: score aggregates OP
// and comment votes, no post bodies beyond the OP preview.
type ThreadSummary struct {
	ID           string
	Title        string
	Author       AuthorView
	CreatedAt    time.Time
	LastActivity time.Time
	Score        int
	CommentCount int
}

// ChannelDetail is a channel plus its threads sorted by last activity,
// newest first.
type ChannelDetail struct {
	ChannelSummary
	Threads []ThreadSummary
}

// PostView is a post as shown to a particular viewer. ViewerVote is the
// viewer's own vote (+1, -1, or 0 for none).
type PostView struct {
	ID         string
	Author     AuthorView
	Content    string
	Timestamp  time.Time
	Score      int
	ViewerVote int
}

// ThreadDetail is the full thread view with comments sorted by timestamp
// ascending.
type ThreadDetail struct {
	ID           string
	ChannelID    string
	Title        string
	LastActivity time.Time
	OriginalPost PostView
	Comments     []PostView
}

// CreateChannelInput carries a channel creation request. ActorID comes from
// the authenticated token, never the payload.
type CreateChannelInput struct {
	Name        string
	Description string
	ActorID     string
}

type CreateThreadInput struct {
	ChannelID string
	Title     string
	Content   string
	ActorID   string
}

type GetThreadInput struct {
	ChannelID string
	ThreadID  string
	ViewerID  string
}

type AddCommentInput struct {
	ChannelID string
	ThreadID  string
	Content   string
	ActorID   string
}

type ToggleVoteInput struct {
	ChannelID string
	ThreadID  string
	PostID    string
	Direction domain.VoteDirection
	ActorID   string
}

// VoteResult reports the post state after a vote toggle.
type VoteResult struct {
	PostID     string
	Score      int
	ViewerVote int
}

type DeletePostInput struct {
	ChannelID string
	ThreadID  string
	PostID    string
	ActorID   string
}

// DeleteResult reports what a delete removed: the whole thread (OP delete)
// or a single comment.
type DeleteResult struct {
	ThreadDeleted bool
}

// ContentService defines the use-case operations over channels, threads,
// posts, and votes.
type ContentService interface {
	ListChannels(ctx context.Context) ([]ChannelSummary, error)
	CreateChannel(ctx context.Context, in CreateChannelInput) (*ChannelSummary, error)
	GetChannel(ctx context.Context, channelID string) (*ChannelDetail, error)
	CreateThread(ctx context.Context, in CreateThreadInput) (*ThreadDetail, error)
	GetThread(ctx context.Context, in GetThreadInput) (*ThreadDetail, error)
	AddComment(ctx context.Context, in AddCommentInput) (*PostView, error)
	ToggleVote(ctx context.Context, in ToggleVoteInput) (*VoteResult, error)
	DeletePost(ctx context.Context, in DeletePostInput) (*DeleteResult, error)
}
