package domain

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VoteDirection is an up or down vote. A post's vote map holds at most one
// entry per user; no entry means no vote.
type VoteDirection int

const (
	VoteUp   VoteDirection = 1
	VoteDown VoteDirection = -1
)

// UserChannelLimit caps channels per owner for users without the
// create_infinite_channels permission.
const UserChannelLimit = 4

// Post is an original post or a comment.
type Post struct {
	ID        string                   `json:"id" bson:"id"`
	Author    Author                   `json:"author" bson:"author"`
	Content   string                   `json:"content" bson:"content"`
	Timestamp time.Time                `json:"timestamp" bson:"timestamp"`
	Votes     map[string]VoteDirection `json:"votes" bson:"votes"`
}

// Score is the net vote count: +1 per upvoter, -1 per downvoter.
func (p *Post) Score() int {
	score := 0
	for _, v := range p.Votes {
		score += int(v)
	}
	return score
}

// VoteOf returns the user's current vote, or 0 when the user has not voted.
func (p *Post) VoteOf(userID string) VoteDirection {
	return p.Votes[userID]
}

// Thread is an original post plus its comments. Comments are kept in
// insertion order; CommentsByTime produces the display order.
type Thread struct {
	ID           string    `json:"id" bson:"id"`
	ChannelID    string    `json:"channel_id" bson:"channel_id"`
	Title        string    `json:"title" bson:"title"`
	OriginalPost Post      `json:"original_post" bson:"original_post"`
	Comments     []Post    `json:"comments" bson:"comments"`
	LastActivity time.Time `json:"last_activity" bson:"last_activity"`
}

// FindPost returns the original post or a comment by id, or nil.
func (t *Thread) FindPost(postID string) *Post {
	if t.OriginalPost.ID == postID {
		return &t.OriginalPost
	}
	for i := range t.Comments {
		if t.Comments[i].ID == postID {
			return &t.Comments[i]
		}
	}
	return nil
}

// CommentsByTime returns the comments sorted by timestamp ascending.
func (t *Thread) CommentsByTime() []Post {
	out := make([]Post, len(t.Comments))
	copy(out, t.Comments)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Score sums the OP's votes with every comment's votes.
func (t *Thread) Score() int {
	score := t.OriginalPost.Score()
	for i := range t.Comments {
		score += t.Comments[i].Score()
	}
	return score
}

// Channel holds an ordered sequence of threads, newest first.
type Channel struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	OwnerID     string   `json:"owner_id" bson:"owner_id"`
	IsPrivate   bool     `json:"is_private" bson:"is_private"`
	Threads     []Thread `json:"threads" bson:"threads"`
}

// FindThread returns the thread by id, or nil.
func (c *Channel) FindThread(threadID string) *Thread {
	for i := range c.Threads {
		if c.Threads[i].ID == threadID {
			return &c.Threads[i]
		}
	}
	return nil
}

// ThreadsByActivity returns the threads sorted by last activity, newest first.
func (c *Channel) ThreadsByActivity() []Thread {
	out := make([]Thread, len(c.Threads))
	copy(out, c.Threads)
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out
}

// Forum is the aggregate root: the entire persisted state. All mutation
// methods operate in place; the caller (the store) serializes access and
// persists the aggregate wholesale after every change.
type Forum struct {
	Channels []Channel `json:"channels" bson:"channels"`
	Users    []User    `json:"users" bson:"users"`
	Roles    []Role    `json:"roles" bson:"roles"`
}

// ShapeValid reports whether a loaded document carries all three top-level
// collections. It fails closed: a partially shaped document is rejected and
// reseeded rather than silently accepted.
func (f *Forum) ShapeValid() bool {
	return f != nil && f.Channels != nil && f.Users != nil && f.Roles != nil
}

// --- lookups ---

func (f *Forum) FindUser(id string) *User {
	for i := range f.Users {
		if f.Users[i].ID == id {
			return &f.Users[i]
		}
	}
	return nil
}

// FindUserByUsername matches case-insensitively.
func (f *Forum) FindUserByUsername(username string) *User {
	for i := range f.Users {
		if strings.EqualFold(f.Users[i].Username, username) {
			return &f.Users[i]
		}
	}
	return nil
}

func (f *Forum) FindRole(id string) *Role {
	for i := range f.Roles {
		if f.Roles[i].ID == id {
			return &f.Roles[i]
		}
	}
	return nil
}

func (f *Forum) FindChannel(id string) *Channel {
	for i := range f.Channels {
		if f.Channels[i].ID == id {
			return &f.Channels[i]
		}
	}
	return nil
}

// HasPermission resolves the user's role and checks the permission. A roleId
// that does not resolve grants nothing. Total: no errors, no side effects.
func (f *Forum) HasPermission(u *User, p Permission) bool {
	if u == nil {
		return false
	}
	role := f.FindRole(u.RoleID)
	if role == nil {
		return false
	}
	return role.Grants(p)
}

// --- users and roles ---

// AddUser appends a new account with the fixed USER role. The caller is
// responsible for field-level validation and password hashing; only the
// case-insensitive uniqueness check lives here.
func (f *Forum) AddUser(username, passwordHash string, now time.Time) (*User, error) {
	if f.FindUserByUsername(username) != nil {
		return nil, ErrUserExists
	}
	f.Users = append(f.Users, User{
		ID:           newID("user"),
		Username:     username,
		PasswordHash: passwordHash,
		RoleID:       RoleIDUser,
		CreatedAt:    now,
	})
	return &f.Users[len(f.Users)-1], nil
}

// AssignRole sets the target user's role id. The role id is deliberately not
// checked for existence: an orphaned reference degrades to "no permissions".
func (f *Forum) AssignRole(userID, roleID string) (*User, error) {
	user := f.FindUser(userID)
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.RoleID = roleID
	return user, nil
}

// AddRole appends a user-defined role. Duplicate names are permitted.
func (f *Forum) AddRole(name, style string, permissions []Permission) *Role {
	if permissions == nil {
		permissions = []Permission{}
	}
	f.Roles = append(f.Roles, Role{
		ID:          newID("role"),
		Name:        name,
		Style:       style,
		Permissions: permissions,
	})
	return &f.Roles[len(f.Roles)-1]
}

// --- channels, threads, posts ---

var channelNameStrip = regexp.MustCompile(`[^a-z0-9-]`)

// NormalizeChannelName lowercases, turns whitespace runs into hyphens, and
// strips everything outside [a-z0-9-].
func NormalizeChannelName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.Join(strings.Fields(n), "-")
	return channelNameStrip.ReplaceAllString(n, "")
}

// CreateChannel appends a new public channel. Owners without
// create_infinite_channels are limited to UserChannelLimit channels.
func (f *Forum) CreateChannel(name, description string, owner *User, now time.Time) (*Channel, error) {
	if !f.HasPermission(owner, PermCreateInfiniteChannels) {
		owned := 0
		for i := range f.Channels {
			if f.Channels[i].OwnerID == owner.ID {
				owned++
			}
		}
		if owned >= UserChannelLimit {
			return nil, ErrChannelLimitReached
		}
	}
	f.Channels = append(f.Channels, Channel{
		ID:          newID("chan"),
		Name:        NormalizeChannelName(name),
		Description: description,
		OwnerID:     owner.ID,
		IsPrivate:   false,
		Threads:     []Thread{},
	})
	return &f.Channels[len(f.Channels)-1], nil
}

// newPost builds a post seeded with the author's own upvote.
func newPost(author Author, content string, now time.Time) Post {
	return Post{
		ID:        newID("post"),
		Author:    author,
		Content:   content,
		Timestamp: now,
		Votes:     map[string]VoteDirection{author.ID: VoteUp},
	}
}

// CreateThread prepends a new thread (newest first) whose original post is
// self-upvoted by the author. LastActivity starts at the OP timestamp.
func (f *Forum) CreateThread(channelID, title, content string, author *User, now time.Time) (*Thread, error) {
	channel := f.FindChannel(channelID)
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	thread := Thread{
		ID:           newID("thread"),
		ChannelID:    channelID,
		Title:        title,
		OriginalPost: newPost(author.Snapshot(), content, now),
		Comments:     []Post{},
		LastActivity: now,
	}
	channel.Threads = append([]Thread{thread}, channel.Threads...)
	return &channel.Threads[0], nil
}

// AddComment appends a self-upvoted comment and bumps the thread's
// last activity to the comment timestamp.
func (f *Forum) AddComment(channelID, threadID, content string, author *User, now time.Time) (*Post, error) {
	channel := f.FindChannel(channelID)
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	thread := channel.FindThread(threadID)
	if thread == nil {
		return nil, ErrThreadNotFound
	}
	thread.Comments = append(thread.Comments, newPost(author.Snapshot(), content, now))
	thread.LastActivity = now
	return &thread.Comments[len(thread.Comments)-1], nil
}

// ToggleVote applies toggle semantics: voting the same direction again
// removes the vote, any other state sets it. Switching direction is a single
// action. Returns the post after the change.
func (f *Forum) ToggleVote(channelID, threadID, postID, userID string, direction VoteDirection) (*Post, error) {
	channel := f.FindChannel(channelID)
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	thread := channel.FindThread(threadID)
	if thread == nil {
		return nil, ErrThreadNotFound
	}
	post := thread.FindPost(postID)
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.Votes == nil {
		post.Votes = map[string]VoteDirection{}
	}
	if post.Votes[userID] == direction {
		delete(post.Votes, userID)
	} else {
		post.Votes[userID] = direction
	}
	return post, nil
}

// DeletePost removes a post from a thread. Deleting the original post deletes
// the whole thread and requires authorship or delete_any_thread; deleting a
// comment requires authorship or delete_any_post. The returned bool reports
// whether the entire thread was removed.
func (f *Forum) DeletePost(channelID, threadID, postID string, actor *User) (bool, error) {
	channel := f.FindChannel(channelID)
	if channel == nil {
		return false, ErrChannelNotFound
	}
	threadIdx := -1
	for i := range channel.Threads {
		if channel.Threads[i].ID == threadID {
			threadIdx = i
			break
		}
	}
	if threadIdx < 0 {
		return false, ErrThreadNotFound
	}
	thread := &channel.Threads[threadIdx]

	if thread.OriginalPost.ID == postID {
		if actor.ID != thread.OriginalPost.Author.ID && !f.HasPermission(actor, PermDeleteAnyThread) {
			return false, ErrForbidden
		}
		channel.Threads = append(channel.Threads[:threadIdx], channel.Threads[threadIdx+1:]...)
		return true, nil
	}

	commentIdx := -1
	for i := range thread.Comments {
		if thread.Comments[i].ID == postID {
			commentIdx = i
			break
		}
	}
	if commentIdx < 0 {
		return false, ErrPostNotFound
	}
	comment := &thread.Comments[commentIdx]
	if actor.ID != comment.Author.ID && !f.HasPermission(actor, PermDeleteAnyPost) {
		return false, ErrForbidden
	}
	thread.Comments = append(thread.Comments[:commentIdx], thread.Comments[commentIdx+1:]...)
	return false, nil
}

// newID returns a prefixed unique id, e.g. "post-5f0c…".
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
