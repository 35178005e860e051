package domain

import (
	"testing"
	"time"
)

var seedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seeded() *Forum {
	return SeedForum(seedNow)
}

func TestHasPermission_OrphanedRole(t *testing.T) {
	f := seeded()
	ghost := &User{ID: "user-ghost", Username: "ghost", RoleID: "role-does-not-exist"}

	for _, p := range AllPermissions {
		if f.HasPermission(ghost, p) {
			t.Errorf("orphaned roleId must grant nothing, got %s", p)
		}
	}
}

func TestHasPermission_NilUser(t *testing.T) {
	f := seeded()
	if f.HasPermission(nil, PermDeleteAnyPost) {
		t.Error("nil user must have no permissions")
	}
}

func TestToggleVote_SameDirectionTwiceRemoves(t *testing.T) {
	f := seeded()

	// post-1 starts with {user-admin: 1, user-mod: 1}; mod upvotes again.
	post, err := f.ToggleVote("chan-1", "thread-1", "post-1", "user-mod", VoteUp)
	if err != nil {
		t.Fatalf("ToggleVote: %v", err)
	}
	if _, ok := post.Votes["user-mod"]; ok {
		t.Error("repeating the same direction must remove the vote entry")
	}
	if post.Score() != 1 {
		t.Errorf("score after un-vote: want 1, got %d", post.Score())
	}
}

func TestToggleVote_SwitchDirectionIsSingleAction(t *testing.T) {
	f := seeded()

	post, err := f.ToggleVote("chan-1", "thread-1", "post-1", "user-mod", VoteDown)
	if err != nil {
		t.Fatalf("ToggleVote: %v", err)
	}
	if got := post.Votes["user-mod"]; got != VoteDown {
		t.Errorf("expected switched vote -1, got %d", got)
	}
	// Exactly one entry for the user, never two.
	count := 0
	for voter := range post.Votes {
		if voter == "user-mod" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one vote entry for user-mod, got %d", count)
	}
}

func TestToggleVote_RoundTripRestoresOriginalState(t *testing.T) {
	f := seeded()

	before := len(f.FindChannel("chan-1").FindThread("thread-1").FindPost("post-2").Votes)
	if _, err := f.ToggleVote("chan-1", "thread-1", "post-2", "user-dummy1", VoteUp); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	post, err := f.ToggleVote("chan-1", "thread-1", "post-2", "user-dummy1", VoteUp)
	if err != nil {
		t.Fatalf("second vote: %v", err)
	}
	if len(post.Votes) != before {
		t.Errorf("vote map must return to pre-vote state, want %d entries, got %d", before, len(post.Votes))
	}
}

func TestToggleVote_MissingPost(t *testing.T) {
	f := seeded()
	if _, err := f.ToggleVote("chan-1", "thread-1", "post-nope", "user-mod", VoteUp); err != ErrPostNotFound {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
	if _, err := f.ToggleVote("chan-1", "thread-nope", "post-1", "user-mod", VoteUp); err != ErrThreadNotFound {
		t.Errorf("expected ErrThreadNotFound, got %v", err)
	}
	if _, err := f.ToggleVote("chan-nope", "thread-1", "post-1", "user-mod", VoteUp); err != ErrChannelNotFound {
		t.Errorf("expected ErrChannelNotFound, got %v", err)
	}
}

func TestCreateChannel_QuotaBoundary(t *testing.T) {
	f := seeded()
	dummy := f.FindUser("user-dummy1")

	for i := 0; i < UserChannelLimit; i++ {
		if _, err := f.CreateChannel("room", "desc", dummy, seedNow); err != nil {
			t.Fatalf("channel %d rejected unexpectedly: %v", i+1, err)
		}
	}
	if _, err := f.CreateChannel("one-too-many", "desc", dummy, seedNow); err != ErrChannelLimitReached {
		t.Errorf("fifth channel: expected ErrChannelLimitReached, got %v", err)
	}
}

func TestCreateChannel_InfinitePermissionBypassesQuota(t *testing.T) {
	f := seeded()
	admin := f.FindUser("user-admin")

	// admin owns 2 seeded channels; push well past the limit.
	for i := 0; i < UserChannelLimit+3; i++ {
		if _, err := f.CreateChannel("extra", "desc", admin, seedNow); err != nil {
			t.Fatalf("create_infinite_channels holder rejected at %d: %v", i, err)
		}
	}
}

func TestCreateChannel_NormalizesName(t *testing.T) {
	f := seeded()
	admin := f.FindUser("user-admin")

	ch, err := f.CreateChannel("  My Cool  Channel! ", "desc", admin, seedNow)
	if err != nil {
		t.Fatalf("CreateChannel: %v", err)
	}
	if ch.Name != "my-cool-channel" {
		t.Errorf("normalized name: want %q, got %q", "my-cool-channel", ch.Name)
	}
	if ch.IsPrivate {
		t.Error("new channels must be public")
	}
	if len(ch.Threads) != 0 {
		t.Error("new channels must start with no threads")
	}
}

func TestCreateThread_SelfUpvoteAndPrepend(t *testing.T) {
	f := seeded()
	admin := f.FindUser("user-admin")
	before := len(f.FindChannel("chan-1").Threads)

	thread, err := f.CreateThread("chan-1", "Hello", "World", admin, seedNow)
	if err != nil {
		t.Fatalf("CreateThread: %v", err)
	}

	if got := thread.OriginalPost.Votes; len(got) != 1 || got["user-admin"] != VoteUp {
		t.Errorf("OP votes: want {user-admin:1}, got %v", got)
	}

	channel := f.FindChannel("chan-1")
	if len(channel.Threads) != before+1 {
		t.Fatalf("thread list length: want %d, got %d", before+1, len(channel.Threads))
	}
	if channel.Threads[0].Title != "Hello" {
		t.Error("new thread must be prepended")
	}
	sorted := channel.ThreadsByActivity()
	if sorted[0].ID != thread.ID {
		t.Error("new thread must be first when sorted by lastActivity descending")
	}
	if !thread.LastActivity.Equal(thread.OriginalPost.Timestamp) {
		t.Error("lastActivity must start at the OP timestamp")
	}
}

func TestAddComment_SelfUpvoteAndActivityBump(t *testing.T) {
	f := seeded()
	mod := f.FindUser("user-mod")
	later := seedNow.Add(time.Minute)

	comment, err := f.AddComment("chan-1", "thread-1", "nice thread", mod, later)
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.Votes["user-mod"] != VoteUp {
		t.Error("comments must be seeded with the author's upvote")
	}

	thread := f.FindChannel("chan-1").FindThread("thread-1")
	if !thread.LastActivity.Equal(later) {
		t.Errorf("lastActivity: want %v, got %v", later, thread.LastActivity)
	}
	if len(thread.Comments) != 2 {
		t.Errorf("comment count: want 2, got %d", len(thread.Comments))
	}
}

func TestAddComment_MissingThread(t *testing.T) {
	f := seeded()
	mod := f.FindUser("user-mod")
	if _, err := f.AddComment("chan-1", "thread-nope", "hi", mod, seedNow); err != ErrThreadNotFound {
		t.Errorf("expected ErrThreadNotFound, got %v", err)
	}
}

func TestDeletePost_UnauthorizedThreadDeleteLeavesListUnchanged(t *testing.T) {
	f := seeded()
	dummy := f.FindUser("user-dummy1")

	channel := f.FindChannel("chan-1")
	beforeIDs := make([]string, len(channel.Threads))
	for i, th := range channel.Threads {
		beforeIDs[i] = th.ID
	}

	// post-1 is the OP authored by admin; dummy has no delete_any_thread.
	_, err := f.DeletePost("chan-1", "thread-1", "post-1", dummy)
	if err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	channel = f.FindChannel("chan-1")
	if len(channel.Threads) != len(beforeIDs) {
		t.Fatalf("thread list length changed: want %d, got %d", len(beforeIDs), len(channel.Threads))
	}
	for i, th := range channel.Threads {
		if th.ID != beforeIDs[i] {
			t.Errorf("thread ids changed at %d: want %s, got %s", i, beforeIDs[i], th.ID)
		}
	}
}

func TestDeletePost_OPByAuthorDeletesThread(t *testing.T) {
	f := seeded()
	admin := f.FindUser("user-admin")

	threadDeleted, err := f.DeletePost("chan-1", "thread-1", "post-1", admin)
	if err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if !threadDeleted {
		t.Error("deleting the OP must remove the whole thread")
	}
	if f.FindChannel("chan-1").FindThread("thread-1") != nil {
		t.Error("thread-1 still present after OP delete")
	}
}

func TestDeletePost_CommentByModerator(t *testing.T) {
	f := seeded()
	smod := f.FindUser("user-smod") // holds delete_any_post only

	threadDeleted, err := f.DeletePost("chan-1", "thread-1", "post-2", smod)
	if err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if threadDeleted {
		t.Error("comment delete must not remove the thread")
	}
	if len(f.FindChannel("chan-1").FindThread("thread-1").Comments) != 0 {
		t.Error("comment not removed")
	}
}

func TestDeletePost_CommentForbiddenForStranger(t *testing.T) {
	f := seeded()
	dummy := f.FindUser("user-dummy2")

	if _, err := f.DeletePost("chan-1", "thread-1", "post-2", dummy); err != ErrForbidden {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if len(f.FindChannel("chan-1").FindThread("thread-1").Comments) != 1 {
		t.Error("comment list must be unchanged after forbidden delete")
	}
}

func TestDeletePost_MissingPost(t *testing.T) {
	f := seeded()
	admin := f.FindUser("user-admin")
	if _, err := f.DeletePost("chan-1", "thread-1", "post-nope", admin); err != ErrPostNotFound {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestAddUser_DuplicateCaseInsensitive(t *testing.T) {
	f := seeded()
	if _, err := f.AddUser("ADMIN", "hash", seedNow); err != ErrUserExists {
		t.Errorf("expected ErrUserExists for case-insensitive duplicate, got %v", err)
	}

	user, err := f.AddUser("newcomer", "hash", seedNow)
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if user.RoleID != RoleIDUser {
		t.Errorf("new users must get the USER role, got %s", user.RoleID)
	}
}

func TestAssignRole_OrphanAllowedMissingUserRejected(t *testing.T) {
	f := seeded()

	user, err := f.AssignRole("user-dummy1", "role-unknown")
	if err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if user.RoleID != "role-unknown" {
		t.Errorf("roleId not updated, got %s", user.RoleID)
	}
	// The orphan degrades to no permissions.
	if f.HasPermission(user, PermDeleteAnyPost) {
		t.Error("orphaned role must grant nothing")
	}

	if _, err := f.AssignRole("user-nope", RoleIDMod); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddRole_DuplicateNamesPermitted(t *testing.T) {
	f := seeded()
	a := f.AddRole("VIP", "text-pink-400", []Permission{PermDeleteAnyPost})
	b := f.AddRole("VIP", "text-pink-500", nil)

	if a.ID == b.ID {
		t.Error("roles must get unique ids")
	}
	if b.Permissions == nil {
		t.Error("nil permissions must normalize to an empty set")
	}
}

func TestCommentsByTime_SortsAscending(t *testing.T) {
	f := seeded()
	mod := f.FindUser("user-mod")

	// Insert out of chronological order: insertion order is preserved in
	// storage, display order is by timestamp.
	if _, err := f.AddComment("chan-1", "thread-1", "later", mod, seedNow.Add(2*time.Hour)); err != nil {
		t.Fatal(err)
	}
	thread := f.FindChannel("chan-1").FindThread("thread-1")
	thread.Comments[len(thread.Comments)-1].Timestamp = seedNow.Add(-time.Hour)

	sorted := thread.CommentsByTime()
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Timestamp.Before(sorted[i-1].Timestamp) {
			t.Fatal("comments not sorted by timestamp ascending")
		}
	}
}

func TestNormalizeChannelName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"General", "general"},
		{"My Cool Channel", "my-cool-channel"},
		{"weird!!name", "weirdname"},
		{"  spaced   out  ", "spaced-out"},
		{"already-fine-42", "already-fine-42"},
	}
	for _, tc := range cases {
		if got := NormalizeChannelName(tc.in); got != tc.want {
			t.Errorf("NormalizeChannelName(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}
