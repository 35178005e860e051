package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
	"github.com/niko-dev25/threadirc/internal/core/store"
)

// ContentService implements channel, thread, comment, vote, and delete
// operations over the shared aggregate store.
type ContentService struct {
	store    *store.Store
	recorder Recorder
	log      zerolog.Logger
}

func NewContentService(st *store.Store, recorder Recorder, log zerolog.Logger) *ContentService {
	return &ContentService{store: st, recorder: recorder, log: log}
}

func (s *ContentService) ListChannels(ctx context.Context) ([]ports.ChannelSummary, error) {
	var out []ports.ChannelSummary
	err := s.store.View(func(f *domain.Forum) error {
		out = make([]ports.ChannelSummary, 0, len(f.Channels))
		for i := range f.Channels {
			out = append(out, channelSummary(&f.Channels[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ContentService) CreateChannel(ctx context.Context, in ports.CreateChannelInput) (*ports.ChannelSummary, error) {
	var out ports.ChannelSummary
	var actor domain.Author
	err := s.store.Update(ctx, func(f *domain.Forum) error {
		owner := f.FindUser(in.ActorID)
		if owner == nil {
			return domain.ErrInvalidCredentials
		}
		channel, err := f.CreateChannel(in.Name, in.Description, owner, time.Now().UTC())
		if err != nil {
			return err
		}
		out = channelSummary(channel)
		actor = owner.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("channel", out.Name).Str("owner", actor.Username).Msg("channel created")
	s.recorder.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.ActionChannelCreated,
		TargetID:  out.ID,
		ChannelID: out.ID,
		Detail:    out.Name,
		Timestamp: time.Now().UTC(),
	})
	return &out, nil
}

func (s *ContentService) GetChannel(ctx context.Context, channelID string) (*ports.ChannelDetail, error) {
	var out ports.ChannelDetail
	err := s.store.View(func(f *domain.Forum) error {
		channel := f.FindChannel(channelID)
		if channel == nil {
			return domain.ErrChannelNotFound
		}
		out.ChannelSummary = channelSummary(channel)
		sorted := channel.ThreadsByActivity()
		out.Threads = make([]ports.ThreadSummary, 0, len(sorted))
		for i := range sorted {
			out.Threads = append(out.Threads, threadSummary(&sorted[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ContentService) CreateThread(ctx context.Context, in ports.CreateThreadInput) (*ports.ThreadDetail, error) {
	var out ports.ThreadDetail
	var actor domain.Author
	err := s.store.Update(ctx, func(f *domain.Forum) error {
		author := f.FindUser(in.ActorID)
		if author == nil {
			return domain.ErrInvalidCredentials
		}
		thread, err := f.CreateThread(in.ChannelID, in.Title, in.Content, author, time.Now().UTC())
		if err != nil {
			return err
		}
		out = threadDetail(thread, author.ID)
		actor = author.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("thread", out.ID).Str("channel", in.ChannelID).Str("author", actor.Username).Msg("thread created")
	s.recorder.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.ActionThreadCreated,
		TargetID:  out.ID,
		ChannelID: in.ChannelID,
		ThreadID:  out.ID,
		Detail:    in.Title,
		Timestamp: time.Now().UTC(),
	})
	return &out, nil
}

func (s *ContentService) GetThread(ctx context.Context, in ports.GetThreadInput) (*ports.ThreadDetail, error) {
	var out ports.ThreadDetail
	err := s.store.View(func(f *domain.Forum) error {
		channel := f.FindChannel(in.ChannelID)
		if channel == nil {
			return domain.ErrChannelNotFound
		}
		thread := channel.FindThread(in.ThreadID)
		if thread == nil {
			return domain.ErrThreadNotFound
		}
		out = threadDetail(thread, in.ViewerID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ContentService) AddComment(ctx context.Context, in ports.AddCommentInput) (*ports.PostView, error) {
	var out ports.PostView
	var actor domain.Author
	err := s.store.Update(ctx, func(f *domain.Forum) error {
		author := f.FindUser(in.ActorID)
		if author == nil {
			return domain.ErrInvalidCredentials
		}
		comment, err := f.AddComment(in.ChannelID, in.ThreadID, in.Content, author, time.Now().UTC())
		if err != nil {
			return err
		}
		out = postView(comment, author.ID)
		actor = author.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.ActionCommentCreated,
		TargetID:  out.ID,
		ChannelID: in.ChannelID,
		ThreadID:  in.ThreadID,
		Timestamp: time.Now().UTC(),
	})
	return &out, nil
}

func (s *ContentService) ToggleVote(ctx context.Context, in ports.ToggleVoteInput) (*ports.VoteResult, error) {
	if in.Direction != domain.VoteUp && in.Direction != domain.VoteDown {
		return nil, domain.ErrInvalidVote
	}

	var out ports.VoteResult
	var actor domain.Author
	err := s.store.Update(ctx, func(f *domain.Forum) error {
		voter := f.FindUser(in.ActorID)
		if voter == nil {
			return domain.ErrInvalidCredentials
		}
		post, err := f.ToggleVote(in.ChannelID, in.ThreadID, in.PostID, voter.ID, in.Direction)
		if err != nil {
			return err
		}
		out = ports.VoteResult{
			PostID:     post.ID,
			Score:      post.Score(),
			ViewerVote: int(post.VoteOf(voter.ID)),
		}
		actor = voter.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.ActionVoteCast,
		TargetID:  in.PostID,
		ChannelID: in.ChannelID,
		ThreadID:  in.ThreadID,
		Timestamp: time.Now().UTC(),
	})
	return &out, nil
}

func (s *ContentService) DeletePost(ctx context.Context, in ports.DeletePostInput) (*ports.DeleteResult, error) {
	var out ports.DeleteResult
	var actor domain.Author
	err := s.store.Update(ctx, func(f *domain.Forum) error {
		user := f.FindUser(in.ActorID)
		if user == nil {
			return domain.ErrInvalidCredentials
		}
		threadDeleted, err := f.DeletePost(in.ChannelID, in.ThreadID, in.PostID, user)
		if err != nil {
			return err
		}
		out.ThreadDeleted = threadDeleted
		actor = user.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := domain.ActionPostDeleted
	if out.ThreadDeleted {
		action = domain.ActionThreadDeleted
	}
	s.log.Info().Str("post", in.PostID).Str("actor", actor.Username).Bool("thread_deleted", out.ThreadDeleted).Msg("post deleted")
	s.recorder.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    action,
		TargetID:  in.PostID,
		ChannelID: in.ChannelID,
		ThreadID:  in.ThreadID,
		Timestamp: time.Now().UTC(),
	})
	return &out, nil
}

// --- view mapping ---

func channelSummary(c *domain.Channel) ports.ChannelSummary {
	return ports.ChannelSummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		OwnerID:     c.OwnerID,
		IsPrivate:   c.IsPrivate,
		ThreadCount: len(c.Threads),
	}
}

func threadSummary(t *domain.Thread) ports.ThreadSummary {
	return ports.ThreadSummary{
		ID:           t.ID,
		Title:        t.Title,
		Author:       ports.AuthorView{ID: t.OriginalPost.Author.ID, Username: t.OriginalPost.Author.Username},
		CreatedAt:    t.OriginalPost.Timestamp,
		LastActivity: t.LastActivity,
		Score:        t.Score(),
		CommentCount: len(t.Comments),
	}
}

func postView(p *domain.Post, viewerID string) ports.PostView {
	return ports.PostView{
		ID:         p.ID,
		Author:     ports.AuthorView{ID: p.Author.ID, Username: p.Author.Username},
		Content:    p.Content,
		Timestamp:  p.Timestamp,
		Score:      p.Score(),
		ViewerVote: int(p.VoteOf(viewerID)),
	}
}

func threadDetail(t *domain.Thread, viewerID string) ports.ThreadDetail {
	sorted := t.CommentsByTime()
	comments := make([]ports.PostView, 0, len(sorted))
	for i := range sorted {
		comments = append(comments, postView(&sorted[i], viewerID))
	}
	return ports.ThreadDetail{
		ID:           t.ID,
		ChannelID:    t.ChannelID,
		Title:        t.Title,
		LastActivity: t.LastActivity,
		OriginalPost: postView(&t.OriginalPost, viewerID),
		Comments:     comments,
	}
}
