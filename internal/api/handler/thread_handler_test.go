package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
)

type stubContentService struct {
	listChannelsFn  func(ctx context.Context) ([]ports.ChannelSummary, error)
	createChannelFn func(ctx context.Context, in ports.CreateChannelInput) (*ports.ChannelSummary, error)
	getChannelFn    func(ctx context.Context, channelID string) (*ports.ChannelDetail, error)
	createThreadFn  func(ctx context.Context, in ports.CreateThreadInput) (*ports.ThreadDetail, error)
	getThreadFn     func(ctx context.Context, in ports.GetThreadInput) (*ports.ThreadDetail, error)
	addCommentFn    func(ctx context.Context, in ports.AddCommentInput) (*ports.PostView, error)
	toggleVoteFn    func(ctx context.Context, in ports.ToggleVoteInput) (*ports.VoteResult, error)
	deletePostFn    func(ctx context.Context, in ports.DeletePostInput) (*ports.DeleteResult, error)
}

func (s *stubContentService) ListChannels(ctx context.Context) ([]ports.ChannelSummary, error) {
	return s.listChannelsFn(ctx)
}

func (s *stubContentService) CreateChannel(ctx context.Context, in ports.CreateChannelInput) (*ports.ChannelSummary, error) {
	return s.createChannelFn(ctx, in)
}

func (s *stubContentService) GetChannel(ctx context.Context, channelID string) (*ports.ChannelDetail, error) {
	return s.getChannelFn(ctx, channelID)
}

func (s *stubContentService) CreateThread(ctx context.Context, in ports.CreateThreadInput) (*ports.ThreadDetail, error) {
	return s.createThreadFn(ctx, in)
}

func (s *stubContentService) GetThread(ctx context.Context, in ports.GetThreadInput) (*ports.ThreadDetail, error) {
	return s.getThreadFn(ctx, in)
}

func (s *stubContentService) AddComment(ctx context.Context, in ports.AddCommentInput) (*ports.PostView, error) {
	return s.addCommentFn(ctx, in)
}

func (s *stubContentService) ToggleVote(ctx context.Context, in ports.ToggleVoteInput) (*ports.VoteResult, error) {
	return s.toggleVoteFn(ctx, in)
}

func (s *stubContentService) DeletePost(ctx context.Context, in ports.DeletePostInput) (*ports.DeleteResult, error) {
	return s.deletePostFn(ctx, in)
}

func threadContext(t *testing.T, method, body string, authenticated bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, "/", body)
	c.SetParamNames("channelID", "threadID", "postID")
	c.SetParamValues("chan-1", "thread-1", "post-1")
	if authenticated {
		c.Set("user_id", "user-admin")
	}
	return c, rec
}

func TestThreadHandler_Create_Success(t *testing.T) {
	stub := &stubContentService{
		createThreadFn: func(ctx context.Context, in ports.CreateThreadInput) (*ports.ThreadDetail, error) {
			if in.ChannelID != "chan-1" || in.ActorID != "user-admin" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.ThreadDetail{
				ID:        "thread-2",
				ChannelID: "chan-1",
				Title:     in.Title,
				OriginalPost: ports.PostView{
					ID:         "post-9",
					Author:     ports.AuthorView{ID: "user-admin", Username: "admin"},
					Content:    in.Content,
					Timestamp:  time.Now().UTC(),
					Score:      1,
					ViewerVote: 1,
				},
				Comments: []ports.PostView{},
			}, nil
		},
	}
	handler := NewThreadHandler(stub)

	c, rec := threadContext(t, http.MethodPost, `{"title":"Hello","content":"World"}`, true)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	op, ok := resp["original_post"].(map[string]any)
	if !ok || op["viewer_vote"] != float64(1) {
		t.Fatalf("expected self-upvoted original post, got %+v", resp)
	}
}

func TestThreadHandler_Create_Unauthenticated(t *testing.T) {
	handler := NewThreadHandler(&stubContentService{})

	c, _ := threadContext(t, http.MethodPost, `{"title":"Hello","content":"World"}`, false)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestThreadHandler_Vote_Success(t *testing.T) {
	stub := &stubContentService{
		toggleVoteFn: func(ctx context.Context, in ports.ToggleVoteInput) (*ports.VoteResult, error) {
			if in.PostID != "post-1" || in.Direction != domain.VoteDown {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.VoteResult{PostID: "post-1", Score: 1, ViewerVote: -1}, nil
		},
	}
	handler := NewThreadHandler(stub)

	c, rec := threadContext(t, http.MethodPost, `{"direction":-1}`, true)

	if err := handler.Vote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp voteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ViewerVote != -1 || resp.Score != 1 {
		t.Fatalf("unexpected vote response: %+v", resp)
	}
}

func TestThreadHandler_Vote_InvalidDirection(t *testing.T) {
	handler := NewThreadHandler(&stubContentService{
		toggleVoteFn: func(ctx context.Context, in ports.ToggleVoteInput) (*ports.VoteResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	for _, body := range []string{`{"direction":0}`, `{"direction":2}`} {
		c, _ := threadContext(t, http.MethodPost, body, true)

		err := handler.Vote(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422, got %v", body, err)
		}
	}
}

func TestThreadHandler_Comment_Success(t *testing.T) {
	stub := &stubContentService{
		addCommentFn: func(ctx context.Context, in ports.AddCommentInput) (*ports.PostView, error) {
			return &ports.PostView{
				ID:         "post-3",
				Author:     ports.AuthorView{ID: "user-admin", Username: "admin"},
				Content:    in.Content,
				Score:      1,
				ViewerVote: 1,
			}, nil
		},
	}
	handler := NewThreadHandler(stub)

	c, rec := threadContext(t, http.MethodPost, `{"content":"nice thread"}`, true)

	if err := handler.Comment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestThreadHandler_Delete_ThreadRemoved(t *testing.T) {
	stub := &stubContentService{
		deletePostFn: func(ctx context.Context, in ports.DeletePostInput) (*ports.DeleteResult, error) {
			return &ports.DeleteResult{ThreadDeleted: true}, nil
		},
	}
	handler := NewThreadHandler(stub)

	c, rec := threadContext(t, http.MethodDelete, "", true)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp deleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.ThreadDeleted {
		t.Fatalf("expected thread_deleted true")
	}
}

func TestThreadHandler_Delete_Forbidden(t *testing.T) {
	stub := &stubContentService{
		deletePostFn: func(ctx context.Context, in ports.DeletePostInput) (*ports.DeleteResult, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewThreadHandler(stub)

	c, _ := threadContext(t, http.MethodDelete, "", true)

	if err := handler.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
