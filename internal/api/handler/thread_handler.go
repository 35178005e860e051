package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niko-dev25/threadirc/internal/api/metrics"
	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
)

// ThreadHandler handles HTTP requests for threads, comments, and votes.
type ThreadHandler struct {
	service ports.ContentService
}

func NewThreadHandler(service ports.ContentService) *ThreadHandler {
	return &ThreadHandler{service: service}
}

// Create starts a new thread in a channel.
//
// @Summary      Create a thread
// @Tags         threads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        channelID  path      string               true  "Channel id"
// @Param        body       body      createThreadRequest  true  "Thread details"
// @Success      201        {object}  threadResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1/channels/{channelID}/threads [post]
func (h *ThreadHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createThreadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	thread, err := h.service.CreateThread(c.Request().Context(), ports.CreateThreadInput{
		ChannelID: c.Param("channelID"),
		Title:     req.Title,
		Content:   req.Content,
		ActorID:   actor,
	})
	if err != nil {
		return err
	}

	metrics.ThreadsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toThreadResponse(thread))
}

// Get returns one thread with its comments in posting order. Vote state is
// resolved for the requesting user.
//
// @Summary      Get a thread
// @Tags         threads
// @Produce      json
// @Security     BearerAuth
// @Param        channelID  path      string  true  "Channel id"
// @Param        threadID   path      string  true  "Thread id"
// @Success      200        {object}  threadResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1/channels/{channelID}/threads/{threadID} [get]
func (h *ThreadHandler) Get(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	thread, err := h.service.GetThread(c.Request().Context(), ports.GetThreadInput{
		ChannelID: c.Param("channelID"),
		ThreadID:  c.Param("threadID"),
		ViewerID:  actor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toThreadResponse(thread))
}

// Comment appends a comment to a thread.
//
// @Summary      Add a comment
// @Tags         threads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        channelID  path      string             true  "Channel id"
// @Param        threadID   path      string             true  "Thread id"
// @Param        body       body      addCommentRequest  true  "Comment body"
// @Success      201        {object}  postResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1/channels/{channelID}/threads/{threadID}/comments [post]
func (h *ThreadHandler) Comment(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.AddComment(c.Request().Context(), ports.AddCommentInput{
		ChannelID: c.Param("channelID"),
		ThreadID:  c.Param("threadID"),
		Content:   req.Content,
		ActorID:   actor,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toPostResponse(*post))
}

// Vote toggles the authenticated user's vote on a post. Voting the same
// direction twice removes the vote; voting the opposite direction replaces
// it.
//
// @Summary      Toggle a vote on a post
// @Tags         threads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        channelID  path      string       true  "Channel id"
// @Param        threadID   path      string       true  "Thread id"
// @Param        postID     path      string       true  "Post id"
// @Param        body       body      voteRequest  true  "Vote direction"
// @Success      200        {object}  voteResponse
// @Failure      404        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /v1/channels/{channelID}/threads/{threadID}/posts/{postID}/vote [post]
func (h *ThreadHandler) Vote(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.ToggleVote(c.Request().Context(), ports.ToggleVoteInput{
		ChannelID: c.Param("channelID"),
		ThreadID:  c.Param("threadID"),
		PostID:    c.Param("postID"),
		Direction: domain.VoteDirection(req.Direction),
		ActorID:   actor,
	})
	if err != nil {
		return err
	}

	if req.Direction > 0 {
		metrics.VotesCastTotal.WithLabelValues("up").Inc()
	} else {
		metrics.VotesCastTotal.WithLabelValues("down").Inc()
	}
	return c.JSON(http.StatusOK, voteResponse{
		PostID:     result.PostID,
		Score:      result.Score,
		ViewerVote: result.ViewerVote,
	})
}

// Delete removes a post. Deleting the original post removes the whole
// thread.
//
// @Summary      Delete a post
// @Tags         threads
// @Produce      json
// @Security     BearerAuth
// @Param        channelID  path      string  true  "Channel id"
// @Param        threadID   path      string  true  "Thread id"
// @Param        postID     path      string  true  "Post id"
// @Success      200        {object}  deleteResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1/channels/{channelID}/threads/{threadID}/posts/{postID} [delete]
func (h *ThreadHandler) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	result, err := h.service.DeletePost(c.Request().Context(), ports.DeletePostInput{
		ChannelID: c.Param("channelID"),
		ThreadID:  c.Param("threadID"),
		PostID:    c.Param("postID"),
		ActorID:   actor,
	})
	if err != nil {
		return err
	}

	if result.ThreadDeleted {
		metrics.PostsDeletedTotal.WithLabelValues("thread").Inc()
	} else {
		metrics.PostsDeletedTotal.WithLabelValues("comment").Inc()
	}
	return c.JSON(http.StatusOK, deleteResponse{ThreadDeleted: result.ThreadDeleted})
}
