package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Username        string `json:"username"         validate:"required,min=3,max=15"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createChannelRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=30"`
	Description string `json:"description" validate:"max=200"`
}

type createThreadRequest struct {
	Title   string `json:"title"   validate:"required,min=3,max=120"`
	Content string `json:"content" validate:"required,max=10000"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required,max=10000"`
}

type voteRequest struct {
	// Direction is +1 for an upvote, -1 for a downvote.
	Direction int `json:"direction" validate:"required,oneof=-1 1"`
}

type createRoleRequest struct {
	Name        string   `json:"name"  validate:"required,min=2,max=30"`
	Style       string   `json:"style" validate:"max=100"`
	Permissions []string `json:"permissions"`
}

type assignRoleRequest struct {
	RoleID string `json:"role_id" validate:"required"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from
// ports/domain types so the JSON contract is not coupled to internal
// service changes.

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	RoleID    string    `json:"role_id"`
	RoleName  string    `json:"role_name,omitempty"`
	RoleStyle string    `json:"role_style,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  userResponse `json:"user"`
}

type authorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type channelResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerID     string `json:"owner_id"`
	IsPrivate   bool   `json:"is_private"`
	ThreadCount int    `json:"thread_count"`
}

type threadSummaryResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Author       authorResponse `json:"author"`
	CreatedAt    time.Time      `json:"created_at"`
	LastActivity time.Time      `json:"last_activity"`
	Score        int            `json:"score"`
	CommentCount int            `json:"comment_count"`
}

type channelDetailResponse struct {
	channelResponse
	Threads []threadSummaryResponse `json:"threads"`
}

type postResponse struct {
	ID        string         `json:"id"`
	Author    authorResponse `json:"author"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Score     int            `json:"score"`
	// ViewerVote is the requesting user's own vote: +1, -1, or 0.
	ViewerVote int `json:"viewer_vote"`
}

type threadResponse struct {
	ID           string         `json:"id"`
	ChannelID    string         `json:"channel_id"`
	Title        string         `json:"title"`
	LastActivity time.Time      `json:"last_activity"`
	OriginalPost postResponse   `json:"original_post"`
	Comments     []postResponse `json:"comments"`
}

type voteResponse struct {
	PostID     string `json:"post_id"`
	Score      int    `json:"score"`
	ViewerVote int    `json:"viewer_vote"`
}

type deleteResponse struct {
	ThreadDeleted bool `json:"thread_deleted"`
}

type roleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Style       string   `json:"style,omitempty"`
	Permissions []string `json:"permissions"`
}

type memberResponse struct {
	userResponse
	Permissions []string `json:"permissions"`
}
