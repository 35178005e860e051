package handler

import (
	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
)

// --- Service result → HTTP response ---

func toUserResponse(u ports.UserView) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		RoleID:    u.RoleID,
		RoleName:  u.RoleName,
		RoleStyle: u.RoleStyle,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toChannelResponse(ch ports.ChannelSummary) channelResponse {
	return channelResponse{
		ID:          ch.ID,
		Name:        ch.Name,
		Description: ch.Description,
		OwnerID:     ch.OwnerID,
		IsPrivate:   ch.IsPrivate,
		ThreadCount: ch.ThreadCount,
	}
}

func toChannelDetailResponse(d *ports.ChannelDetail) channelDetailResponse {
	threads := make([]threadSummaryResponse, len(d.Threads))
	for i, th := range d.Threads {
		threads[i] = threadSummaryResponse{
			ID:           th.ID,
			Title:        th.Title,
			Author:       authorResponse{ID: th.Author.ID, Username: th.Author.Username},
			CreatedAt:    th.CreatedAt.UTC(),
			LastActivity: th.LastActivity.UTC(),
			Score:        th.Score,
			CommentCount: th.CommentCount,
		}
	}
	return channelDetailResponse{
		channelResponse: toChannelResponse(d.ChannelSummary),
		Threads:         threads,
	}
}

func toPostResponse(p ports.PostView) postResponse {
	return postResponse{
		ID:         p.ID,
		Author:     authorResponse{ID: p.Author.ID, Username: p.Author.Username},
		Content:    p.Content,
		Timestamp:  p.Timestamp.UTC(),
		Score:      p.Score,
		ViewerVote: p.ViewerVote,
	}
}

func toThreadResponse(d *ports.ThreadDetail) threadResponse {
	comments := make([]postResponse, len(d.Comments))
	for i, p := range d.Comments {
		comments[i] = toPostResponse(p)
	}
	return threadResponse{
		ID:           d.ID,
		ChannelID:    d.ChannelID,
		Title:        d.Title,
		LastActivity: d.LastActivity.UTC(),
		OriginalPost: toPostResponse(d.OriginalPost),
		Comments:     comments,
	}
}

func toRoleResponse(r ports.RoleView) roleResponse {
	return roleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Style:       r.Style,
		Permissions: toPermissionStrings(r.Permissions),
	}
}

func toMemberResponse(m ports.MemberView) memberResponse {
	return memberResponse{
		userResponse: toUserResponse(m.UserView),
		Permissions:  toPermissionStrings(m.Permissions),
	}
}

func toPermissionStrings(perms []domain.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
