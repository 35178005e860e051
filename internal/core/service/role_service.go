package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
	"github.com/niko-dev25/threadirc/internal/core/store"
)

// RoleService implements role management and the member directory. The
// aggregate's role operations themselves are unchecked; this layer is where
// the manage_roles / assign_roles gates live.
type RoleService struct {
	store    *store.Store
	recorder Recorder
	log      zerolog.Logger
}

func NewRoleService(st *store.Store, recorder Recorder, log zerolog.Logger) *RoleService {
	return &RoleService{store: st, recorder: recorder, log: log}
}

func (s *RoleService) ListRoles(ctx context.Context) ([]ports.RoleView, error) {
	var out []ports.RoleView
	err := s.store.View(func(f *domain.Forum) error {
		out = make([]ports.RoleView, 0, len(f.Roles))
		for i := range f.Roles {
			out = append(out, roleView(&f.Roles[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRole adds a user-defined role. Duplicate names are permitted; only
// unknown permissions are rejected.
func (s *RoleService) CreateRole(ctx context.Context, in ports.CreateRoleInput) (*ports.RoleView, error) {
	for _, p := range in.Permissions {
		if !domain.ValidPermission(p) {
			return nil, domain.ErrInvalidRegistration
		}
	}

	var out ports.RoleView
	var actor domain.Author
	err := s.store.Update(ctx, func(f *domain.Forum) error {
		user := f.FindUser(in.ActorID)
		if user == nil {
			return domain.ErrInvalidCredentials
		}
		if !f.HasPermission(user, domain.PermManageRoles) {
			return domain.ErrForbidden
		}
		out = roleView(f.AddRole(in.Name, in.Style, in.Permissions))
		actor = user.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("role", out.Name).Str("actor", actor.Username).Msg("role created")
	s.recorder.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.ActionRoleCreated,
		TargetID:  out.ID,
		Detail:    out.Name,
		Timestamp: time.Now().UTC(),
	})
	return &out, nil
}

// AssignRole sets the target user's role. The role id is not checked for
// existence (an orphan degrades to no permissions), the actor's permission
// is.
func (s *RoleService) AssignRole(ctx context.Context, in ports.AssignRoleInput) (*ports.UserView, error) {
	var out ports.UserView
	var actor domain.Author
	err := s.store.Update(ctx, func(f *domain.Forum) error {
		user := f.FindUser(in.ActorID)
		if user == nil {
			return domain.ErrInvalidCredentials
		}
		if !f.HasPermission(user, domain.PermAssignRoles) {
			return domain.ErrForbidden
		}
		target, err := f.AssignRole(in.UserID, in.RoleID)
		if err != nil {
			return err
		}
		out = userView(f, target)
		actor = user.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user", in.UserID).Str("role", in.RoleID).Str("actor", actor.Username).Msg("role assigned")
	s.recorder.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    domain.ActionRoleAssigned,
		TargetID:  in.UserID,
		Detail:    in.RoleID,
		Timestamp: time.Now().UTC(),
	})
	return &out, nil
}

func (s *RoleService) ListMembers(ctx context.Context) ([]ports.MemberView, error) {
	var out []ports.MemberView
	err := s.store.View(func(f *domain.Forum) error {
		out = make([]ports.MemberView, 0, len(f.Users))
		for i := range f.Users {
			user := &f.Users[i]
			member := ports.MemberView{UserView: userView(f, user)}
			if role := f.FindRole(user.RoleID); role != nil {
				member.Permissions = append([]domain.Permission(nil), role.Permissions...)
			} else {
				member.Permissions = []domain.Permission{}
			}
			out = append(out, member)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func roleView(r *domain.Role) ports.RoleView {
	return ports.RoleView{
		ID:          r.ID,
		Name:        r.Name,
		Style:       r.Style,
		Permissions: append([]domain.Permission(nil), r.Permissions...),
	}
}
