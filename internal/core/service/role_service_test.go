package service

import (
	"context"
	"errors"
	"testing"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
)

func newRoleService(t *testing.T) (*RoleService, *memForumRepo, *captureRecorder) {
	t.Helper()
	st, repo := newSeededStore(t)
	recorder := &captureRecorder{}
	return NewRoleService(st, recorder, discardLogger), repo, recorder
}

func TestRoleService_CreateRole_RequiresManageRoles(t *testing.T) {
	svc, _, _ := newRoleService(t)

	// admin holds delete/create permissions but not manage_roles.
	_, err := svc.CreateRole(context.Background(), ports.CreateRoleInput{
		Name: "VIP", Style: "text-pink-400", ActorID: "user-admin",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRoleService_CreateRole_OwnerSucceeds(t *testing.T) {
	svc, repo, recorder := newRoleService(t)

	role, err := svc.CreateRole(context.Background(), ports.CreateRoleInput{
		Name: "VIP", Style: "text-pink-400",
		Permissions: []domain.Permission{domain.PermDeleteAnyPost},
		ActorID:     "user-owner",
	})
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	if repo.forum.FindRole(role.ID) == nil {
		t.Error("role not in aggregate")
	}
	if ev := recorder.last(); ev == nil || ev.Action != domain.ActionRoleCreated {
		t.Errorf("expected role_created audit event, got %+v", ev)
	}
}

func TestRoleService_CreateRole_DuplicateNamesPermitted(t *testing.T) {
	svc, _, _ := newRoleService(t)

	in := ports.CreateRoleInput{Name: "MOD", ActorID: "user-owner"}
	if _, err := svc.CreateRole(context.Background(), in); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := svc.CreateRole(context.Background(), in); err != nil {
		t.Fatalf("duplicate name must be permitted, got %v", err)
	}
}

func TestRoleService_CreateRole_UnknownPermissionRejected(t *testing.T) {
	svc, _, _ := newRoleService(t)
	_, err := svc.CreateRole(context.Background(), ports.CreateRoleInput{
		Name: "X", Permissions: []domain.Permission{"launch_missiles"}, ActorID: "user-owner",
	})
	if !errors.Is(err, domain.ErrInvalidRegistration) {
		t.Fatalf("expected ErrInvalidRegistration, got %v", err)
	}
}

func TestRoleService_AssignRole_RequiresAssignRoles(t *testing.T) {
	svc, _, _ := newRoleService(t)

	_, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID: "user-dummy1", RoleID: domain.RoleIDMod, ActorID: "user-mod",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRoleService_AssignRole_OwnerSucceeds(t *testing.T) {
	svc, repo, _ := newRoleService(t)

	view, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID: "user-dummy1", RoleID: domain.RoleIDMod, ActorID: "user-owner",
	})
	if err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if view.RoleID != domain.RoleIDMod || view.RoleName != "MOD" {
		t.Errorf("unexpected view: %+v", view)
	}
	if repo.forum.FindUser("user-dummy1").RoleID != domain.RoleIDMod {
		t.Error("aggregate not updated")
	}
}

func TestRoleService_AssignRole_OrphanRoleAccepted(t *testing.T) {
	svc, repo, _ := newRoleService(t)

	view, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID: "user-dummy1", RoleID: "role-vanished", ActorID: "user-owner",
	})
	if err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if view.RoleName != "" {
		t.Errorf("orphan role must resolve to empty display fields, got %q", view.RoleName)
	}
	target := repo.forum.FindUser("user-dummy1")
	if repo.forum.HasPermission(target, domain.PermDeleteAnyPost) {
		t.Error("orphaned role must grant nothing")
	}
}

func TestRoleService_AssignRole_UnknownTarget(t *testing.T) {
	svc, _, _ := newRoleService(t)
	_, err := svc.AssignRole(context.Background(), ports.AssignRoleInput{
		UserID: "user-nope", RoleID: domain.RoleIDMod, ActorID: "user-owner",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRoleService_ListMembers(t *testing.T) {
	svc, _, _ := newRoleService(t)

	members, err := svc.ListMembers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 7 {
		t.Fatalf("seeded member count: want 7, got %d", len(members))
	}
	byName := map[string]ports.MemberView{}
	for _, m := range members {
		byName[m.Username] = m
	}
	if byName["mod"].RoleName != "MOD" {
		t.Errorf("mod role: %+v", byName["mod"])
	}
	if len(byName["dummyUser1"].Permissions) != 0 {
		t.Error("USER role must carry no permissions")
	}
	if len(byName["niko.is.here"].Permissions) != 5 {
		t.Errorf("OWNER must carry all five permissions, got %d", len(byName["niko.is.here"].Permissions))
	}
}

func TestRoleService_ListRoles(t *testing.T) {
	svc, _, _ := newRoleService(t)
	roles, err := svc.ListRoles(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(roles) != 6 {
		t.Fatalf("seeded role count: want 6, got %d", len(roles))
	}
}
