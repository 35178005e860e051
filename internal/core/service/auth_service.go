package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
	"github.com/niko-dev25/threadirc/internal/core/store"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// AuthService implements registration, login, and the session snapshot.
type AuthService struct {
	store     *store.Store
	sessions  ports.SessionStore
	recorder  Recorder
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(st *store.Store, sessions ports.SessionStore, recorder Recorder, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		store:     st,
		sessions:  sessions,
		recorder:  recorder,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates an account with the fixed USER role. The transport edge
// validates fields first; the checks here are the backstop, so the aggregate
// never sees an out-of-contract username or password.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if len(in.Username) < 3 || len(in.Username) > 15 || !usernamePattern.MatchString(in.Username) {
		return nil, domain.ErrInvalidRegistration
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var result ports.AuthResult
	var snapshot domain.User
	err = s.store.Update(ctx, func(f *domain.Forum) error {
		user, err := f.AddUser(in.Username, string(hash), time.Now().UTC())
		if err != nil {
			return err
		}
		snapshot = *user
		result.User = userView(f, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(&snapshot)
	if err != nil {
		return nil, err
	}
	result.Token = token

	// The account exists and the token is valid; a failed session write only
	// degrades the "resume session" convenience.
	_ = s.sessions.Put(ctx, snapshot)

	s.recorder.Record(domain.AuditEvent{
		Actor:     snapshot.Snapshot(),
		Action:    domain.ActionUserRegistered,
		TargetID:  snapshot.ID,
		Timestamp: time.Now().UTC(),
	})
	return &result, nil
}

// Login authenticates with a case-insensitive username lookup and a bcrypt
// compare, issues a token, and stores the session snapshot.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	var result ports.AuthResult
	var snapshot domain.User
	err := s.store.View(func(f *domain.Forum) error {
		user := f.FindUserByUsername(in.Username)
		if user == nil {
			return domain.ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
			return domain.ErrInvalidCredentials
		}
		snapshot = *user
		result.User = userView(f, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(&snapshot)
	if err != nil {
		return nil, err
	}
	result.Token = token

	_ = s.sessions.Put(ctx, snapshot)
	return &result, nil
}

// Session returns the stored snapshot re-resolved against the live user set.
// A snapshot whose account has disappeared clears the session instead of
// failing later operations.
func (s *AuthService) Session(ctx context.Context) (*ports.UserView, error) {
	snapshot, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}

	var view ports.UserView
	err = s.store.View(func(f *domain.Forum) error {
		user := f.FindUser(snapshot.ID)
		if user == nil {
			return domain.ErrAggregateNotFound
		}
		view = userView(f, user)
		return nil
	})
	if errors.Is(err, domain.ErrAggregateNotFound) {
		_ = s.sessions.Clear(ctx)
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *AuthService) ClearSession(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role_id":  user.RoleID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// userView resolves the user's role for display; an orphaned role id leaves
// the role fields empty rather than failing.
func userView(f *domain.Forum, u *domain.User) ports.UserView {
	view := ports.UserView{
		ID:        u.ID,
		Username:  u.Username,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
	}
	if role := f.FindRole(u.RoleID); role != nil {
		view.RoleName = role.Name
		view.RoleStyle = role.Style
	}
	return view
}
