// session/manager.go
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	logger "github.com/medicore-hms/hmsctl/logging"
	"github.com/medicore-hms/hmsctl/model"
	"github.com/medicore-hms/hmsctl/rbac"
	"github.com/medicore-hms/hmsctl/store"
	"github.com/medicore-hms/hmsctl/util"
)

// TTL is the window after which a persisted session must be revalidated or
// discarded.
const TTL = 24 * time.Hour

// Status is the lifecycle state of the process-wide session.
type Status int

const (
	StatusUninitialized Status = iota
	StatusRevalidating
	StatusLoggedIn
	StatusLoggedOut
)

// AuthAPI is the slice of the backend the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*model.User, error)
}

// Manager owns the process-wide authentication state: login, logout, token
// persistence, startup revalidation, and role/permission derivation. All
// other components read it through accessors or the event bus.
type Manager struct {
	mu       sync.RWMutex
	store    store.Store
	api      AuthAPI
	bus      *util.EventBus
	now      func() time.Time
	user     *model.User
	loading  bool
	verified bool
	status   Status
}

func NewManager(st store.Store, api AuthAPI, bus *util.EventBus) *Manager {
	m := &Manager{
		store:  st,
		api:    api,
		bus:    bus,
		now:    time.Now,
		status: StatusUninitialized,
	}
	if bus != nil {
		// The gateway purges storage when the backend signals expiry; drop
		// the in-memory user too so IsAuthenticated flips without re-polling.
		bus.Subscribe(util.EventSessionExpired, func(ctx context.Context, e util.Event) error {
			m.mu.Lock()
			m.user = nil
			m.verified = false
			m.status = StatusLoggedOut
			m.mu.Unlock()
			return nil
		})
	}
	return m
}

// WithClock overrides the time source. Tests only.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Initialize performs the startup recovery: inspect the persisted record,
// enforce the TTL, and revalidate the token against the backend. It never
// fails the caller; every bad path lands in StatusLoggedOut.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()
	defer m.setLoading(false)

	rec, ok, err := m.store.Load(ctx)
	if err != nil {
		logger.Error("Could not read persisted session", zap.Error(err))
		m.setLoggedOut()
		return
	}
	if !ok {
		m.setLoggedOut()
		return
	}

	issued, err := rec.IssuedAt()
	if err != nil {
		logger.Warn("Persisted session has a bad timestamp, purging", zap.Error(err))
		m.purge(ctx)
		return
	}
	if m.now().Sub(issued) >= TTL {
		logger.Info("Persisted session is past its TTL, purging")
		m.purge(ctx)
		return
	}

	m.setStatus(StatusRevalidating)
	user, err := m.api.ValidateToken(ctx, rec.AuthToken)
	if err == nil && user != nil {
		// Fresh user snapshot, TTL clock reset.
		updated, recErr := store.NewRecord(rec.AuthToken, user, rec.UserRole, m.now())
		if recErr == nil {
			if saveErr := m.store.Save(ctx, updated); saveErr != nil {
				logger.Warn("Could not rewrite revalidated session", zap.Error(saveErr))
			}
		}
		m.adopt(user, true)
		if m.bus != nil {
			m.bus.Publish(ctx, util.EventSessionRevalidated, user.Email)
		}
		return
	}

	// Validation failed: backend down, token rejected, anything. Trust the
	// cached user and leave the stored timestamp alone so the original TTL
	// clock still bounds the session.
	logger.Warn("Token validation failed, using stored user data", zap.Error(err))
	cached, err := rec.User()
	if err != nil {
		logger.Error("Stored user record is unreadable, purging", zap.Error(err))
		m.purge(ctx)
		return
	}
	m.adopt(cached, false)
}

// Login authenticates against POST /login. It reports success as a boolean;
// credential rejections and transport errors both come back false, with
// nothing persisted.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		logger.Error("Login error", zap.Error(err), zap.String("email", email))
		return false
	}
	if !resp.Success || resp.User == nil || resp.AccessToken == "" {
		return false
	}

	role := resp.User.Role
	if role == "" {
		role = resp.User.UserType.Type
	}

	rec, err := store.NewRecord(resp.AccessToken, resp.User, role, m.now())
	if err != nil {
		logger.Error("Could not build session record", zap.Error(err))
		return false
	}
	if err := m.store.Save(ctx, rec); err != nil {
		logger.Error("Could not persist session", zap.Error(err))
		return false
	}

	m.adopt(resp.User, true)
	if m.bus != nil {
		m.bus.Publish(ctx, util.EventSessionLogin, resp.User.Email)
	}
	return true
}

// Logout purges the persisted record and clears the in-memory user.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	email := ""
	if m.user != nil {
		email = m.user.Email
	}
	m.user = nil
	m.verified = false
	m.status = StatusLoggedOut
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		logger.Error("Could not clear persisted session", zap.Error(err))
	}
	if m.bus != nil {
		m.bus.Publish(ctx, util.EventSessionLogout, email)
	}
}

// IsAuthenticated reports whether a user is present, verified or not.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// IsVerified distinguishes a backend-confirmed session from the
// trust-the-cache fallback taken when revalidation fails.
func (m *Manager) IsVerified() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.verified
}

func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// CurrentUser returns the authenticated principal, or nil.
func (m *Manager) CurrentUser() *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// HasRole matches the queried role against user_type.type, case-insensitively.
func (m *Manager) HasRole(role string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return false
	}
	return strings.EqualFold(m.user.UserType.Type, role)
}

// HasPermission consults the role/permission table for the current user.
func (m *Manager) HasPermission(permission string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return false
	}
	return rbac.Can(m.user.RoleName(), permission)
}

// RedirectPath returns the landing route for the current user's role.
func (m *Manager) RedirectPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return "/dashboard"
	}
	return rbac.RedirectPath(m.user.UserType.Type)
}

func (m *Manager) adopt(user *model.User, verified bool) {
	m.mu.Lock()
	m.user = user
	m.verified = verified
	m.status = StatusLoggedIn
	m.mu.Unlock()
}

func (m *Manager) purge(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		logger.Error("Could not purge persisted session", zap.Error(err))
	}
	m.setLoggedOut()
}

func (m *Manager) setLoggedOut() {
	m.mu.Lock()
	m.user = nil
	m.verified = false
	m.status = StatusLoggedOut
	m.mu.Unlock()
}

func (m *Manager) setStatus(s Status) {
	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
