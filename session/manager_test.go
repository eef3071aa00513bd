package session_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/medicore-hms/hmsctl/logging"
	"github.com/medicore-hms/hmsctl/model"
	"github.com/medicore-hms/hmsctl/session"
	"github.com/medicore-hms/hmsctl/store"
	"github.com/medicore-hms/hmsctl/test/mock"
)

func TestMain(m *testing.M) {
	dir, _ := os.MkdirTemp("", "hmsctl-test")
	logger.InitLogger(dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func doctorUser() *model.User {
	return &model.User{
		ID:       "d-1",
		Name:     "Dr. Michael Chen",
		Email:    "doctor@hospital.test",
		UserType: model.UserType{Type: "doctor"},
		IsActive: true,
	}
}

func seededRecord(t *testing.T, st store.Store, user *model.User, age time.Duration) store.Record {
	t.Helper()
	rec, err := store.NewRecord("tok-seed", user, user.UserType.Type, time.Now().Add(-age))
	require.NoError(t, err)
	require.NoError(t, st.Save(context.Background(), rec))
	return rec
}

func TestFreshStartNoStorage(t *testing.T) {
	api := &mock.AuthAPI{}
	m := session.NewManager(store.NewMemoryStore(), api, nil)

	m.Initialize(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.False(t, m.IsLoading())
	assert.Equal(t, session.StatusLoggedOut, m.Status())
	assert.Zero(t, api.ValidateCalls(), "no network call on empty storage")
}

func TestTTLExpiryPurgesAtStartup(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	seededRecord(t, st, doctorUser(), 25*time.Hour)

	api := &mock.AuthAPI{ValidateUser: doctorUser()}
	m := session.NewManager(st, api, nil)
	m.Initialize(ctx)

	assert.False(t, m.IsAuthenticated())
	assert.Equal(t, session.StatusLoggedOut, m.Status())
	assert.Zero(t, api.ValidateCalls(), "expired sessions are purged without revalidation")

	_, ok, err := st.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "all four persisted fields are gone")
}

func TestRevalidationSuccessRefreshesRecord(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	old := seededRecord(t, st, doctorUser(), 23*time.Hour)

	refreshed := doctorUser()
	refreshed.Name = "Dr. Michael Chen, MD"

	m := session.NewManager(st, &mock.AuthAPI{ValidateUser: refreshed}, nil)
	m.Initialize(ctx)

	assert.True(t, m.IsAuthenticated())
	assert.True(t, m.IsVerified())
	assert.Equal(t, "Dr. Michael Chen, MD", m.CurrentUser().Name)

	rec, ok, err := st.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// TTL clock reset, user snapshot replaced, token kept.
	assert.Equal(t, old.AuthToken, rec.AuthToken)
	assert.NotEqual(t, old.AuthTimestamp, rec.AuthTimestamp)
	u, err := rec.User()
	require.NoError(t, err)
	assert.Equal(t, "Dr. Michael Chen, MD", u.Name)

	issued, err := rec.IssuedAt()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), issued, time.Minute)
}

func TestRevalidationFailureFallsBackToCachedUser(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	old := seededRecord(t, st, doctorUser(), 23*time.Hour)

	m := session.NewManager(st, &mock.AuthAPI{ValidateErr: errors.New("backend unreachable")}, nil)
	m.Initialize(ctx)

	// Availability over strictness: still logged in, but unverified.
	assert.True(t, m.IsAuthenticated())
	assert.False(t, m.IsVerified())
	assert.Equal(t, "Dr. Michael Chen", m.CurrentUser().Name)

	// Timestamp untouched: the original TTL clock still bounds the session.
	rec, ok, err := st.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, old.AuthTimestamp, rec.AuthTimestamp)
}

func TestLoginSuccessPersistsAtomically(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	user := doctorUser()
	user.UserType.Type = "Doctor" // backend casing preserved
	api := &mock.AuthAPI{LoginResp: &model.LoginResponse{
		Success:     true,
		User:        user,
		AccessToken: "tok-fresh",
	}}

	m := session.NewManager(st, api, nil)
	assert.True(t, m.Login(ctx, "doctor@hospital.test", "password123"))
	assert.True(t, m.IsAuthenticated())
	assert.False(t, m.IsLoading())

	rec, ok, err := st.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, rec.Complete())
	assert.Equal(t, "tok-fresh", rec.AuthToken)

	u, err := rec.User()
	require.NoError(t, err)
	assert.True(t, strings.EqualFold(rec.UserRole, u.UserType.Type))
}

func TestLoginRejectedLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	api := &mock.AuthAPI{LoginResp: &model.LoginResponse{Success: false}}

	m := session.NewManager(st, api, nil)
	assert.False(t, m.Login(ctx, "a@b.com", "wrong"))
	assert.False(t, m.IsAuthenticated())
	assert.Equal(t, session.StatusUninitialized, m.Status())

	_, ok, err := st.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginMissingTokenIsFailure(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	api := &mock.AuthAPI{LoginResp: &model.LoginResponse{Success: true, User: doctorUser()}}

	m := session.NewManager(st, api, nil)
	assert.False(t, m.Login(ctx, "doctor@hospital.test", "password123"))

	_, ok, _ := st.Load(ctx)
	assert.False(t, ok)
}

func TestLoginTransportErrorIsFalseNotPanic(t *testing.T) {
	m := session.NewManager(store.NewMemoryStore(), &mock.AuthAPI{LoginErr: errors.New("conn refused")}, nil)
	assert.False(t, m.Login(context.Background(), "a@b.com", "pw"))
	assert.False(t, m.IsLoading())
}

func TestReloginOverwritesCleanly(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	first := doctorUser()
	api := &mock.AuthAPI{LoginResp: &model.LoginResponse{Success: true, User: first, AccessToken: "tok-1"}}
	m := session.NewManager(st, api, nil)
	require.True(t, m.Login(ctx, first.Email, "pw"))

	second := &model.User{
		ID:       "n-2",
		Name:     "Emily Rodriguez",
		Email:    "nurse@hospital.test",
		UserType: model.UserType{Type: "nurse"},
	}
	api.LoginResp = &model.LoginResponse{Success: true, User: second, AccessToken: "tok-2"}
	require.True(t, m.Login(ctx, second.Email, "pw"))

	// Full, consistent overwrite: every field belongs to the second login.
	rec, ok, err := st.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-2", rec.AuthToken)
	assert.Equal(t, "nurse", rec.UserRole)
	u, err := rec.User()
	require.NoError(t, err)
	assert.Equal(t, "n-2", u.ID)
	assert.Equal(t, "nurse", m.CurrentUser().RoleName())
}

func TestLogoutPurgesEverything(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	api := &mock.AuthAPI{LoginResp: &model.LoginResponse{Success: true, User: doctorUser(), AccessToken: "tok"}}

	m := session.NewManager(st, api, nil)
	require.True(t, m.Login(ctx, "doctor@hospital.test", "pw"))

	m.Logout(ctx)
	assert.False(t, m.IsAuthenticated())
	assert.Equal(t, session.StatusLoggedOut, m.Status())

	_, ok, err := st.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasRoleIsCaseInsensitive(t *testing.T) {
	for _, stored := range []string{"doctor", "DOCTOR", "Doctor"} {
		st := store.NewMemoryStore()
		user := doctorUser()
		user.UserType.Type = stored
		api := &mock.AuthAPI{LoginResp: &model.LoginResponse{Success: true, User: user, AccessToken: "tok"}}

		m := session.NewManager(st, api, nil)
		require.True(t, m.Login(context.Background(), user.Email, "pw"))
		assert.True(t, m.HasRole("doctor"), "stored casing %q", stored)
	}
}

func TestHasPermissionWithoutUser(t *testing.T) {
	m := session.NewManager(store.NewMemoryStore(), &mock.AuthAPI{}, nil)
	assert.False(t, m.HasPermission("patients:read"))
	assert.False(t, m.HasRole("admin"))
}

func TestHasPermissionByRole(t *testing.T) {
	st := store.NewMemoryStore()
	nurse := &model.User{ID: "n-1", Email: "nurse@hospital.test", UserType: model.UserType{Type: "nurse"}}
	api := &mock.AuthAPI{LoginResp: &model.LoginResponse{Success: true, User: nurse, AccessToken: "tok"}}

	m := session.NewManager(st, api, nil)
	require.True(t, m.Login(context.Background(), nurse.Email, "pw"))

	assert.True(t, m.HasPermission("tokens:write"))
	assert.False(t, m.HasPermission("prescriptions:read"))
}

func TestRedirectPath(t *testing.T) {
	m := session.NewManager(store.NewMemoryStore(), &mock.AuthAPI{}, nil)
	assert.Equal(t, "/dashboard", m.RedirectPath())

	admin := &model.User{ID: "a-1", Email: "admin@hospital.test", UserType: model.UserType{Type: "admin"}}
	api := &mock.AuthAPI{LoginResp: &model.LoginResponse{Success: true, User: admin, AccessToken: "tok"}}
	m = session.NewManager(store.NewMemoryStore(), api, nil)
	require.True(t, m.Login(context.Background(), admin.Email, "pw"))
	assert.Equal(t, "/admin/dashboard", m.RedirectPath())
}
