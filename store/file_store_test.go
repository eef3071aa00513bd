package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore-hms/hmsctl/model"
	"github.com/medicore-hms/hmsctl/store"
)

func testUser() *model.User {
	return &model.User{
		ID:       "u-17",
		Name:     "Emily Rodriguez",
		Email:    "nurse@hospital.test",
		UserType: model.UserType{Type: "nurse"},
		IsActive: true,
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	s := store.NewFileStore(path)

	rec, err := store.NewRecord("tok-abc", testUser(), "nurse", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, rec))

	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-abc", got.AuthToken)
	assert.Equal(t, "nurse", got.UserRole)

	u, err := got.User()
	require.NoError(t, err)
	assert.Equal(t, "Emily Rodriguez", u.Name)
	assert.Equal(t, "nurse", u.RoleName())
}

func TestFileStoreMissingFileReadsAbsent(t *testing.T) {
	s := store.NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	_, ok, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStorePartialRecordReadsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	// Record with a token but no user, role, or timestamp.
	require.NoError(t, os.WriteFile(path, []byte(`{"auth_token":"tok-only"}`), 0o600))

	s := store.NewFileStore(path)
	_, ok, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreCorruptFileReadsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := store.NewFileStore(path)
	_, ok, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	s := store.NewFileStore(path)

	rec, err := store.NewRecord("tok", testUser(), "nurse", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, rec))
	require.NoError(t, s.Clear(ctx))

	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an already-absent record is not an error.
	assert.NoError(t, s.Clear(ctx))
}

func TestRecordIssuedAt(t *testing.T) {
	issued := time.Now().Truncate(time.Millisecond)
	rec, err := store.NewRecord("tok", testUser(), "nurse", issued)
	require.NoError(t, err)

	got, err := rec.IssuedAt()
	require.NoError(t, err)
	assert.True(t, got.Equal(issued))
}
