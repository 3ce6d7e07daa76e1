package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop/internal/app/dto"
)

func aliceRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Login:    "alice",
		Password: "pw",
		Role:     "Customer",
		Name:     "Alice",
		Surname:  "A",
		Contact:  "555-1",
		Email:    "a@x.com",
	}
}

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	return NewDirectory(filepath.Join(t.TempDir(), "users.txt"))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	dir := newTestDirectory(t)

	user, err := dir.Register(aliceRequest())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)

	authed, err := dir.Authenticate("alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Customer", authed.Role)

	_, err = dir.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestRegisterRejectsTakenLogin(t *testing.T) {
	dir := newTestDirectory(t)

	_, err := dir.Register(aliceRequest())
	require.NoError(t, err)

	second := aliceRequest()
	second.Name = "Other"
	_, err = dir.Register(second)
	assert.ErrorIs(t, err, ErrLoginTaken)
	assert.Len(t, dir.Users(), 1, "directory size unchanged")
}

func TestRegisterPersistsImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	dir := NewDirectory(path)

	_, err := dir.Register(aliceRequest())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "alice,pw,Customer,"))
}

func TestAuthenticateUnknownLogin(t *testing.T) {
	dir := newTestDirectory(t)
	_, err := dir.Authenticate("nobody", "pw")
	assert.ErrorIs(t, err, ErrUnknownLogin)
}

func TestUpdateProfile(t *testing.T) {
	dir := newTestDirectory(t)
	user, err := dir.Register(aliceRequest())
	require.NoError(t, err)

	err = dir.UpdateProfile(user, dto.ProfileUpdate{
		Name:    "Alicia",
		Surname: "Anders",
		Contact: "555-9",
		Email:   "alicia@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", user.Name)
	assert.Equal(t, "alicia@x.com", user.Email)
}

func TestUpdateProfileInvalidInputIsAtomic(t *testing.T) {
	dir := newTestDirectory(t)
	user, err := dir.Register(aliceRequest())
	require.NoError(t, err)

	cases := []dto.ProfileUpdate{
		{Name: "", Surname: "S", Contact: "C", Email: "e@x.com"},
		{Name: "N", Surname: "", Contact: "C", Email: "e@x.com"},
		{Name: "N", Surname: "S", Contact: "", Email: "e@x.com"},
		{Name: "N", Surname: "S", Contact: "C", Email: "no-at-sign"},
	}
	for _, upd := range cases {
		err := dir.UpdateProfile(user, upd)
		assert.ErrorIs(t, err, ErrInvalidProfile)
	}

	assert.Equal(t, "Alice", user.Name, "failed update leaves all fields untouched")
	assert.Equal(t, "a@x.com", user.Email)
}

func TestDirectoryLoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	content := "alice,pw,Customer,Alice,A,555-1,a@x.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	dir := NewDirectory(path)
	require.Len(t, dir.Users(), 1)

	user, err := dir.GetUserByLogin("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}
