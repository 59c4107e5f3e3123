package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GehirnInc/crypt/sha512_crypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeShadow(t *testing.T, lines string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "shadow")
	require.NoError(t, os.WriteFile(p, []byte(lines), 0600))
	return p
}

func stubSu(t *testing.T, fn func(ctx context.Context, username, password string) (bool, error)) {
	t.Helper()
	orig := suFallback
	suFallback = fn
	t.Cleanup(func() { suFallback = orig })
}

func TestVerifyPasswordSHA512(t *testing.T) {
	hash, err := sha512_crypt.New().Generate([]byte("s3cret"), []byte("$6$abcdefgh"))
	require.NoError(t, err)
	p := writeShadow(t, "alice:"+hash+":19000:0:99999:7:::\nlocked:!:19000::::::\n")
	stubSu(t, func(context.Context, string, string) (bool, error) {
		t.Fatal("su must not be used for sha512 hashes")
		return false, nil
	})

	ctx := context.Background()
	assert.NoError(t, VerifyPassword(ctx, p, "alice", "s3cret"))
	assert.ErrorIs(t, VerifyPassword(ctx, p, "alice", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, VerifyPassword(ctx, p, "bob", "s3cret"), ErrInvalidCredentials)
	assert.ErrorIs(t, VerifyPassword(ctx, p, "locked", ""), ErrUserLocked)
}

func TestVerifyPasswordFallsBackToSu(t *testing.T) {
	p := writeShadow(t, "carol:$y$j9T$salt$hash:19000:0:99999:7:::\n")

	var called string
	stubSu(t, func(_ context.Context, username, password string) (bool, error) {
		called = username
		return password == "ok", nil
	})
	ctx := context.Background()
	assert.NoError(t, VerifyPassword(ctx, p, "carol", "ok"))
	assert.Equal(t, "carol", called)
	assert.ErrorIs(t, VerifyPassword(ctx, p, "carol", "nope"), ErrInvalidCredentials)

	stubSu(t, func(context.Context, string, string) (bool, error) {
		return false, ErrAuthBackend
	})
	err := VerifyPassword(ctx, p, "carol", "ok")
	assert.ErrorIs(t, err, ErrAuthBackend)
	assert.Equal(t, "System authentication is unavailable.", HumanAuthError(err))
}

func TestVerifyPasswordMissingShadow(t *testing.T) {
	err := VerifyPassword(context.Background(), filepath.Join(t.TempDir(), "none"), "x", "y")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHumanAuthError(t *testing.T) {
	assert.Equal(t, "", HumanAuthError(nil))
	assert.Equal(t, "Invalid username or password.", HumanAuthError(ErrInvalidCredentials))
	assert.Equal(t, "This account is locked.", HumanAuthError(ErrUserLocked))
	assert.Contains(t, HumanAuthError(errors.New("boom")), "boom")
}
