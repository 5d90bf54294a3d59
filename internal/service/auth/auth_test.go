package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	hash, err := svc.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, svc.VerifyPassword(hash, "s3cret-pass"))
	assert.False(t, svc.VerifyPassword(hash, "wrong"))
}

func TestIssueAndParseToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, expiresAt, err := svc.IssueToken(42, "alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := NewService("secret-a", time.Hour).IssueToken(1, "alice")
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	svc := NewService("test-secret", time.Nanosecond)
	token, _, err := svc.IssueToken(1, "alice")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	_, err := svc.ParseToken("not.a.token")
	assert.Error(t, err)
}
