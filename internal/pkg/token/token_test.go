package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)

	tok, err := m.Issue(42, "whiskers", "whiskers@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "whiskers", claims.Username)
	assert.Equal(t, "whiskers@example.com", claims.Email)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", -time.Minute)

	tok, err := m.Issue(1, "u", "u@example.com")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewManager("secret-a", time.Hour).Issue(1, "u", "u@example.com")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()

	_, err := NewManager("s", time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromHeader(t *testing.T) {
	t.Parallel()

	tok, err := FromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	_, err = FromHeader("")
	assert.Error(t, err)

	_, err = FromHeader("Basic abc")
	assert.Error(t, err)
}
