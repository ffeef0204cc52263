package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT(Config{Secret: "secret", TTL: time.Hour})
	u := uuid.New()

	token, exp, err := j.Issue(u)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	got, err := j.Verify(token)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT(Config{Secret: "secret", TTL: time.Hour})

	_, err := j.Verify("not-a-token")
	require.ErrorIs(t, err, ErrTokenMalformed)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT(Config{Secret: "secret", TTL: time.Hour})
	j.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := j.Issue(uuid.New())
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, _, err := NewJWT(Config{Secret: "one", TTL: time.Hour}).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT(Config{Secret: "two", TTL: time.Hour}).Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWT_BadSubject(t *testing.T) {
	j := NewJWT(Config{Secret: "secret", TTL: time.Hour})
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.Verify(token)
	require.ErrorIs(t, err, ErrTokenSubject)
}

func TestUserIDContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	require.False(t, ok)

	u := uuid.New()
	got, ok := UserIDFromContext(SetUserID(context.Background(), u))
	require.True(t, ok)
	require.Equal(t, u, got)
}
