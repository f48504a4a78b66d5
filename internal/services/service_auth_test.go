package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestMint(t *testing.T) {
	t.Parallel()

	s := &AuthService{JWTSecret: "test-secret"}
	tok, err := s.Mint("64f1c0ffee0000000000aaaa")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(tok, &jwt.RegisteredClaims{}, func(tk *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(*jwt.RegisteredClaims)
	require.Equal(t, "64f1c0ffee0000000000aaaa", claims.Subject)
	require.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestMintWrongSecretRejected(t *testing.T) {
	t.Parallel()

	s := &AuthService{JWTSecret: "secret-a"}
	tok, err := s.Mint("64f1c0ffee0000000000aaaa")
	require.NoError(t, err)

	_, err = jwt.Parse(tok, func(tk *jwt.Token) (any, error) {
		return []byte("secret-b"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.Error(t, err)
}
