package store

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"yaopets-backend/pkg/yaopets"
)

func TestSessionHydrate(t *testing.T) {
	t.Parallel()

	t.Run("valid persisted token", func(t *testing.T) {
		t.Parallel()

		api := &fakeAuthAPI{user: &yaopets.User{ID: "u1", Username: "ana"}}
		tokens := &memTokens{token: "persisted"}
		s := NewSession(api, tokens, zerolog.Nop())

		require.NoError(t, s.Hydrate(context.Background()))
		require.True(t, s.Authenticated())
		require.Equal(t, "ana", s.Current().Username)
		require.Equal(t, "persisted", api.token, "token installed on the client before the probe")
	})

	t.Run("no persisted token stays anonymous", func(t *testing.T) {
		t.Parallel()

		api := &fakeAuthAPI{}
		s := NewSession(api, &memTokens{}, zerolog.Nop())
		require.NoError(t, s.Hydrate(context.Background()))
		require.False(t, s.Authenticated())
	})

	t.Run("rejected token is wiped", func(t *testing.T) {
		t.Parallel()

		api := &fakeAuthAPI{err: &yaopets.APIError{Status: http.StatusUnauthorized}}
		tokens := &memTokens{token: "expired"}
		s := NewSession(api, tokens, zerolog.Nop())

		require.NoError(t, s.Hydrate(context.Background()))
		require.False(t, s.Authenticated())
		require.Empty(t, api.token)
		stored, _ := tokens.Load()
		require.Empty(t, stored, "a rejected token does not survive to the next start")
	})

	t.Run("transient failure keeps the stored token", func(t *testing.T) {
		t.Parallel()

		api := &fakeAuthAPI{err: errors.New("connection refused")}
		tokens := &memTokens{token: "maybe-fine"}
		s := NewSession(api, tokens, zerolog.Nop())

		require.Error(t, s.Hydrate(context.Background()))
		require.False(t, s.Authenticated())
		stored, _ := tokens.Load()
		require.Equal(t, "maybe-fine", stored)
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{}
	tokens := &memTokens{}
	s := NewSession(api, tokens, zerolog.Nop())

	var seen []*yaopets.User
	s.Subscribe(func(u *yaopets.User) { seen = append(seen, u) })

	s.SetSession(&yaopets.Session{
		User:        &yaopets.User{ID: "u1", Username: "ana"},
		AccessToken: "jwt-1",
	})
	require.True(t, s.Authenticated())
	require.Equal(t, "jwt-1", api.token)
	stored, _ := tokens.Load()
	require.Equal(t, "jwt-1", stored)

	s.UpdateUser(&yaopets.User{ID: "u1", Username: "ana", Bio: "dog person"})
	require.Equal(t, "dog person", s.Current().Bio)
	require.Equal(t, "jwt-1", api.token, "profile edits keep the token")

	s.Clear()
	require.False(t, s.Authenticated())
	require.Empty(t, api.token)
	stored, _ = tokens.Load()
	require.Empty(t, stored)

	require.Len(t, seen, 3)
	require.NotNil(t, seen[0])
	require.Nil(t, seen[2], "subscribers see the logout")
}
