package yaopets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientAuthHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"u1","username":"rex"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	defer c.Close()

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth, "anonymous client must not send a bearer token")

	c.SetToken("tok-123")
	u, err := c.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Equal(t, "u1", u.ID)

	c.ClearToken()
	_, err = c.Me(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestClientErrorMapping(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"user not found"}`))
		case "/me":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"authentication required"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`boom`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	defer c.Close()

	t.Run("404 becomes IsNotFound with server message", func(t *testing.T) {
		_, err := c.GetUser(context.Background(), "missing")
		require.True(t, IsNotFound(err))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.Status)
		require.Equal(t, "user not found", apiErr.Message)
	})

	t.Run("401 becomes IsUnauthorized", func(t *testing.T) {
		_, err := c.Me(context.Background())
		require.True(t, IsUnauthorized(err))
		require.False(t, IsNotFound(err))
	})

	t.Run("non-JSON error body keeps the status", func(t *testing.T) {
		_, err := c.GetPet(context.Background(), "any")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	})
}

func TestClientLogin(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"_id":"u7","username":"ana","userType":"tutor"},"accessToken":"jwt-abc"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	defer c.Close()

	sess, err := c.Login(context.Background(), "ana@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "jwt-abc", sess.AccessToken)
	require.Equal(t, "u7", sess.User.ID)
	require.Equal(t, "tutor", sess.User.UserType)
}

func TestClientListFeed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts", r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		require.Equal(t, "cur-1", r.URL.Query().Get("cursor"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"posts":[{"_id":"p1","likesCount":3,"isLiked":true}],"pagination":{"total":57,"nextCursor":"cur-2"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	defer c.Close()

	col, err := c.ListFeed(context.Background(), 10, "cur-1")
	require.NoError(t, err)
	require.Len(t, col.Items, 1)
	require.Equal(t, int64(57), col.Total)
	require.Equal(t, "cur-2", col.NextCursor)
	require.Equal(t, "p1", col.Items[0].ID)
	require.True(t, col.Items[0].IsLiked)
}

func TestClientToggleEndpoints(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "POST /posts/p1/like":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"active":true,"count":4,"status":"liked"}`))
		case "DELETE /posts/p1/like":
			w.Write([]byte(`{"active":false,"count":3,"status":"unliked"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"post not found"}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	defer c.Close()

	res, err := c.LikePost(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, res.Active)
	require.Equal(t, int64(4), res.Count)
	require.Equal(t, "liked", res.Status)

	res, err = c.UnlikePost(context.Background(), "p1")
	require.NoError(t, err)
	require.False(t, res.Active)
	require.Equal(t, int64(3), res.Count)
}
