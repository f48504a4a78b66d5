package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExchange(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/token":
			require.NoError(t, r.ParseForm())
			require.Equal(t, "code-1", r.PostForm.Get("code"))
			require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			w.Write([]byte(`{"access_token":"ya29.x","token_type":"Bearer","expires_in":3600}`))
		case "/userinfo":
			require.Equal(t, "Bearer ya29.x", r.Header.Get("Authorization"))
			w.Write([]byte(`{"id":"g-1","email":"ana@gmail.com","name":"Ana","picture":"https://p/x.jpg"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	g := NewGoogleClient("cid", "secret", "http://localhost/cb").
		WithEndpoints(srv.URL+"/token", srv.URL+"/userinfo")
	defer g.Close()

	info, err := g.Exchange(context.Background(), "code-1")
	require.NoError(t, err)
	require.Equal(t, "g-1", info.ID)
	require.Equal(t, "ana@gmail.com", info.Email)
}

func TestExchangeBadCode(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	g := NewGoogleClient("cid", "secret", "http://localhost/cb").
		WithEndpoints(srv.URL+"/token", srv.URL+"/userinfo")
	defer g.Close()

	_, err := g.Exchange(context.Background(), "stale-code")
	require.ErrorContains(t, err, "token exchange")
}

func TestExchangeNoEmail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/token" {
			w.Write([]byte(`{"access_token":"t","token_type":"Bearer"}`))
			return
		}
		w.Write([]byte(`{"id":"g-1","name":"NoMail"}`))
	}))
	defer srv.Close()

	g := NewGoogleClient("cid", "secret", "").
		WithEndpoints(srv.URL+"/token", srv.URL+"/userinfo")
	defer g.Close()

	_, err := g.Exchange(context.Background(), "code")
	require.ErrorContains(t, err, "no email")
}
