package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateIntent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "sk_test_123", user)
		require.NotEmpty(t, r.Header.Get("Idempotency-Key"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "2500", r.PostForm.Get("amount"))
		require.Equal(t, "brl", r.PostForm.Get("currency"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_x","amount":2500,"currency":"brl","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	s := NewStripeClient("sk_test_123").WithBaseURL(srv.URL)
	defer s.Close()

	pi, err := s.CreateIntent(context.Background(), 2500, "brl")
	require.NoError(t, err)
	require.Equal(t, "pi_1", pi.ID)
	require.Equal(t, "pi_1_secret_x", pi.ClientSecret)
}

func TestCreateIntentStripeError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined.","type":"card_error"}}`))
	}))
	defer srv.Close()

	s := NewStripeClient("sk_test_123").WithBaseURL(srv.URL)
	defer s.Close()

	_, err := s.CreateIntent(context.Background(), 100, "usd")
	require.ErrorContains(t, err, "card was declined")
}

func TestCreateIntentValidation(t *testing.T) {
	t.Parallel()

	s := NewStripeClient("sk_test_123")
	defer s.Close()

	_, err := s.CreateIntent(context.Background(), 0, "usd")
	require.ErrorContains(t, err, "amount must be positive")
}
