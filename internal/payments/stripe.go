// Package payments wraps the Stripe PaymentIntents API. Donations create an
// intent server-side and hand the client secret back to the app; everything
// after that happens between the client and Stripe.
package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"resty.dev/v3"
)

const defaultBaseURL = "https://api.stripe.com"

type StripeClient struct {
	client *resty.Client
}

func NewStripeClient(secretKey string) *StripeClient {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetBasicAuth(secretKey, "")
	return &StripeClient{client: client}
}

// WithBaseURL points the client at a different host, used by tests.
func (s *StripeClient) WithBaseURL(u string) *StripeClient {
	s.client.SetBaseURL(u)
	return s
}

func (s *StripeClient) Close() error {
	return s.client.Close()
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateIntent creates a PaymentIntent for amount in minor units. Each call
// carries a fresh idempotency key; retries are the caller's concern.
func (s *StripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if currency == "" {
		currency = "usd"
	}

	res, err := s.client.R().
		WithContext(ctx).
		SetHeader("Idempotency-Key", uuid.New().String()).
		SetFormData(map[string]string{
			"amount":   strconv.FormatInt(amount, 10),
			"currency": currency,
		}).
		SetResult(&PaymentIntent{}).
		SetError(&stripeError{}).
		Post("/v1/payment_intents")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		if se, ok := res.Error().(*stripeError); ok && se.Error.Message != "" {
			return nil, fmt.Errorf("stripe: %s", se.Error.Message)
		}
		return nil, fmt.Errorf("stripe: status %d", res.StatusCode())
	}
	return res.Result().(*PaymentIntent), nil
}
