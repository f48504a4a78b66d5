package yaopets

import (
	"context"
	"net/url"
)

func (c *Client) ListDonations(ctx context.Context, category, city string) (Collection[DonationItem], error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if city != "" {
		q.Set("city", city)
	}
	body, err := c.get(ctx, "/donations", q)
	if err != nil {
		return Collection[DonationItem]{}, err
	}
	return decodeCollection[DonationItem](body, "donations")
}

type CreateDonationRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	City        string   `json:"city,omitempty"`
	PhotoURLs   []string `json:"photoUrls,omitempty"`
}

func (c *Client) CreateDonation(ctx context.Context, req CreateDonationRequest) (*DonationItem, error) {
	body, err := c.post(ctx, "/donations", req)
	if err != nil {
		return nil, err
	}
	return decodeRecord[DonationItem](body)
}

// CreatePaymentIntent starts a money donation; the returned client secret
// finishes the flow directly with the payment provider.
func (c *Client) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error) {
	body, err := c.post(ctx, "/payments/intent", map[string]any{
		"amount":   amount,
		"currency": currency,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[PaymentIntent](body)
}
