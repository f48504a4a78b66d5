package dto

import "yaopets-backend/model"

type CreateDonationReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	City        string   `json:"city"`
	PhotoURLs   []string `json:"photoUrls"`
}

type ListDonationsResp struct {
	Donations  []model.DonationItem `json:"donations"`
	Pagination Pagination           `json:"pagination"`
}

type PaymentIntentReq struct {
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
}

type PaymentIntentResp struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
}
