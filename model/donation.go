package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type DonationCategory string

const (
	DonationFood        DonationCategory = "food"
	DonationMedicine    DonationCategory = "medicine"
	DonationAccessories DonationCategory = "accessories"
	DonationHygiene     DonationCategory = "hygiene"
	DonationToys        DonationCategory = "toys"
)

func (c DonationCategory) Valid() bool {
	switch c {
	case DonationFood, DonationMedicine, DonationAccessories, DonationHygiene, DonationToys:
		return true
	}
	return false
}

type DonationCondition string

const (
	ConditionNew      DonationCondition = "new"
	ConditionUsedGood DonationCondition = "used_good"
	ConditionUsedFair DonationCondition = "used_fair"
)

func (c DonationCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsedGood, ConditionUsedFair:
		return true
	}
	return false
}

type DonationItem struct {
	ID          bson.ObjectID     `json:"id"          bson:"_id,omitempty"`
	UserID      bson.ObjectID     `json:"userId"      bson:"user_id"`
	Title       string            `json:"title"       bson:"title"`
	Description string            `json:"description,omitempty" bson:"description,omitempty"`
	Category    DonationCategory  `json:"category"    bson:"category"`
	Condition   DonationCondition `json:"condition"   bson:"condition"`
	City        string            `json:"city,omitempty" bson:"city,omitempty"`
	PhotoURLs   []string          `json:"photoUrls"   bson:"photo_urls"`
	CreatedAt   time.Time         `json:"createdAt"   bson:"created_at"`
}
