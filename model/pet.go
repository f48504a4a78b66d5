package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PetStatus is mutually exclusive: a listing is lost, found, or up for
// adoption, never more than one at a time.
type PetStatus string

const (
	PetLost     PetStatus = "lost"
	PetFound    PetStatus = "found"
	PetAdoption PetStatus = "adoption"
	PetResolved PetStatus = "resolved" // reunited or adopted, hidden from listings
)

func (s PetStatus) Valid() bool {
	switch s {
	case PetLost, PetFound, PetAdoption, PetResolved:
		return true
	}
	return false
}

type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

type Pet struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	UserID      bson.ObjectID `json:"userId"      bson:"user_id"`
	Name        string        `json:"name"        bson:"name"`
	Species     string        `json:"species"     bson:"species"`
	Breed       string        `json:"breed,omitempty" bson:"breed,omitempty"`
	Status      PetStatus     `json:"status"      bson:"status"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	City        string        `json:"city,omitempty"        bson:"city,omitempty"`
	Location    *GeoPoint     `json:"location,omitempty"    bson:"location,omitempty"`
	PhotoURLs   []string      `json:"photoUrls"   bson:"photo_urls"`
	Contact     string        `json:"contact,omitempty" bson:"contact,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updated_at"`
}
