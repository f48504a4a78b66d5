package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserType classifies an account on the platform.
type UserType string

const (
	UserTypeTutor     UserType = "tutor"     // regular pet owner
	UserTypeVet       UserType = "vet"       // veterinary professional
	UserTypeShelter   UserType = "shelter"   // shelter / NGO account
	UserTypeVolunteer UserType = "volunteer" // volunteer helper
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeTutor, UserTypeVet, UserTypeShelter, UserTypeVolunteer:
		return true
	}
	return false
}

type User struct {
	ID           bson.ObjectID `json:"id"           bson:"_id,omitempty"`
	Username     string        `json:"username"     bson:"username"`
	Name         string        `json:"name"         bson:"name"`
	Email        string        `json:"email"        bson:"email"`
	PasswordHash string        `json:"-"            bson:"password_hash,omitempty"`
	UserType     UserType      `json:"userType"     bson:"user_type"`
	Bio          string        `json:"bio,omitempty"  bson:"bio,omitempty"`
	City         string        `json:"city,omitempty" bson:"city,omitempty"`
	ProfileImage string        `json:"profileImage,omitempty" bson:"profile_image,omitempty"`
	GoogleID     string        `json:"-"            bson:"google_id,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"    bson:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt"    bson:"updated_at"`
}
