package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumValidation(t *testing.T) {
	t.Parallel()

	for _, ut := range []UserType{UserTypeTutor, UserTypeVet, UserTypeShelter, UserTypeVolunteer} {
		require.True(t, ut.Valid(), string(ut))
	}
	require.False(t, UserType("admin").Valid())
	require.False(t, UserType("").Valid())

	for _, mt := range []MediaType{MediaImage, MediaGif, MediaVideo} {
		require.True(t, mt.Valid(), string(mt))
	}
	require.False(t, MediaType("audio").Valid())

	for _, ps := range []PetStatus{PetLost, PetFound, PetAdoption, PetResolved} {
		require.True(t, ps.Valid(), string(ps))
	}
	require.False(t, PetStatus("missing").Valid())

	for _, dc := range []DonationCategory{DonationFood, DonationToys, DonationAccessories, DonationMedicine, DonationHygiene} {
		require.True(t, dc.Valid(), string(dc))
	}
	require.False(t, DonationCategory("vehicles").Valid())
}
