package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdvanceForwardOnly(t *testing.T) {
	assert.True(t, CanAdvance(StatusPlaced, StatusProcessing))
	assert.True(t, CanAdvance(StatusProcessing, StatusOutForDelivery)) // sauter une étape est permis
	assert.True(t, CanAdvance(StatusShipped, StatusDelivered))

	assert.False(t, CanAdvance(StatusShipped, StatusShipped))
	assert.False(t, CanAdvance(StatusDelivered, StatusPlaced))
	assert.False(t, CanAdvance(StatusProcessing, "Annulée"))
	assert.False(t, CanAdvance("", StatusShipped))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPlaced, StatusProcessing, StatusShipped, StatusOutForDelivery, StatusDelivered} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Refund"))
}

func TestSessionFromStripsPassword(t *testing.T) {
	u := User{ID: "u1", Name: "Asha", Email: "a@x.com", Password: "secret", Role: RoleBuyer, JoinDate: "2026-08-31"}
	s := SessionFrom(u)
	assert.Equal(t, Session{ID: "u1", Name: "Asha", Email: "a@x.com", Role: RoleBuyer, JoinDate: "2026-08-31"}, s)
}

func TestProfilePatchAppliesOnlySetFields(t *testing.T) {
	u := User{ID: "u1", Name: "Asha", Email: "a@x.com", Password: "secret"}
	name := "Asha Patel"
	ProfilePatch{Name: &name}.Apply(&u)

	assert.Equal(t, "Asha Patel", u.Name)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, "secret", u.Password)
}

func TestCartSubtotal(t *testing.T) {
	items := []CartItem{
		{ID: "1", Price: 3, Quantity: 100},
		{ID: "2", Price: 75.5, Quantity: 2},
	}
	assert.InDelta(t, 451, CartSubtotal(items), 0.001)
	assert.Zero(t, CartSubtotal(nil))
}
