package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequestRoleTag(t *testing.T) {
	v := New()

	req := SignupRequest{Name: "Asha", Email: "a@x.com", Password: "secret", Role: "buyer"}
	require.NoError(t, v.Struct(req))

	req.Role = "farmer"
	require.NoError(t, v.Struct(req))

	req.Role = "admin"
	assert.Error(t, v.Struct(req))

	req.Role = "buyer"
	req.Email = "pas-un-email"
	assert.Error(t, v.Struct(req))
}

func TestProfileRequestNeedsAtLeastOneField(t *testing.T) {
	v := New()

	assert.Error(t, v.Struct(ProfileRequest{}))

	name := "Asha"
	require.NoError(t, v.Struct(ProfileRequest{Name: &name}))

	bad := "pas-un-email"
	assert.Error(t, v.Struct(ProfileRequest{Email: &bad}))
}

func TestCheckoutRequestPaymentMethods(t *testing.T) {
	v := New()

	for _, m := range []string{"cod", "card", "upi"} {
		require.NoError(t, v.Struct(CheckoutRequest{Address: "123 Main St", PaymentMethod: m}), m)
	}

	assert.Error(t, v.Struct(CheckoutRequest{Address: "123 Main St", PaymentMethod: "chèque"}))
	assert.Error(t, v.Struct(CheckoutRequest{PaymentMethod: "cod"})) // adresse obligatoire
}

func TestCreateProductRequest(t *testing.T) {
	v := New()

	req := CreateProductRequest{Name: "Tomato", Category: "Vegetables", Price: 3.99, Unit: "kg"}
	require.NoError(t, v.Struct(req))

	req.Price = 0
	assert.Error(t, v.Struct(req))

	req.Price = 3.99
	neg := -1
	req.Stock = &neg
	assert.Error(t, v.Struct(req))
}
