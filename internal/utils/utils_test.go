package utils

import (
	"strings"
	"testing"

	"farm2market_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farm2market_back_end/internal/config"
)

func TestGenerateJWTCarriesSessionClaims(t *testing.T) {
	session := models.Session{ID: "u1", Name: "Asha", Email: "a@x.com", Role: models.RoleBuyer}

	tokenString, err := GenerateJWT(session)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return config.JWTSecret(), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, models.RoleBuyer, claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestGenerateUpiQR(t *testing.T) {
	qr, err := GenerateUpiQR("farm2market@upi", "Farm2Market", "#ORD-abc123", 500)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
}

func TestOrderConfirmationHTML(t *testing.T) {
	order := models.Order{
		ID:            "#ORD-abc123",
		CustomerName:  "Asha",
		Date:          "2026-08-31",
		Subtotal:      450,
		DeliveryFee:   50,
		Total:         500,
		PaymentStatus: models.PaymentPending,
		PaymentMethod: "cod",
		Address:       "123 Main St",
		Items: []models.CartItem{
			{ID: "1", Name: "Tomato", Price: 150, Unit: "kg", Quantity: 3},
		},
	}

	html := GenerateOrderConfirmationHTML(order)
	assert.Contains(t, html, "#ORD-abc123")
	assert.Contains(t, html, "Tomato")
	assert.Contains(t, html, "₹500.00")
	assert.Contains(t, html, "123 Main St")
}

func TestEmailDisabledWithoutSMTPConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_USERNAME", "")
	assert.False(t, EmailEnabled())

	t.Setenv("SMTP_HOST", "smtp.exemple.in")
	t.Setenv("SMTP_USERNAME", "noreply")
	assert.True(t, EmailEnabled())
}
