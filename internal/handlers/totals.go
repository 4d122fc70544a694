package handlers

import "farm2market_back_end/internal/models"

// Livraison offerte au-dessus de ₹500, sinon ₹50
const (
	freeDeliveryThreshold = 500
	standardDeliveryFee   = 50
)

// DeliveryFee applique la règle de livraison sur le sous-total
func DeliveryFee(subtotal float64) float64 {
	if subtotal > freeDeliveryThreshold {
		return 0
	}
	return standardDeliveryFee
}

// OrderTotals calcule sous-total, frais de livraison et total d'un panier
func OrderTotals(items []models.CartItem) (subtotal, fee, total float64) {
	subtotal = models.CartSubtotal(items)
	fee = DeliveryFee(subtotal)
	return subtotal, fee, subtotal + fee
}
