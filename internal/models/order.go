package models

// Statuts de commande, dans l'ordre de progression.
// Les transitions sont déclenchées manuellement (dashboard fermier)
// et ne vont que vers l'avant : pas de retour, pas d'annulation.
const (
	StatusPlaced         = "Placed"
	StatusProcessing     = "Processing"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
)

// Statuts de paiement
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

var statusRank = map[string]int{
	StatusPlaced:         0,
	StatusProcessing:     1,
	StatusShipped:        2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// ValidStatus indique si le statut fait partie de la machine à états
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvance vérifie qu'une transition est strictement vers l'avant
func CanAdvance(from, to string) bool {
	f, okF := statusRank[from]
	t, okT := statusRank[to]
	return okF && okT && t > f
}

// Order est une entrée du journal de commandes (clé Redis `orders`).
// Items est un instantané du panier au moment du checkout : immuable ensuite,
// seuls Status et PaymentStatus évoluent.
type Order struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customerId,omitempty"`
	CustomerName  string     `json:"customerName"`
	Date          string     `json:"date"`
	Subtotal      float64    `json:"subtotal"`
	DeliveryFee   float64    `json:"deliveryFee"`
	Total         float64    `json:"total"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	StripeID      string     `json:"stripeId,omitempty"`
	Items         []CartItem `json:"items"`
	Address       string     `json:"address"`
}
