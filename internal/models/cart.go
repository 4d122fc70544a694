package models

// CartItem est une ligne du panier : au plus une ligne par produit,
// la quantité porte le cumul.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Unit     string `json:"unit"`
	Quantity int    `json:"quantity"`
	ImageURL string `json:"imageUrl,omitempty"`
	Category string `json:"category,omitempty"`
}

// ItemFromProduct crée une ligne de panier à partir d'un listing, quantité 1
func ItemFromProduct(p Product) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Unit:     p.Unit,
		Quantity: 1,
		ImageURL: p.ImageURL,
		Category: p.Category,
	}
}

// CartSubtotal calcule le sous-total du panier en roupies
func CartSubtotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Price) * float64(it.Quantity)
	}
	return total
}
