package store

import (
	"context"

	"farm2market_back_end/internal/models"
)

const cartPrefix = "cart:"

// Événements publiés sur le canal `cart:<userID>` pour la sync temps réel
const (
	CartEventUpdated = "updated"
	CartEventCleared = "cleared"
)

// CartStore gère le panier de chaque acheteur : un blob JSON par utilisateur,
// au plus une ligne par produit.
type CartStore struct {
	kv *KV
}

func NewCartStore(kv *KV) *CartStore {
	return &CartStore{kv: kv}
}

// CartKey est la clé (et le canal pub/sub) du panier d'un utilisateur
func CartKey(userID string) string {
	return cartPrefix + userID
}

// Get renvoie le panier, vide si absent ou illisible
func (s *CartStore) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if _, err := s.kv.GetJSON(ctx, CartKey(userID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add ajoute un produit au panier. Si le produit y figure déjà,
// sa quantité est incrémentée de 1 ; sinon une ligne à quantité 1 est créée.
func (s *CartStore) Add(ctx context.Context, userID string, p models.Product) ([]models.CartItem, error) {
	items, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.ItemFromProduct(p))
	}

	if err := s.save(ctx, userID, items, CartEventUpdated); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity fixe la quantité d'une ligne (pas de cumul).
// quantity <= 0 équivaut à un retrait. Identifiant inconnu : no-op silencieux.
func (s *CartStore) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) ([]models.CartItem, error) {
	if quantity <= 0 {
		return s.Remove(ctx, userID, productID)
	}

	items, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			break
		}
	}

	if err := s.save(ctx, userID, items, CartEventUpdated); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove retire la ligne du produit. Idempotent.
func (s *CartStore) Remove(ctx context.Context, userID, productID string) ([]models.CartItem, error) {
	items, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}

	if err := s.save(ctx, userID, kept, CartEventUpdated); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear vide le panier inconditionnellement (fin de checkout)
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	return s.save(ctx, userID, []models.CartItem{}, CartEventCleared)
}

func (s *CartStore) save(ctx context.Context, userID string, items []models.CartItem, event string) error {
	if err := s.kv.SetJSON(ctx, CartKey(userID), items); err != nil {
		return err
	}
	s.kv.Publish(ctx, CartKey(userID), event)
	return nil
}
