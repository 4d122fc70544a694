package store

import (
	"context"

	"farm2market_back_end/internal/models"

	"github.com/google/uuid"
)

const ordersKey = "orders"

// OrderStore gère le journal de commandes : append-only, jamais de suppression.
// Seuls le statut et le statut de paiement d'une commande évoluent,
// l'instantané des articles reste figé.
type OrderStore struct {
	kv *KV
}

func NewOrderStore(kv *KV) *OrderStore {
	return &OrderStore{kv: kv}
}

// NewOrderID génère une référence de commande affichable, unique
func NewOrderID() string {
	return "#ORD-" + uuid.NewString()[:8]
}

// All renvoie le journal complet, vide si absent ou illisible
func (s *OrderStore) All(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if _, err := s.kv.GetJSON(ctx, ordersKey, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Add ajoute la commande en fin de journal et renvoie le journal mis à jour
func (s *OrderStore) Add(ctx context.Context, order models.Order) ([]models.Order, error) {
	orders, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := s.kv.SetJSON(ctx, ordersKey, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ByCustomer filtre par nom affiché, comparaison exacte sensible à la casse.
// Conservé pour compatibilité : deux clientes homonymes verraient les
// commandes l'une de l'autre, préférer ByUser.
func (s *OrderStore) ByCustomer(ctx context.Context, name string) ([]models.Order, error) {
	orders, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	mine := []models.Order{}
	for _, o := range orders {
		if o.CustomerName == name {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

// ByUser filtre par identifiant client, la jointure fiable
func (s *OrderStore) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	mine := []models.Order{}
	for _, o := range orders {
		if o.CustomerID == userID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

// ByID retrouve une commande ; ErrOrderNotFound si absente
func (s *OrderStore) ByID(ctx context.Context, orderID string) (*models.Order, error) {
	orders, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// AdvanceStatus fait progresser le statut, strictement vers l'avant :
// Placed → Processing → Shipped → Out for Delivery → Delivered.
func (s *OrderStore) AdvanceStatus(ctx context.Context, orderID, to string) (*models.Order, error) {
	if !models.ValidStatus(to) {
		return nil, ErrBadTransition
	}

	orders, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if !models.CanAdvance(orders[i].Status, to) {
			return nil, ErrBadTransition
		}
		orders[i].Status = to
		if err := s.kv.SetJSON(ctx, ordersKey, orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, ErrOrderNotFound
}

// MarkPaid passe le paiement de Pending à Paid (encaissement à la livraison)
func (s *OrderStore) MarkPaid(ctx context.Context, orderID string) (*models.Order, error) {
	orders, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		orders[i].PaymentStatus = models.PaymentPaid
		if err := s.kv.SetJSON(ctx, ordersKey, orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, ErrOrderNotFound
}
