package store

import (
	"context"
	"time"

	"farm2market_back_end/internal/models"

	"github.com/google/uuid"
)

const productsKey = "products"

// ProductStore gère les listings publiés par les fermiers (clé `products`)
type ProductStore struct {
	kv      *KV
	nowFunc func() time.Time
}

func NewProductStore(kv *KV) *ProductStore {
	return &ProductStore{kv: kv, nowFunc: time.Now}
}

// List renvoie tous les listings, vide si absent ou illisible
func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if _, err := s.kv.GetJSON(ctx, productsKey, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Add publie un listing ; identifiant et date de création sont générés ici
func (s *ProductStore) Add(ctx context.Context, p models.Product) (models.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == "" {
		p.CreatedAt = s.nowFunc().Format("2006-01-02")
	}

	products, err := s.List(ctx)
	if err != nil {
		return models.Product{}, err
	}
	products = append(products, p)
	if err := s.kv.SetJSON(ctx, productsKey, products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// ByID retrouve un listing ; ErrProductNotFound si absent
func (s *ProductStore) ByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// ByFarmer renvoie les listings d'un fermier
func (s *ProductStore) ByFarmer(ctx context.Context, farmerID string) ([]models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := []models.Product{}
	for _, p := range products {
		if p.FarmerID == farmerID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

// SetImage rattache l'URL d'image (MinIO) à un listing existant
func (s *ProductStore) SetImage(ctx context.Context, id, url string) (*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].ImageURL = url
		if err := s.kv.SetJSON(ctx, productsKey, products); err != nil {
			return nil, err
		}
		return &products[i], nil
	}
	return nil, ErrProductNotFound
}
