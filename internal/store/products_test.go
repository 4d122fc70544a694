package store

import (
	"context"
	"testing"

	"farm2market_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductAddGeneratesIDAndDate(t *testing.T) {
	s := NewProductStore(NewKV(newFakeClient()))
	ctx := context.Background()

	created, err := s.Add(ctx, models.Product{
		Name: "Tomato", Price: 3.99, Unit: "kg", Category: "Vegetables", FarmerID: "f1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	got, err := s.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, *got)
}

func TestProductByIDNotFound(t *testing.T) {
	s := NewProductStore(NewKV(newFakeClient()))

	_, err := s.ByID(context.Background(), "inexistant")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductsByFarmer(t *testing.T) {
	s := NewProductStore(NewKV(newFakeClient()))
	ctx := context.Background()

	_, err := s.Add(ctx, models.Product{Name: "Tomato", Price: 3.99, Unit: "kg", FarmerID: "f1"})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.Product{Name: "Rice", Price: 60, Unit: "kg", FarmerID: "f2"})
	require.NoError(t, err)

	mine, err := s.ByFarmer(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Tomato", mine[0].Name)
}

func TestProductSetImage(t *testing.T) {
	s := NewProductStore(NewKV(newFakeClient()))
	ctx := context.Background()

	created, err := s.Add(ctx, models.Product{Name: "Tomato", Price: 3.99, Unit: "kg"})
	require.NoError(t, err)

	updated, err := s.SetImage(ctx, created.ID, "http://minio/product-images/x.png")
	require.NoError(t, err)
	assert.Equal(t, "http://minio/product-images/x.png", updated.ImageURL)

	_, err = s.SetImage(ctx, "inexistant", "url")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

// stock omis : champ optionnel, pas de valeur implicite
func TestProductStockIsOptional(t *testing.T) {
	s := NewProductStore(NewKV(newFakeClient()))
	ctx := context.Background()

	created, err := s.Add(ctx, models.Product{Name: "Tomato", Price: 3.99, Unit: "kg"})
	require.NoError(t, err)

	got, err := s.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Stock)
}
