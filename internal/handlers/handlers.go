package handlers

import (
	"errors"
	"net/http"

	"farm2market_back_end/internal/store"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// Handler regroupe les stores injectés au démarrage.
// Les repositories sont passés explicitement, pas de globals applicatifs.
type Handler struct {
	Users    *store.UserStore
	Cart     *store.CartStore
	Orders   *store.OrderStore
	Products *store.ProductStore
	Validate *validatorv10.Validate

	// Redis sert uniquement au pub/sub du websocket panier
	Redis *redis.Client
}

func New(users *store.UserStore, cart *store.CartStore, orders *store.OrderStore,
	products *store.ProductStore, v *validatorv10.Validate, rdb *redis.Client) *Handler {
	return &Handler{
		Users:    users,
		Cart:     cart,
		Orders:   orders,
		Products: products,
		Validate: v,
		Redis:    rdb,
	}
}

// storeError traduit une erreur de store en réponse HTTP
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidCredentials), errors.Is(err, store.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUserNotFound), errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrBadTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
	}
}
