package handlers

import (
	"net/http"

	"farm2market_back_end/internal/models"
	"farm2market_back_end/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := h.Cart.Get(c.Request.Context(), userID)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
		"total": models.CartSubtotal(items),
	})
}

//
// 🟢 POST /api/cart
//
func (h *Handler) AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input validation.AddToCartRequest
	if err := validation.BindAndValidate(c, &input, h.Validate); err != nil {
		return
	}

	product, err := h.Products.ByID(c.Request.Context(), input.ProductID)
	if err != nil {
		storeError(c, err)
		return
	}

	items, err := h.Cart.Add(c.Request.Context(), userID, *product)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PUT /api/cart/:id — fixe la quantité ; <= 0 retire la ligne
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("id")

	var input validation.UpdateQuantityRequest
	if err := validation.BindAndValidate(c, &input, h.Validate); err != nil {
		return
	}

	items, err := h.Cart.UpdateQuantity(c.Request.Context(), userID, productID, input.Quantity)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DELETE /api/cart/:id
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := h.Cart.Remove(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DELETE /api/cart
func (h *Handler) ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.Cart.Clear(c.Request.Context(), userID); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
}
