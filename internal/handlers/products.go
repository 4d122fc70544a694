package handlers

import (
	"net/http"
	"strings"

	"farm2market_back_end/internal/models"
	"farm2market_back_end/internal/services"
	"farm2market_back_end/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /api/products — tous les listings (marché acheteur)
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// POST /api/products — publication d'un listing par un fermier
func (h *Handler) CreateProduct(c *gin.Context) {
	var input validation.CreateProductRequest
	if err := validation.BindAndValidate(c, &input, h.Validate); err != nil {
		return
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       models.Price(input.Price),
		Unit:        input.Unit,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		FarmerID:    c.GetString("user_id"),
		FarmerName:  c.GetString("name"),
	}

	created, err := h.Products.Add(c.Request.Context(), product)
	if err != nil {
		storeError(c, err)
		return
	}

	go services.IndexProduct(created)

	c.JSON(http.StatusCreated, gin.H{"product": created})
}

// GET /api/products/mine — listings du fermier connecté
func (h *Handler) MyProducts(c *gin.Context) {
	products, err := h.Products.ByFarmer(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /api/products/search?q= — Elasticsearch, filtre local en mode dégradé
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre q manquant"})
		return
	}

	if services.SearchEnabled() {
		products, err := services.SearchProducts(c.Request.Context(), query)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"products": products})
			return
		}
		// Elastic en vrac : on retombe sur le filtre local
	}

	all, err := h.Products.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}

	needle := strings.ToLower(query)
	matches := []models.Product{}
	for _, p := range all {
		haystack := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
		if strings.Contains(haystack, needle) {
			matches = append(matches, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"products": matches})
}

// POST /api/products/:id/image — photo du listing, stockée dans MinIO
func (h *Handler) UploadProductImage(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.Products.ByID(c.Request.Context(), productID)
	if err != nil {
		storeError(c, err)
		return
	}
	if product.FarmerID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Listing d'un autre fermier"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier image manquant"})
		return
	}

	url, err := services.UploadProductImage(c.Request.Context(), productID, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image"})
		return
	}

	updated, err := h.Products.SetImage(c.Request.Context(), productID, url)
	if err != nil {
		storeError(c, err)
		return
	}

	go services.IndexProduct(*updated)

	c.JSON(http.StatusOK, gin.H{"product": updated})
}
