package handlers

import (
	"log"
	"math"
	"net/http"
	"time"

	"farm2market_back_end/internal/models"
	"farm2market_back_end/internal/store"
	"farm2market_back_end/internal/utils"
	"farm2market_back_end/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// Checkout transforme le panier en commande :
// instantané des articles, calcul des totaux, paiement, puis panier vidé.
func (h *Handler) Checkout(c *gin.Context) {
	var req validation.CheckoutRequest
	if err := validation.BindAndValidate(c, &req, h.Validate); err != nil {
		return
	}

	userID := c.GetString("user_id")
	customerName := c.GetString("name")
	email := c.GetString("email")

	ctx := c.Request.Context()

	// ✅ 1. Récupérer le panier
	items, err := h.Cart.Get(ctx, userID)
	if err != nil {
		storeError(c, err)
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	// ✅ 2. Calculer les totaux
	subtotal, fee, total := OrderTotals(items)

	// ✅ 3. Construire la commande
	paymentStatus := models.PaymentPaid
	if req.PaymentMethod == "cod" {
		paymentStatus = models.PaymentPending
	}

	order := models.Order{
		ID:            store.NewOrderID(),
		CustomerID:    userID,
		CustomerName:  customerName,
		Date:          time.Now().Format("2006-01-02"),
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         total,
		Status:        models.StatusProcessing,
		PaymentStatus: paymentStatus,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		Address:       req.Address,
	}

	// ✅ 4. Paiement carte via Stripe quand la clé est configurée
	var clientSecret string
	if req.PaymentMethod == "card" && stripe.Key != "" {
		params := &stripe.PaymentIntentParams{
			Amount:       stripe.Int64(int64(math.Round(total * 100))), // paise
			Currency:     stripe.String(string(stripe.CurrencyINR)),
			Description:  stripe.String("Commande " + order.ID),
			ReceiptEmail: stripe.String(email),
		}
		pi, err := paymentintent.New(params)
		if err != nil {
			log.Println("❌ Erreur création PaymentIntent:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur paiement"})
			return
		}
		order.StripeID = pi.ID
		clientSecret = pi.ClientSecret
	}

	// ✅ 5. Journaliser la commande puis vider le panier
	if _, err := h.Orders.Add(ctx, order); err != nil {
		storeError(c, err)
		return
	}
	if err := h.Cart.Clear(ctx, userID); err != nil {
		storeError(c, err)
		return
	}

	// ✅ 6. Confirmation par email, sans bloquer la réponse
	if utils.EmailEnabled() && email != "" {
		go func(o models.Order, to string) {
			html := utils.GenerateOrderConfirmationHTML(o)
			if err := utils.SendConfirmationEmail(to, "Commande "+o.ID+" confirmée 🌾", html, nil); err != nil {
				log.Println("⚠️ Envoi email confirmation:", err)
			}
		}(order, email)
	}

	log.Printf("✅ Commande %s créée pour %s (total ₹%.2f)", order.ID, customerName, total)

	resp := gin.H{"order": order}
	if clientSecret != "" {
		resp["clientSecret"] = clientSecret
	}
	c.JSON(http.StatusCreated, resp)
}
