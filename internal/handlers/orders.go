package handlers

import (
	"net/http"
	"os"

	"farm2market_back_end/internal/models"
	"farm2market_back_end/internal/utils"
	"farm2market_back_end/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /api/orders — journal complet (dashboard fermier).
// ?customer=<nom> filtre par nom affiché, comparaison exacte.
func (h *Handler) GetOrders(c *gin.Context) {
	ctx := c.Request.Context()

	if name := c.Query("customer"); name != "" {
		orders, err := h.Orders.ByCustomer(ctx, name)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
		return
	}

	orders, err := h.Orders.All(ctx)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GET /api/orders/my — commandes de l'acheteur connecté, jointes par identifiant
func (h *Handler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	orders, err := h.Orders.ByUser(c.Request.Context(), userID)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// PATCH /api/orders/:id/status — avance manuelle du statut (fermier)
func (h *Handler) AdvanceOrderStatus(c *gin.Context) {
	var input validation.AdvanceStatusRequest
	if err := validation.BindAndValidate(c, &input, h.Validate); err != nil {
		return
	}

	order, err := h.Orders.AdvanceStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// PATCH /api/orders/:id/paid — encaissement à la livraison (COD)
func (h *Handler) MarkOrderPaid(c *gin.Context) {
	order, err := h.Orders.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GET /api/orders/:id/invoice — facture PDF avec QR de paiement UPI
func (h *Handler) OrderInvoice(c *gin.Context) {
	order, err := h.Orders.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}

	// une commande n'est visible que par sa cliente ou par un fermier
	if c.GetString("role") != models.RoleFarmer && order.CustomerID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Commande d'un autre client"})
		return
	}

	vpa := os.Getenv("UPI_VPA")
	if vpa == "" {
		vpa = "farm2market@upi"
	}

	qr, err := utils.GenerateUpiQR(vpa, "Farm2Market", order.ID, order.Total)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR"})
		return
	}

	pdf, err := utils.RenderInvoicePDF(utils.GetFrontendInvoiceBaseURL(), order.ID, qr)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur génération facture"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="facture_`+order.ID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
