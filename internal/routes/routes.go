package routes

import (
	"farm2market_back_end/internal/handlers"
	"farm2market_back_end/internal/middleware"
	"farm2market_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/health", h.Health)

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)
	auth.POST("/logout", middleware.AuthRequired(), h.Logout)
	auth.GET("/me", middleware.AuthRequired(), h.Me)
	auth.PUT("/profile", middleware.AuthRequired(), h.UpdateProfile)

	// Panier (acheteurs)
	cart := api.Group("/cart", middleware.AuthRequired(), middleware.RequireRole(models.RoleBuyer))
	cart.GET("", h.GetCart)
	cart.POST("", h.AddToCart)
	cart.PUT("/:id", h.UpdateCartItem)
	cart.DELETE("/:id", h.RemoveCartItem)
	cart.DELETE("", h.ClearCart)
	cart.GET("/ws", h.CartWS)

	// Checkout
	api.POST("/checkout", middleware.AuthRequired(), middleware.RequireRole(models.RoleBuyer), h.Checkout)

	// Commandes
	orders := api.Group("/orders", middleware.AuthRequired())
	orders.GET("", middleware.RequireRole(models.RoleFarmer), h.GetOrders)
	orders.GET("/my", middleware.RequireRole(models.RoleBuyer), h.GetMyOrders)
	orders.PATCH("/:id/status", middleware.RequireRole(models.RoleFarmer), h.AdvanceOrderStatus)
	orders.PATCH("/:id/paid", middleware.RequireRole(models.RoleFarmer), h.MarkOrderPaid)
	orders.GET("/:id/invoice", h.OrderInvoice)

	// Produits
	products := api.Group("/products")
	products.GET("", h.ListProducts)
	products.GET("/search", h.SearchProducts)
	products.POST("", middleware.AuthRequired(), middleware.RequireRole(models.RoleFarmer), h.CreateProduct)
	products.GET("/mine", middleware.AuthRequired(), middleware.RequireRole(models.RoleFarmer), h.MyProducts)
	products.POST("/:id/image", middleware.AuthRequired(), middleware.RequireRole(models.RoleFarmer), h.UploadProductImage)
}
