package main

import (
	"log"
	"os"

	"farm2market_back_end/internal/config"
	"farm2market_back_end/internal/database"
	"farm2market_back_end/internal/handlers"
	"farm2market_back_end/internal/routes"
	"farm2market_back_end/internal/store"
	"farm2market_back_end/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️ Clé Stripe absente — paiement carte désactivé, COD uniquement")
	} else {
		log.Println("✅ Stripe initialisé")
	}

	database.ConnectDatabases()

	// Les repositories sont construits ici et injectés explicitement
	kv := store.NewKV(database.Redis)
	users := store.NewUserStore(kv, config.AuthDelay())
	cart := store.NewCartStore(kv)
	orders := store.NewOrderStore(kv)
	products := store.NewProductStore(kv)

	h := handlers.New(users, cart, orders, products, validation.New(), database.Redis)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.RegisterRoutes(r, h)

	port := config.Port()
	log.Println("🚀 Serveur Farm2Market lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Serveur arrêté:", err)
	}
}
