package handlers

import (
	"log"
	"net/http"

	"farm2market_back_end/internal/models"
	"farm2market_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWS gère la synchronisation temps réel du panier.
// Chaque mutation du panier publie sur le canal Redis `cart:<userID>` ;
// on relit alors l'état courant et on le pousse au client.
func (h *Handler) CartWS(c *gin.Context) {
	userID := c.GetString("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	// S'abonner au canal Redis pour ce user
	pubsub := h.Redis.Subscribe(ctx, store.CartKey(userID))
	defer pubsub.Close()

	ch := pubsub.Channel()

	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	// détecter la fermeture côté client
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != store.CartEventUpdated && msg.Payload != store.CartEventCleared {
				continue
			}

			items, err := h.Cart.Get(ctx, userID)
			if err != nil {
				log.Printf("⚠️ Lecture panier pour websocket: %v", err)
				items = []models.CartItem{}
			}

			if err := conn.WriteJSON(gin.H{
				"type":  "cart_updated",
				"items": items,
				"count": len(items),
				"total": models.CartSubtotal(items),
			}); err != nil {
				return
			}
		}
	}
}
