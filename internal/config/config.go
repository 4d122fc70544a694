package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Port d'écoute HTTP
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

// JWTSecret renvoie le secret de signature des tokens
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

// AuthDelay est la latence simulée du login/signup (AUTH_DELAY_MS).
// 0 par défaut : la simulation historique attendait 1 seconde.
func AuthDelay() time.Duration {
	raw := os.Getenv("AUTH_DELAY_MS")
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("⚠️ AUTH_DELAY_MS invalide (%q), délai désactivé", raw)
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
