package utils

import (
	"time"

	"farm2market_back_end/internal/config"
	"farm2market_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signe un token de session (24h) pour l'utilisateur connecté
func GenerateJWT(session models.Session) (string, error) {
	claims := jwt.MapClaims{
		"user_id": session.ID,
		"email":   session.Email,
		"name":    session.Name,
		"role":    session.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
