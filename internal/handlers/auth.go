package handlers

import (
	"net/http"

	"farm2market_back_end/internal/models"
	"farm2market_back_end/internal/utils"
	"farm2market_back_end/internal/validation"

	"github.com/gin-gonic/gin"
)

// ================== AUTH LOCALE ==================

// POST /api/auth/signup
func (h *Handler) Signup(c *gin.Context) {
	var input validation.SignupRequest
	if err := validation.BindAndValidate(c, &input, h.Validate); err != nil {
		return
	}

	session, err := h.Users.SignUp(c.Request.Context(), input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		storeError(c, err)
		return
	}

	token, err := utils.GenerateJWT(*session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  session,
	})
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var input validation.LoginRequest
	if err := validation.BindAndValidate(c, &input, h.Validate); err != nil {
		return
	}

	session, err := h.Users.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		storeError(c, err)
		return
	}

	token, err := utils.GenerateJWT(*session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  session,
	})
}

// POST /api/auth/logout — idempotent, sans session c'est un no-op
func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.Users.SignOut(c.Request.Context(), userID); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// GET /api/auth/me — session persistée courante
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	session, err := h.Users.CurrentSession(c.Request.Context(), userID)
	if err != nil {
		storeError(c, err)
		return
	}
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Aucune session active"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// PUT /api/auth/profile — patch partiel, le mot de passe n'est jamais modifiable
func (h *Handler) UpdateProfile(c *gin.Context) {
	var input validation.ProfileRequest
	if err := validation.BindAndValidate(c, &input, h.Validate); err != nil {
		return
	}

	userID := c.GetString("user_id")
	patch := models.ProfilePatch{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		Phone:   input.Phone,
	}

	session, err := h.Users.UpdateProfile(c.Request.Context(), userID, patch)
	if err != nil {
		storeError(c, err)
		return
	}

	// le nom ou l'email ont pu changer, on re-signe un token à jour
	token, err := utils.GenerateJWT(*session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  session,
	})
}
