package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hustlehapa-server/config"
	"hustlehapa-server/middleware"
	"hustlehapa-server/models"
	"hustlehapa-server/store"
	"hustlehapa-server/utils"
)

// AuthHandler serves signup, login and the current-user lookup.
type AuthHandler struct {
	cfg   *config.Config
	store store.Store
}

func NewAuthHandler(cfg *config.Config, st store.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: st}
}

// SignupRequest is the signup payload
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries a signed token plus the account it belongs to
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterAuthRoutes registers all auth-related routes
func RegisterAuthRoutes(router *gin.RouterGroup, h *AuthHandler, authRequired gin.HandlerFunc) {
	router.POST("/signup", h.signup)
	router.POST("/login", h.login)
	router.GET("/me", authRequired, h.me)
}

func (h *AuthHandler) signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signup data", "details": err.Error()})
		return
	}

	role := models.UserRole(req.Role)
	if req.Role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleEmployer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be user or employer"})
		return
	}

	if _, err := h.store.UserByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		fail(c, err)
		return
	}

	token, err := utils.GenerateToken(user, h.cfg.JWT.Secret, h.cfg.JWT.ExpiryHours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login data", "details": err.Error()})
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User account is deactivated"})
		return
	}

	token, err := utils.GenerateToken(user, h.cfg.JWT.Secret, h.cfg.JWT.ExpiryHours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
