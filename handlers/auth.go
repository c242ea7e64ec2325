package handlers

import (
	"net/http"

	"github.com/velaug24it-bit/serviceswebiste/middleware"
	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/services/user"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, login and session endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(service user.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// RegisterCustomerHandler handles POST /api/register/customer.
func (h *UserHandler) RegisterCustomerHandler(c *gin.Context) {
	var req models.CustomerRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := h.Service.RegisterCustomer(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"user":    u,
	})
}

// RegisterProviderHandler handles POST /api/register/provider.
func (h *UserHandler) RegisterProviderHandler(c *gin.Context) {
	var req models.ProviderRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	prov, u, err := h.Service.RegisterProvider(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Provider account created successfully",
		"provider": prov,
		"user":     u,
	})
}

// LoginHandler handles POST /api/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	auth, err := h.Service.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Login successful",
		"user":      auth.User,
		"token":     auth.Token,
		"expiresAt": auth.ExpiresAt,
	})
}

// LogoutHandler handles POST /api/logout. Logging out without a session succeeds.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	token := c.GetString(middleware.TokenKey)
	if err := h.Service.Logout(c.Request.Context(), token); err != nil {
		utils.GetLogger().Error("Failed to revoke session", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// CurrentUserHandler handles GET /api/user/current.
func (h *UserHandler) CurrentUserHandler(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	u, err := h.Service.GetCurrentUser(claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}
