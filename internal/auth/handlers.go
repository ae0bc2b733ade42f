package auth

import (
	"net/http"

	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Authenticator logs users in with local credentials
type Authenticator interface {
	Login(req *LoginRequest) (*LoginResponse, error)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service Authenticator
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service Authenticator) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange username and password for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Successfully authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Failure 403 {object} map[string]interface{} "User account is inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		switch {
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.FromGinContext(c).WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	logger.FromGinContext(c).WithField("username", resp.Profile.Username).Info("user logged in")
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/auth/me
// @Summary Current user
// @Description Return the claims of the presented bearer token
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthClaims "Token claims"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, claims)
}
