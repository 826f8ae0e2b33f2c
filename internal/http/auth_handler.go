package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"webshop-seo/internal/service"
)

// AuthHandler exchanges the configured service API key for an access token.
type AuthHandler struct {
	logger     *zap.Logger
	jwtServ    *service.JWTService
	apiKeyHash string
}

func NewAuthHandler(logger *zap.Logger, jwtServ *service.JWTService, apiKeyHash string) *AuthHandler {
	return &AuthHandler{
		logger:     logger,
		jwtServ:    jwtServ,
		apiKeyHash: apiKeyHash,
	}
}

// IssueToken handles POST /auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req struct {
		ClientName string `json:"client_name" binding:"required"`
		APIKey     string `json:"api_key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.apiKeyHash == "" {
		h.logger.Warn("token requested but no api key configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.apiKeyHash), []byte(req.APIKey)); err != nil {
		h.logger.Warn("token request with invalid api key", zap.String("client_name", req.ClientName))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
		return
	}

	token, err := h.jwtServ.IssueAccessToken(req.ClientName)
	if err != nil {
		h.logger.Error("issue token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, token)
}
