package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/imnexerio/i2step-backend/internal/domain/error"
	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/dto"
	tokenauth "github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/auth"
)

// AuthHandler handles login and identity endpoints
type AuthHandler struct {
	authService usecase.AuthUseCase
	tokens      *tokenauth.TokenManager
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService usecase.AuthUseCase, tokens *tokenauth.TokenManager, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		logger:      logger,
	}
}

// Login handles the POST /login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Message: "Invalid username or password!",
		})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if domainerr.IsStoreError(err) {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Message: "Invalid username or password!",
		})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("Failed to issue access token", map[string]any{
			"username": user.Username,
			"error":    err.Error(),
		})
		respondError(c, domainerr.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		Name:        user.Name,
		Username:    user.Username,
		Role:        string(user.Role),
	})
}

// Logout handles the GET /logout endpoint. Tokens are stateless, so this is
// an acknowledgement; the client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Logged out successfully!",
	})
}

// Username handles the GET /username endpoint, echoing the caller's claims
func (h *AuthHandler) Username(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.IdentityResponse{
		Username: identity.Username,
		Role:     string(identity.Role),
	})
}
