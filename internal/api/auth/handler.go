// Package auth exposes registration, login and the session middleware.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zahira986-id/Cat-Galery/internal/model"
	"github.com/zahira986-id/Cat-Galery/internal/pkg/token"
	"github.com/zahira986-id/Cat-Galery/internal/service"
)

// Handler serves /register, /login and the protected routes
type Handler struct {
	auth    *service.Auth
	tokens  *token.Manager
	limiter service.Limiter
}

// NewHandler constructs a Handler. limiter may be nil to disable
// attempt limiting.
func NewHandler(auth *service.Auth, tokens *token.Manager, limiter service.Limiter) *Handler {
	return &Handler{auth: auth, tokens: tokens, limiter: limiter}
}

// Register handles POST /register
func (h *Handler) Register(c *gin.Context) {
	if !h.allow(c) {
		return
	}

	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
	case err != nil:
		zap.L().Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully"})
	}
}

// Login handles POST /login. Unknown email and wrong password answer
// with the identical body and status.
func (h *Handler) Login(c *gin.Context) {
	if !h.allow(c) {
		return
	}

	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	tok, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
	case err != nil:
		zap.L().Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	default:
		c.JSON(http.StatusOK, model.LoginResponse{
			Message: "login successful",
			Token:   tok,
			User:    *user,
		})
	}
}

// Middleware validates the session token and stores the claims in the
// request context.
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := token.FromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims, err := h.tokens.Verify(tok)
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			}
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// Me handles GET /api/me, echoing the authenticated identity
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, model.PublicUser{
		ID:       c.GetInt64("user_id"),
		Username: c.GetString("username"),
		Email:    c.GetString("email"),
	})
}

// allow applies the attempt limiter by client IP. Limiter failures
// (e.g. redis down) fail open so auth stays available.
func (h *Handler) allow(c *gin.Context) bool {
	if h.limiter == nil {
		return true
	}

	ok, err := h.limiter.Allow(c.Request.Context(), c.ClientIP())
	if err != nil {
		zap.L().Warn("rate limiter unavailable", zap.Error(err))
		return true
	}
	if !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts, try again later"})
		return false
	}
	return true
}
