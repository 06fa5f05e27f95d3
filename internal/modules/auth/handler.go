package auth

import (
	"errors"
	"net/http"
	"strings"

	"filevault/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
	r.DELETE("/logout", h.Logout)
}

// Login exchanges a Basic Authorization header for a session token.
func (h *Handler) Login(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Basic ") {
		response.Unauthorized(c)
		return
	}

	token, err := h.service.Login(c.Request.Context(), strings.TrimPrefix(header, "Basic "))
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.ServerError(c, "Error signing in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout destroys the session named by the X-Token header.
func (h *Handler) Logout(c *gin.Context) {
	err := h.service.Logout(c.Request.Context(), c.GetHeader("X-Token"))
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			response.Unauthorized(c)
			return
		}
		response.ServerError(c, "Error signing out")
		return
	}

	c.Status(http.StatusNoContent)
}
