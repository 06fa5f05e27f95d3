package app

import (
	"context"
	"net/http"

	"filevault/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the liveness and record-count endpoints.
type Handler struct {
	db       *gorm.DB
	sessions Pinger
	users    Counter
	files    Counter
}

func NewHandler(db *gorm.DB, sessions Pinger, users, files Counter) *Handler {
	return &Handler{db: db, sessions: sessions, users: users, files: files}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/status", h.GetStatus)
	r.GET("/stats", h.GetStats)
}

func (h *Handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	dbAlive := false
	if sqlDB, err := h.db.DB(); err == nil {
		dbAlive = sqlDB.PingContext(ctx) == nil
	}

	c.JSON(http.StatusOK, gin.H{
		"redis": h.sessions.Ping(ctx) == nil,
		"db":    dbAlive,
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	nbUsers, err := h.users.Count(ctx)
	if err != nil {
		response.ServerError(c, "Error retrieving stats")
		return
	}
	nbFiles, err := h.files.Count(ctx)
	if err != nil {
		response.ServerError(c, "Error retrieving stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": nbUsers, "files": nbFiles})
}
