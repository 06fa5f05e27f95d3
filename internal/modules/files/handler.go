package files

import (
	"errors"
	"net/http"
	"strconv"

	"filevault/internal/middleware"
	"filevault/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the owner-scoped file routes. All of them require
// an authenticated caller; the group's middleware takes care of that.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/files", h.Upload)
	r.GET("/files", h.List)
	r.GET("/files/:id", h.Get)
	r.PUT("/files/:id/publish", h.Publish)
	r.PUT("/files/:id/unpublish", h.Unpublish)
}

// RegisterContentRoute registers the content read route, which allows
// anonymous callers so public files stay readable without a token.
func (h *Handler) RegisterContentRoute(r *gin.RouterGroup) {
	r.GET("/files/:id/data", h.GetContent)
}

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

func (h *Handler) Upload(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		response.Unauthorized(c)
		return
	}

	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.service.Upload(c.Request.Context(), userID, UploadRequest{
		Name:     req.Name,
		Kind:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName):
			response.Error(c, http.StatusBadRequest, "Missing name")
		case errors.Is(err, ErrMissingType):
			response.Error(c, http.StatusBadRequest, "Missing type")
		case errors.Is(err, ErrMissingData):
			response.Error(c, http.StatusBadRequest, "Missing data")
		case errors.Is(err, ErrInvalidData):
			response.Error(c, http.StatusBadRequest, "Invalid data")
		case errors.Is(err, ErrParentNotFound):
			response.Error(c, http.StatusBadRequest, "Parent not found")
		case errors.Is(err, ErrParentNotFolder):
			response.Error(c, http.StatusBadRequest, "Parent is not a folder")
		default:
			response.ServerError(c, "Error uploading file")
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *Handler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		response.Unauthorized(c)
		return
	}

	view, err := h.service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.ServerError(c, "Error retrieving file")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *Handler) List(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		response.Unauthorized(c)
		return
	}

	// A non-numeric or negative page reads as page 0.
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	views, err := h.service.List(c.Request.Context(), userID, c.Query("parentId"), page)
	if err != nil {
		response.ServerError(c, "Error retrieving files")
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *Handler) Publish(c *gin.Context) {
	h.setVisibility(c, true)
}

func (h *Handler) Unpublish(c *gin.Context) {
	h.setVisibility(c, false)
}

func (h *Handler) setVisibility(c *gin.Context, isPublic bool) {
	userID := middleware.UserID(c)
	if userID == "" {
		response.Unauthorized(c)
		return
	}

	view, err := h.service.SetVisibility(c.Request.Context(), userID, c.Param("id"), isPublic)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.ServerError(c, "Error updating file")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *Handler) GetContent(c *gin.Context) {
	// Anonymous callers are fine here; UserID is empty for them.
	data, mimeType, err := h.service.GetContent(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrIsFolder):
			response.Error(c, http.StatusBadRequest, "A folder doesn't have content")
		case errors.Is(err, ErrFileNotFound):
			response.Error(c, http.StatusNotFound, "Not found")
		default:
			response.ServerError(c, "Error retrieving file content")
		}
		return
	}

	c.Data(http.StatusOK, mimeType, data)
}
