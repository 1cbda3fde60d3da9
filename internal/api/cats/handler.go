// Package cats exposes the catalog CRUD and listing endpoints.
package cats

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zahira986-id/Cat-Galery/internal/model"
	"github.com/zahira986-id/Cat-Galery/internal/service"
)

// Handler serves the /cats and /tags routes
type Handler struct {
	catalog *service.Catalog
}

// NewHandler constructs a Handler backed by the catalog service
func NewHandler(catalog *service.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List handles GET /cats with optional page, limit, search and tag
// query parameters. Invalid page/limit values fall back to defaults.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.catalog.List(c.Request.Context(), page, limit, c.Query("search"), c.Query("tag"))
	if err != nil {
		zap.L().Error("listing query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB query error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetByID handles GET /cats/:id, answering an array of zero or one
// records. A missing id is not an error.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cat, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("get cat failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB query error"})
		return
	}

	if cat == nil {
		c.JSON(http.StatusOK, []model.Cat{})
		return
	}
	c.JSON(http.StatusOK, []model.Cat{*cat})
}

// Create handles POST /cats
func (h *Handler) Create(c *gin.Context) {
	var in model.CatInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.catalog.Create(c.Request.Context(), in)
	if err != nil {
		zap.L().Error("create cat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query error"})
		return
	}

	c.JSON(http.StatusOK, cat)
}

// Update handles PUT /cats/:id, replacing all four mutable fields.
// A missing id succeeds with zero rows affected.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in model.CatInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.catalog.Update(c.Request.Context(), id, in)
	if err != nil {
		zap.L().Error("update cat failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query error"})
		return
	}

	affected := int64(0)
	if updated {
		affected = 1
	}
	c.JSON(http.StatusOK, gin.H{"affectedRows": affected})
}

// Delete handles DELETE /cats/:id; deleting a missing id is a no-op
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		zap.L().Error("delete cat failed", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": " query error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Record Num :%d deleted successfully", id)})
}

// Tags handles GET /tags
func (h *Handler) Tags(c *gin.Context) {
	tags, err := h.catalog.Tags(c.Request.Context())
	if err != nil {
		zap.L().Error("list tags failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB query error"})
		return
	}

	c.JSON(http.StatusOK, tags)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
