package backup

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes export and import over HTTP
type Handler struct {
	service *Service
}

// NewHandler creates a new backup Handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Export returns the whole profile
// GET /api/export
func (h *Handler) Export(c *gin.Context) {
	doc, err := h.service.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="hypotrophy-backup.json"`)
	c.JSON(http.StatusOK, doc)
}

// Import upserts a previously exported profile
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup document: " + err.Error()})
		return
	}

	result, err := h.service.Import(&doc)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidDocument) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error(), "imported": result})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": result})
}
