package delivery

import (
	"errors"
	"net/http"

	"hypotrophy-backend/internal/insight/dto"
	"hypotrophy-backend/internal/insight/usecase"

	"github.com/gin-gonic/gin"
)

// InsightHandler serves Biscuit's insight feed
type InsightHandler struct {
	insightUsecase usecase.InsightUsecase
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(insightUsecase usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{insightUsecase: insightUsecase}
}

// GetInsights returns the feed newest first
// GET /api/insights
func (h *InsightHandler) GetInsights(c *gin.Context) {
	insights, err := h.insightUsecase.ListInsights()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// RequestProgress asks Biscuit for a progress analysis
// POST /api/insights/progress
func (h *InsightHandler) RequestProgress(c *gin.Context) {
	insight, err := h.insightUsecase.RequestProgress(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": "Biscuit is still working on the last analysis"})
		case errors.Is(err, usecase.ErrNoTasks):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Add some tasks first"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, insight)
}

// GetSuggestions returns task ideas for a category
// GET /api/insights/suggestions?category=health
func (h *InsightHandler) GetSuggestions(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	suggestions, err := h.insightUsecase.Suggestions(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionsResponse{Suggestions: suggestions})
}
