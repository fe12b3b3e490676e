// Package delivery serves the AI insight endpoint that turns task data into
// Biscuit's messages through the configured text generator.
package delivery

import (
	"log"
	"net/http"
	"strings"
	"time"

	insightdomain "hypotrophy-backend/internal/insight/domain"
	"hypotrophy-backend/internal/insight/dto"
	"hypotrophy-backend/pkg/ai"
	"hypotrophy-backend/pkg/config"
	"hypotrophy-backend/pkg/prompt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const relevantTaskLimit = 3

// ProxyHandler handles GET/POST /api/ai/insights
type ProxyHandler struct {
	generator ai.Generator
	keyLength int
	appEnv    string
	envKeys   func() int
	now       func() time.Time
}

// NewProxyHandler creates the handler. While the generator is nil or reports
// itself unconfigured, every POST answers 500 with diagnostics.
func NewProxyHandler(generator ai.Generator, cfg *config.Config) *ProxyHandler {
	return &ProxyHandler{
		generator: generator,
		keyLength: len(cfg.GeminiApiKey),
		appEnv:    cfg.AppEnv,
		envKeys:   config.GeminiEnvKeys,
		now:       time.Now,
	}
}

// Health reports whether the generator is configured
// GET /api/ai/insights
func (h *ProxyHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"apiConfigured": ai.IsConfigured(h.generator),
		"envKeysFound":  h.envKeys(),
		"keyLength":     h.keyLength,
		"nodeEnv":       h.appEnv,
		"timestamp":     h.now().UTC().Format(time.RFC3339Nano),
	})
}

// Generate dispatches on the request type
// POST /api/ai/insights
func (h *ProxyHandler) Generate(c *gin.Context) {
	if !ai.IsConfigured(h.generator) {
		log.Printf("[AIProxy] No AI provider configured (GEMINI env keys found: %d, env: %s)", h.envKeys(), h.appEnv)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "AI service not configured. Please check environment variables.",
			"debug": gin.H{
				"nodeEnv":         h.appEnv,
				"geminiKeysFound": h.envKeys(),
			},
		})
		return
	}

	var req dto.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	switch req.Type {
	case dto.RequestTypeProgress:
		h.progress(c, req)
	case dto.RequestTypeTask:
		h.task(c, req)
	case dto.RequestTypeSuggestions:
		h.suggestions(c, req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request type"})
	}
}

func (h *ProxyHandler) progress(c *gin.Context, req dto.InsightRequest) {
	text, ok := h.generate(c, prompt.Progress(req.Tasks))
	if !ok {
		return
	}

	ids := []string{}
	for i, t := range req.Tasks {
		if i == relevantTaskLimit {
			break
		}
		ids = append(ids, t.ID)
	}

	c.JSON(http.StatusOK, insightdomain.Insight{
		ID:            uuid.New().String(),
		Type:          insightdomain.InsightTypeEncouragement,
		Title:         "Progress Analysis",
		Content:       text,
		CreatedAt:     h.now(),
		RelevantTasks: ids,
	})
}

func (h *ProxyHandler) task(c *gin.Context, req dto.InsightRequest) {
	if req.Task == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task is required for type task"})
		return
	}

	text, ok := h.generate(c, prompt.Task(*req.Task, req.UserHistory))
	if !ok {
		return
	}

	category := string(req.Task.Category)
	c.JSON(http.StatusOK, insightdomain.Insight{
		ID:            uuid.New().String(),
		Type:          insightdomain.InsightTypeSuggestion,
		Title:         "Task Added Successfully",
		Content:       text,
		Category:      &category,
		CreatedAt:     h.now(),
		RelevantTasks: []string{req.Task.ID},
	})
}

func (h *ProxyHandler) suggestions(c *gin.Context, req dto.InsightRequest) {
	if strings.TrimSpace(req.Category) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required for type suggestions"})
		return
	}

	text, ok := h.generate(c, prompt.Suggestions(req.Category, req.UserHistory))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionsResponse{Suggestions: prompt.ParseSuggestions(text)})
}

// generate writes the 500 response itself and reports false on failure
func (h *ProxyHandler) generate(c *gin.Context, p string) (string, bool) {
	text, err := h.generator.Generate(c.Request.Context(), p)
	if err != nil {
		log.Printf("[AIProxy] Generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to generate AI insight",
			"details":   err.Error(),
			"timestamp": h.now().UTC().Format(time.RFC3339Nano),
		})
		return "", false
	}
	return strings.TrimSpace(text), true
}
