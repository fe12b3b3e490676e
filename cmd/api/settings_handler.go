package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"hypotrophy-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

const ollamaPingTimeout = 5 * time.Second

// RuntimeSettings holds the Ollama settings that can change while the server runs.
// The AI factory reads them through BaseURL and Model on every request.
type RuntimeSettings struct {
	mu            sync.RWMutex
	ollamaBaseURL string
	ollamaModel   string
}

func NewRuntimeSettings(ollamaBaseURL, ollamaModel string) *RuntimeSettings {
	return &RuntimeSettings{ollamaBaseURL: ollamaBaseURL, ollamaModel: ollamaModel}
}

// BaseURL returns the current Ollama base URL.
func (s *RuntimeSettings) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ollamaBaseURL
}

// Model returns the current Ollama model.
func (s *RuntimeSettings) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ollamaModel
}

// Update replaces the base URL and, when model is non-empty, the model.
func (s *RuntimeSettings) Update(baseURL, model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ollamaBaseURL = baseURL
	if model != "" {
		s.ollamaModel = model
	}
}

// UpdateOllamaSettingsRequest represents the request body for updating Ollama settings
type UpdateOllamaSettingsRequest struct {
	OllamaBaseURL string `json:"ollamaBaseUrl" binding:"required"`
	OllamaModel   string `json:"ollamaModel,omitempty"`
}

type SettingsHandler struct {
	settings   *RuntimeSettings
	httpClient *http.Client
}

func NewSettingsHandler(settings *RuntimeSettings, httpClient *http.Client) *SettingsHandler {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: ollamaPingTimeout}
	}
	return &SettingsHandler{settings: settings, httpClient: httpClient}
}

// GetOllamaSettings returns current Ollama configuration
// GET /api/settings/ollama
func (h *SettingsHandler) GetOllamaSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ollamaBaseUrl": h.settings.BaseURL(),
		"ollamaModel":   h.settings.Model(),
	})
}

// UpdateOllamaSettings updates Ollama configuration at runtime
// PUT /api/settings/ollama
func (h *SettingsHandler) UpdateOllamaSettings(c *gin.Context) {
	var req UpdateOllamaSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.settings.Update(req.OllamaBaseURL, req.OllamaModel)

	c.JSON(http.StatusOK, gin.H{
		"message":       "Ollama settings updated successfully",
		"ollamaBaseUrl": h.settings.BaseURL(),
		"ollamaModel":   h.settings.Model(),
	})
}

// TestOllamaConnection tests if the Ollama server is reachable
// POST /api/settings/ollama/test
func (h *SettingsHandler) TestOllamaConnection(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollamaBaseUrl"`
	}
	// No body means test the current settings
	_ = c.ShouldBindJSON(&req)
	if req.OllamaBaseURL == "" {
		req.OllamaBaseURL = h.settings.BaseURL()
	}
	if req.OllamaBaseURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"connected": false, "error": "Ollama base URL is not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ollamaPingTimeout)
	defer cancel()

	status, err := ai.Ping(ctx, h.httpClient, req.OllamaBaseURL)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected": false,
			"error":     err.Error(),
		})
		return
	}
	if status != http.StatusOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected":  false,
			"statusCode": status,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":     true,
		"ollamaBaseUrl": req.OllamaBaseURL,
	})
}
