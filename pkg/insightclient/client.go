// Package insightclient calls the AI insight endpoint and degrades to locally
// synthesised messages whenever the call fails, so callers never see an error.
package insightclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	insightdomain "hypotrophy-backend/internal/insight/domain"
	"hypotrophy-backend/internal/insight/dto"
	taskdomain "hypotrophy-backend/internal/task/domain"

	"github.com/google/uuid"
)

const insightsPath = "/api/ai/insights"

// Client is constructed once at start-up and shared by everything that needs insights.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a client for the insight endpoint served at baseURL.
// A nil httpClient means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		now:        time.Now,
	}
}

// GenerateTaskInsight reacts to a newly added task.
func (c *Client) GenerateTaskInsight(ctx context.Context, task taskdomain.Task, history []taskdomain.Task) insightdomain.Insight {
	var insight insightdomain.Insight
	err := c.post(ctx, dto.InsightRequest{
		Type:        dto.RequestTypeTask,
		Task:        &task,
		UserHistory: history,
	}, &insight)
	if err == nil {
		err = validate(insight)
	}
	if err != nil {
		log.Printf("[InsightClient] Task insight request failed: %v, using local fallback", err)
		return FallbackTaskInsight(task, history, c.now())
	}
	c.fillDefaults(&insight)
	return insight
}

// GenerateProgressInsight analyses overall progress across tasks.
func (c *Client) GenerateProgressInsight(ctx context.Context, tasks []taskdomain.Task) insightdomain.Insight {
	var insight insightdomain.Insight
	err := c.post(ctx, dto.InsightRequest{
		Type:  dto.RequestTypeProgress,
		Tasks: tasks,
	}, &insight)
	if err == nil {
		err = validate(insight)
	}
	if err != nil {
		log.Printf("[InsightClient] Progress insight request failed: %v, using local fallback", err)
		return FallbackProgressInsight(tasks, c.now())
	}
	c.fillDefaults(&insight)
	return insight
}

// GenerateTaskSuggestions returns up to three task ideas for category.
func (c *Client) GenerateTaskSuggestions(ctx context.Context, category string, history []taskdomain.Task) []string {
	var resp dto.SuggestionsResponse
	if err := c.post(ctx, dto.InsightRequest{
		Type:        dto.RequestTypeSuggestions,
		Category:    category,
		UserHistory: history,
	}, &resp); err != nil {
		log.Printf("[InsightClient] Suggestions request failed: %v, using canned suggestions", err)
		return FallbackSuggestions(category)
	}

	if len(resp.Suggestions) == 0 {
		return FallbackSuggestions(category)
	}
	return resp.Suggestions
}

func (c *Client) post(ctx context.Context, body dto.InsightRequest, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+insightsPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("insight request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("API request failed: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func validate(insight insightdomain.Insight) error {
	if strings.TrimSpace(insight.Content) == "" {
		return fmt.Errorf("insight has no content")
	}
	return nil
}

func (c *Client) fillDefaults(insight *insightdomain.Insight) {
	if insight.ID == "" {
		insight.ID = newID()
	}
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = c.now()
	}
}

func newID() string {
	return uuid.New().String()
}
