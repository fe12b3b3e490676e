package dto

import taskdomain "hypotrophy-backend/internal/task/domain"

// Request types accepted by POST /api/ai/insights
const (
	RequestTypeProgress    = "progress"
	RequestTypeTask        = "task"
	RequestTypeSuggestions = "suggestions"
)

// InsightRequest is the body of POST /api/ai/insights
type InsightRequest struct {
	Type        string            `json:"type" binding:"required"`
	Tasks       []taskdomain.Task `json:"tasks,omitempty"`
	Task        *taskdomain.Task  `json:"task,omitempty"`
	Category    string            `json:"category,omitempty"`
	UserHistory []taskdomain.Task `json:"userHistory,omitempty"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
