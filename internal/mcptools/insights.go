package mcptools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	insightusecase "hypotrophy-backend/internal/insight/usecase"

	"github.com/mark3labs/mcp-go/mcp"
)

// ProgressInsightTool handles the progress_insight MCP tool.
type ProgressInsightTool struct {
	insights insightusecase.InsightUsecase
}

// NewProgressInsightTool creates a ProgressInsightTool.
func NewProgressInsightTool(insights insightusecase.InsightUsecase) *ProgressInsightTool {
	return &ProgressInsightTool{insights: insights}
}

// Definition returns the MCP tool definition for progress_insight.
func (t *ProgressInsightTool) Definition() mcp.Tool {
	return mcp.NewTool("progress_insight",
		mcp.WithDescription(
			"Ask Biscuit, the user's hamster companion, for an encouraging analysis of their overall progress. "+
				"The insight is also saved to the user's feed.",
		),
	)
}

// Handle processes the progress_insight tool call.
func (t *ProgressInsightTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	insight, err := t.insights.RequestProgress(ctx)
	switch {
	case errors.Is(err, insightusecase.ErrNoTasks):
		return mcp.NewToolResultText("There are no tasks yet. Add one with add_task first."), nil
	case errors.Is(err, insightusecase.ErrBusy):
		return mcp.NewToolResultError("Biscuit is still working on the last analysis, try again in a moment"), nil
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate insight: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", insight.Title, insight.Content)), nil
}

// SuggestTasksTool handles the suggest_tasks MCP tool.
type SuggestTasksTool struct {
	insights insightusecase.InsightUsecase
}

// NewSuggestTasksTool creates a SuggestTasksTool.
func NewSuggestTasksTool(insights insightusecase.InsightUsecase) *SuggestTasksTool {
	return &SuggestTasksTool{insights: insights}
}

// Definition returns the MCP tool definition for suggest_tasks.
func (t *SuggestTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("suggest_tasks",
		mcp.WithDescription("Get three concrete task ideas for a life area, based on the user's history there."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("One of: "+categoryList()),
		),
	)
}

// Handle processes the suggest_tasks tool call.
func (t *SuggestTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "")
	if category == "" {
		return mcp.NewToolResultError("'category' is required"), nil
	}

	suggestions, err := t.insights.Suggestions(ctx, category)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get suggestions: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ideas for %s:\n", category)
	for i, s := range suggestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return mcp.NewToolResultText(b.String()), nil
}
