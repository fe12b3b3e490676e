package mcptools

import (
	"context"
	"fmt"
	"strings"

	taskdomain "hypotrophy-backend/internal/task/domain"
	taskusecase "hypotrophy-backend/internal/task/usecase"

	"github.com/mark3labs/mcp-go/mcp"
)

// AddTaskTool handles the add_task MCP tool.
type AddTaskTool struct {
	tasks taskusecase.TaskUsecase
}

// NewAddTaskTool creates an AddTaskTool.
func NewAddTaskTool(tasks taskusecase.TaskUsecase) *AddTaskTool {
	return &AddTaskTool{tasks: tasks}
}

// Definition returns the MCP tool definition for add_task.
func (t *AddTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription(
			"Add a task to the user's Hypotrophy list from a free-text description. "+
				"The category and priority are detected from keywords; the first sentence becomes the title.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("What the user wants to do, e.g. \"Go for a run today. Around the park\""),
		),
	)
}

// Handle processes the add_task tool call.
func (t *AddTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	task, err := t.tasks.QuickAdd(text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add task: %v", err)), nil
	}

	return mcp.NewToolResultText("Added:\n" + formatTask(task)), nil
}

// ListTasksTool handles the list_tasks MCP tool.
type ListTasksTool struct {
	tasks taskusecase.TaskUsecase
}

// NewListTasksTool creates a ListTasksTool.
func NewListTasksTool(tasks taskusecase.TaskUsecase) *ListTasksTool {
	return &ListTasksTool{tasks: tasks}
}

// Definition returns the MCP tool definition for list_tasks.
func (t *ListTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List the user's tasks, optionally filtered by category, completion or a search query."),
		mcp.WithString("category",
			mcp.Description("One of: "+categoryList()),
		),
		mcp.WithBoolean("completed",
			mcp.Description("true for finished tasks only, false for open tasks only"),
		),
		mcp.WithString("query",
			mcp.Description("Typo-tolerant search over titles and descriptions"),
		),
	)
}

// Handle processes the list_tasks tool call.
func (t *ListTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var query taskusecase.TaskQuery

	if category := req.GetString("category", ""); category != "" {
		if !taskdomain.IsCategory(category) {
			return mcp.NewToolResultError(fmt.Sprintf("unknown category %q, use one of: %s", category, categoryList())), nil
		}
		c := taskdomain.Category(category)
		query.Category = &c
	}
	if completed, ok := boolArg(req, "completed"); ok {
		query.Completed = &completed
	}
	query.Search = req.GetString("query", "")

	tasks, err := t.tasks.ListTasks(query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list tasks: %v", err)), nil
	}
	if len(tasks) == 0 {
		return mcp.NewToolResultText("No tasks found."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d tasks:\n\n", len(tasks))
	for _, task := range tasks {
		b.WriteString(formatTask(task))
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}
