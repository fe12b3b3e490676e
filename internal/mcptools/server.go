package mcptools

import (
	insightusecase "hypotrophy-backend/internal/insight/usecase"
	taskusecase "hypotrophy-backend/internal/task/usecase"

	"github.com/mark3labs/mcp-go/server"
)

// Version is reported to MCP clients during initialisation.
const Version = "0.1.0"

// NewServer creates the MCP server with every tool registered.
func NewServer(tasks taskusecase.TaskUsecase, insights insightusecase.InsightUsecase) *server.MCPServer {
	s := server.NewMCPServer(
		"hypotrophy",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	addTask := NewAddTaskTool(tasks)
	s.AddTool(addTask.Definition(), addTask.Handle)

	listTasks := NewListTasksTool(tasks)
	s.AddTool(listTasks.Definition(), listTasks.Handle)

	progress := NewProgressInsightTool(insights)
	s.AddTool(progress.Definition(), progress.Handle)

	suggest := NewSuggestTasksTool(insights)
	s.AddTool(suggest.Definition(), suggest.Handle)

	return s
}

const instructions = `You have access to Hypotrophy, the user's personal growth tracker, and Biscuit, their hamster companion.

Use add_task when the user mentions something they want to do. Use list_tasks to see what they are working on.
Use progress_insight when they ask how they are doing, and suggest_tasks when they want ideas for a life area.
Relay Biscuit's messages as they are; they are written to be read by the user directly.`
