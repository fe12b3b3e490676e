// Package mcptools exposes Biscuit over the Model Context Protocol.
//
// Each tool follows the same shape:
// - a struct with its usecase injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a text result
package mcptools

import (
	"fmt"
	"strings"

	taskdomain "hypotrophy-backend/internal/task/domain"

	"github.com/mark3labs/mcp-go/mcp"
)

// boolArg extracts an optional boolean argument; ok is false when it is absent.
func boolArg(req mcp.CallToolRequest, key string) (value bool, ok bool) {
	value, ok = req.GetArguments()[key].(bool)
	return value, ok
}

func categoryList() string {
	names := make([]string, len(taskdomain.Categories))
	for i, c := range taskdomain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func formatTask(t *taskdomain.Task) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s (%s, %s) id=%s", box, t.Title, t.Category, t.Priority, t.ID)
	if t.Description != nil {
		line += "\n    " + *t.Description
	}
	return line
}
