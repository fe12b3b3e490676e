// hypotrophy-mcp exposes the task tracker to MCP clients over stdio.
//
// Usage:
//
//	hypotrophy-mcp serve      # Start MCP server (stdio transport)
//	hypotrophy-mcp version
//
// Insights are requested from the HTTP API at INSIGHTS_API_URL and fall back
// to local messages when it is not running.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"hypotrophy-backend/internal/app"
	"hypotrophy-backend/internal/mcptools"
	"hypotrophy-backend/pkg/config"
	"hypotrophy-backend/pkg/insightclient"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--version", "-v", "version":
		fmt.Printf("hypotrophy-mcp v%s\n", mcptools.Version)
	case "--help", "-h", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	repos := app.OpenRepositories(cfg)
	client := insightclient.NewClient(cfg.InsightsAPIURL, &http.Client{Timeout: 20 * time.Second})

	services := app.NewServices(repos, client, cfg.InsightWorkers)
	services.Worker.Start()
	defer services.Worker.Stop()

	return server.ServeStdio(mcptools.NewServer(services.Tasks, services.Insights))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `hypotrophy-mcp v%s

Usage:
  hypotrophy-mcp serve    Start the MCP server (stdio transport)

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "hypotrophy": {
        "command": "hypotrophy-mcp",
        "args": ["serve"]
      }
    }
  }
`, mcptools.Version)
}
