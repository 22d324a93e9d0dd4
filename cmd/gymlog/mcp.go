// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hsouza/gymlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your workout data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "gymlog": {
        "command": "gymlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_workout       Create a workout template
  update_workout    Rename or re-describe a template
  add_exercise      Append an exercise to a template
  list_workouts     List all templates
  get_workout       Get a template with its exercises
  delete_workout    Delete a template and its sessions
  log_session       Record a completed session
  list_sessions     List recorded sessions
  delete_session    Delete a session
  exercise_hints    Last/average values for an exercise
  yearly_frequency  Sessions per month of a year
  cardio_stats      Cardio minutes per workout and month
  progress_report   Weight and cardio progression

AVAILABLE RESOURCES:

  gymlog://workouts    All workout templates
  gymlog://recent      Last 10 sessions
  gymlog://dashboard   Dashboard statistics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(db)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
