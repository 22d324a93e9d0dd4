// ABOUTME: Root Cobra command for gymlog CLI.
// ABOUTME: Handles store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/hsouza/gymlog/internal/config"
	"github.com/hsouza/gymlog/internal/store"
	"github.com/spf13/cobra"
)

var (
	db      *store.Store
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "gymlog",
	Short: "Personal workout tracker",
	Long: `Gymlog tracks workout templates, timed sessions, and per-exercise
measurements, and derives hints and statistics from your full history.

EXERCISE TYPES:

  PESO          weighted sets (up to three set weights per session)
  ALONGAMENTO   timed stretch (seconds)
  AEROBICO      timed cardio (minutes)

QUICK START:

  $ gymlog workout add "Upper body"                      # Create a template
  $ gymlog workout exercise add <id> "Bench press" --type PESO
  $ gymlog session log <id> --entries entries.json       # Log a session
  $ gymlog hints "bench press"                           # Last/average values
  $ gymlog stats frequency --year 2026                   # Monthly counts

HINTS & STATISTICS:

  Exercises are matched across sessions by trimmed, lower-cased name, so
  "Bench Press" and " bench press " are the same exercise everywhere.

  $ gymlog hints "bench press" --workout <id>   # Scoped to one template
  $ gymlog stats cardio --days 30               # Cardio minutes per workout
  $ gymlog stats evolution                      # Weight and cardio progression

MCP INTEGRATION:

  Run 'gymlog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "gymlog": { "command": "gymlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Records live in a local key-value database at ~/.local/share/gymlog/db.
  Set data_dir in ~/.config/gymlog/config.json to relocate it, or pass
  --data-dir for a one-off override.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		db, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
}
