// ABOUTME: CLI commands for logging and browsing workout sessions.
// ABOUTME: Entries arrive as plain JSON data, mirroring the UI boundary.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/hsouza/gymlog/internal/metrics"
	"github.com/hsouza/gymlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	sessionEntries string
	sessionStarted string
	sessionEnded   string
	sessionLimit   int
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Log and browse workout sessions",
	Long: `Record completed workout sessions and browse the history.

A session is logged once, atomically, with one entry per exercise. Entries
are supplied as a JSON array matching the stored format:

  [
    {"exerciseName": "Bench press", "type": "PESO", "sets": [60, 62.5, null]},
    {"exerciseName": "Hamstring stretch", "type": "ALONGAMENTO", "seconds": 45},
    {"exerciseName": "Treadmill", "type": "AEROBICO", "minutes": 20}
  ]

A calorie estimate is computed from the entries and stamped on the session
at save time.

COMMANDS:

  log     Record a session against a workout template
  list    List recorded sessions, most recent first
  show    View a session's entries and calories
  delete  Remove a single session`,
}

var sessionLogCmd = &cobra.Command{
	Use:   "log <workout-id>",
	Short: "Record a completed session",
	Long: `Record a completed session against a workout template.

Entries are read from the file given with --entries, or from stdin when
the value is "-".

Examples:
  gymlog session log abc123 --entries entries.json
  cat entries.json | gymlog session log abc123 --entries -
  gymlog session log abc123 --entries entries.json --started "2026-08-29 07:00"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		entries, err := readEntries(sessionEntries)
		if err != nil {
			return err
		}

		startedAt := time.Now()
		if sessionStarted != "" {
			startedAt, err = parseTime(sessionStarted)
			if err != nil {
				return fmt.Errorf("invalid started timestamp: %s", sessionStarted)
			}
		}
		endedAt := startedAt
		if sessionEnded != "" {
			endedAt, err = parseTime(sessionEnded)
			if err != nil {
				return fmt.Errorf("invalid ended timestamp: %s", sessionEnded)
			}
		}

		// Same estimator the store applies at save time
		estimate := metrics.EstimateCalories(entries)
		fmt.Printf("Estimated calories: %d kcal\n", estimate)

		sess, err := db.CreateSession(*models.NewSession(w.ID, startedAt, endedAt, entries))
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		color.Green("✓ Logged session for %q", w.Name)
		fmt.Printf("  %s %d entries, %d kcal\n",
			color.New(color.Faint).Sprint(sess.ID[:8]),
			len(sess.Entries), *sess.Calories)
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := db.ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		workoutNames, err := workoutNamesByID()
		if err != nil {
			return err
		}

		shown := 0
		faint := color.New(color.Faint)
		for _, s := range sortSessionsDesc(sessions) {
			if sessionLimit > 0 && shown >= sessionLimit {
				break
			}
			kcal := 0
			if s.Calories != nil {
				kcal = *s.Calories
			}
			fmt.Printf("%s %s %s %d kcal\n",
				faint.Sprint(s.ID[:8]),
				faint.Sprint(s.StartedAt.Format("2006-01-02 15:04")),
				padRight(truncate(workoutNames[s.WorkoutID], 30), 30),
				kcal)
			shown++
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a session's entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := db.GetSession(args[0])
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}
		if s == nil {
			return fmt.Errorf("session not found: %s", args[0])
		}

		workoutNames, err := workoutNamesByID()
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(workoutNames[s.WorkoutID]), faint.Sprint(s.ID))
		fmt.Printf("  %s → %s\n",
			s.StartedAt.Format("2006-01-02 15:04"),
			s.EndedAt.Format("15:04"))
		if s.Calories != nil {
			fmt.Printf("  %d kcal\n", *s.Calories)
		}
		fmt.Println()

		for _, e := range s.Entries {
			switch v := e.(type) {
			case models.WeightEntry:
				fmt.Printf("  %s  sets %s\n", padRight(v.ExerciseName, 30), formatSets(v.Sets))
			case models.StretchEntry:
				fmt.Printf("  %s  %s s\n", padRight(v.ExerciseName, 30), formatOptional(v.Seconds))
			case models.CardioEntry:
				fmt.Printf("  %s  %s min\n", padRight(v.ExerciseName, 30), formatOptional(v.Minutes))
			}
		}
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deleted, err := db.DeleteSession(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		if !deleted {
			return fmt.Errorf("session not found: %s", args[0])
		}

		color.Green("✓ Deleted session %s", args[0])
		return nil
	},
}

// readEntries loads the entry list from a file, or from stdin for "-".
func readEntries(path string) (models.Entries, error) {
	if path == "" {
		return nil, fmt.Errorf("--entries is required (file path or - for stdin)")
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	var entries models.Entries
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse entries: %w", err)
	}
	return entries, nil
}

func workoutNamesByID() (map[string]string, error) {
	workouts, err := db.ListWorkouts()
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	names := make(map[string]string, len(workouts))
	for _, w := range workouts {
		names[w.ID] = w.Name
	}
	return names, nil
}

func sortSessionsDesc(sessions []models.Session) []models.Session {
	sorted := make([]models.Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.After(sorted[j].StartedAt)
	})
	return sorted
}

func formatSets(sets models.SetTriple) string {
	parts := make([]string, 3)
	for i, v := range sets {
		parts[i] = formatOptional(v)
	}
	return strings.Join(parts, " / ")
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	sessionLogCmd.Flags().StringVar(&sessionEntries, "entries", "", "path to entries JSON, or - for stdin")
	sessionLogCmd.Flags().StringVar(&sessionStarted, "started", "", "start timestamp (YYYY-MM-DD HH:MM)")
	sessionLogCmd.Flags().StringVar(&sessionEnded, "ended", "", "end timestamp (YYYY-MM-DD HH:MM)")
	_ = sessionLogCmd.MarkFlagRequired("entries")
	sessionListCmd.Flags().IntVarP(&sessionLimit, "limit", "n", 20, "max number of results")

	sessionCmd.AddCommand(sessionLogCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}
