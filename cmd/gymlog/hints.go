// ABOUTME: CLI command for last/average exercise hints.
// ABOUTME: Shows the values the app prefills while logging a session.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hsouza/gymlog/internal/metrics"
	"github.com/spf13/cobra"
)

var hintsWorkoutID string

var hintsCmd = &cobra.Command{
	Use:   "hints <exercise-name>",
	Short: "Show last and average values for an exercise",
	Long: `Show the last recorded and historical average values for an exercise,
across every session in the history. Matching is by trimmed, lower-cased
name, so "Bench Press" and "bench press" are the same exercise.

With --workout, also shows the set triple from the most recent session of
that specific template.

Examples:
  gymlog hints "bench press"
  gymlog hints "treadmill"
  gymlog hints "bench press" --workout abc123`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		sessions, err := db.ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s\n\n", color.New(color.Bold).Sprint(name))

		lastSets := metrics.GlobalLastBySet(sessions, name)
		avgSets := metrics.GlobalAveragesBySet(sessions, name)
		fmt.Printf("  %s\n", faint.Sprint("weight (kg per set)"))
		fmt.Printf("    last  %s\n", formatSets(lastSets))
		fmt.Printf("    avg   %s\n", formatSets(avgSets))

		if hintsWorkoutID != "" {
			w, err := findWorkout(hintsWorkoutID)
			if err != nil {
				return err
			}
			scoped := metrics.LastSameWorkoutSets(sessions, w.ID, name)
			fmt.Printf("    last in %q  %s\n", w.Name, formatSets(scoped))
		}

		fmt.Printf("  %s\n", faint.Sprint("stretch (seconds)"))
		fmt.Printf("    last  %s\n", formatOptional(metrics.GlobalLastSeconds(sessions, name)))
		fmt.Printf("    avg   %s\n", formatOptional(metrics.GlobalAvgSeconds(sessions, name)))

		fmt.Printf("  %s\n", faint.Sprint("cardio (minutes)"))
		fmt.Printf("    last  %s\n", formatOptional(metrics.GlobalLastMinutes(sessions, name)))
		fmt.Printf("    avg   %s\n", formatOptional(metrics.GlobalAvgMinutes(sessions, name)))

		return nil
	},
}

func init() {
	hintsCmd.Flags().StringVarP(&hintsWorkoutID, "workout", "w", "", "scope the last-sets hint to one workout template")
	rootCmd.AddCommand(hintsCmd)
}
