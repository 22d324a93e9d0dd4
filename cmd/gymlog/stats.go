// ABOUTME: CLI commands for the statistics dashboard.
// ABOUTME: Frequency, cardio/stretch windows, monthly averages, progression.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/hsouza/gymlog/internal/metrics"
	"github.com/spf13/cobra"
)

var (
	statsYear int
	statsDays int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics over the session history",
	Long: `Derive dashboard statistics from the full session history. Every
command recomputes from the stored records, so the numbers always reflect
the latest saved state.

COMMANDS:

  frequency   Sessions per calendar month of a year
  cardio      Cardio minutes per workout over a sliding window
  stretch     Stretch seconds per workout over a sliding window
  months      Average cardio minutes per calendar month
  evolution   Weight progression ranking and cardio first/last comparison`,
}

var statsFrequencyCmd = &cobra.Command{
	Use:   "frequency",
	Short: "Sessions per month of a year",
	RunE: func(cmd *cobra.Command, args []string) error {
		year := statsYear
		if year == 0 {
			year = time.Now().Year()
		}

		sessions, err := db.ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		counts := metrics.YearlyFrequency(sessions, year)
		total := 0
		fmt.Printf("%s\n\n", color.New(color.Bold).Sprintf("Sessions in %d", year))
		for i, n := range counts {
			fmt.Printf("  %s %3d\n", time.Month(i+1).String()[:3], n)
			total += n
		}
		fmt.Printf("\n  total %d, avg %.1f/month over active months\n",
			total, metrics.MonthlyAverageFrequency(sessions))
		return nil
	},
}

var statsCardioCmd = &cobra.Command{
	Use:   "cardio",
	Short: "Cardio minutes per workout over the last N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := db.ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		workoutNames, err := workoutNamesByID()
		if err != nil {
			return err
		}

		now := time.Now()
		totals := metrics.CardioMinutesPerWorkout(sessions, statsDays, now)
		averages := metrics.AvgCardioMinutesPerWorkout(sessions, statsDays, now)
		if len(totals) == 0 {
			fmt.Printf("No cardio recorded in the last %d days.\n", statsDays)
			return nil
		}

		fmt.Printf("%s\n\n", color.New(color.Bold).Sprintf("Cardio, last %d days", statsDays))
		for i, t := range totals {
			fmt.Printf("  %s %6.1f min total, %5.1f min/session\n",
				padRight(truncate(workoutNames[t.WorkoutID], 30), 30),
				t.TotalMinutes, averages[i].AvgMinutes)
		}
		return nil
	},
}

var statsStretchCmd = &cobra.Command{
	Use:   "stretch",
	Short: "Stretch seconds per workout over the last N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := db.ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		workoutNames, err := workoutNamesByID()
		if err != nil {
			return err
		}

		now := time.Now()
		totals := metrics.StretchSecondsPerWorkout(sessions, statsDays, now)
		averages := metrics.AvgStretchSecondsPerWorkout(sessions, statsDays, now)
		if len(totals) == 0 {
			fmt.Printf("No stretching recorded in the last %d days.\n", statsDays)
			return nil
		}

		fmt.Printf("%s\n\n", color.New(color.Bold).Sprintf("Stretching, last %d days", statsDays))
		for i, t := range totals {
			fmt.Printf("  %s %6.0f s total, %5.0f s/session\n",
				padRight(truncate(workoutNames[t.WorkoutID], 30), 30),
				t.TotalSeconds, averages[i].AvgSeconds)
		}
		return nil
	},
}

var statsMonthsCmd = &cobra.Command{
	Use:   "months",
	Short: "Average cardio minutes per calendar month",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := db.ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		months := metrics.AvgCardioMinutesPerMonth(sessions)
		if len(months) == 0 {
			fmt.Println("No cardio recorded yet.")
			return nil
		}

		fmt.Printf("%s\n\n", color.New(color.Bold).Sprint("Cardio per month"))
		for _, m := range months {
			fmt.Printf("  %s %6.1f min/session\n", m.Month, m.AvgMinutes)
		}
		return nil
	},
}

var statsEvolutionCmd = &cobra.Command{
	Use:   "evolution",
	Short: "Weight and cardio progression",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := db.ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		weights := metrics.WeightEvolution(sessions)
		fmt.Printf("%s\n\n", color.New(color.Bold).Sprint("Weight evolution (3rd set)"))
		if len(weights) == 0 {
			fmt.Println("  Not enough data: an exercise needs two recorded third sets.")
		} else {
			for _, w := range weights {
				fmt.Printf("  %s %5.1f → %5.1f kg (last %5.1f) %+.1f%%\n",
					padRight(truncate(w.ExerciseName, 30), 30),
					w.MinWeight, w.MaxWeight, w.LastWeight, w.Improvement)
			}
		}

		fmt.Printf("\n%s\n\n", color.New(color.Bold).Sprint("Cardio evolution"))
		progress := metrics.CardioEvolution(sessions)
		if progress == nil {
			fmt.Println("  Not enough cardio data.")
			return nil
		}
		fmt.Printf("  first month %5.1f min/session\n", progress.InitialAvg)
		fmt.Printf("  last month  %5.1f min/session\n", progress.CurrentAvg)
		fmt.Printf("  change      %+.1f%%\n", progress.Improvement)
		return nil
	},
}

func init() {
	statsFrequencyCmd.Flags().IntVar(&statsYear, "year", 0, "calendar year (default current)")
	statsCardioCmd.Flags().IntVar(&statsDays, "days", 30, "window in days")
	statsStretchCmd.Flags().IntVar(&statsDays, "days", 30, "window in days")

	statsCmd.AddCommand(statsFrequencyCmd)
	statsCmd.AddCommand(statsCardioCmd)
	statsCmd.AddCommand(statsStretchCmd)
	statsCmd.AddCommand(statsMonthsCmd)
	statsCmd.AddCommand(statsEvolutionCmd)
	rootCmd.AddCommand(statsCmd)
}
