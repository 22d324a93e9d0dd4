// ABOUTME: CLI commands for managing workout templates.
// ABOUTME: Supports add, list, show, rename, delete, and exercise subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hsouza/gymlog/internal/models"
	"github.com/hsouza/gymlog/internal/store"
	"github.com/spf13/cobra"
)

var (
	workoutDesc      string
	exerciseType     string
	exerciseDesc     string
	exerciseMediaURI string
	exerciseKind     string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout templates",
	Long: `Create and edit named workout templates.

A template is an ordered list of exercises; sessions are logged against it.
Deleting a template also deletes every session recorded against it.

WORKFLOW:

  1. Create a template:  gymlog workout add "Upper body"
  2. Add exercises:      gymlog workout exercise add <id> "Bench press" --type PESO
  3. Log sessions:       gymlog session log <id> --entries entries.json

COMMANDS:

  add       Create a new workout template
  list      List all templates
  show      View a template with its exercises
  rename    Change a template's name
  delete    Remove a template and its sessions
  exercise  Add or remove exercises on a template`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new workout template",
	Long: `Add a new workout template.

Examples:
  gymlog workout add "Upper body"
  gymlog workout add "Leg day" --desc "Squat focus"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("workout name must not be empty")
		}

		w, err := db.CreateWorkout(name)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}
		if workoutDesc != "" {
			desc := workoutDesc
			if _, err := db.UpdateWorkout(w.ID, store.WorkoutUpdate{Description: &desc}); err != nil {
				return fmt.Errorf("failed to set description: %w", err)
			}
		}

		color.Green("✓ Created workout %q", w.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(w.ID))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workout templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := db.ListWorkouts()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			fmt.Printf("%s %s %s (%d exercises)\n",
				faint.Sprint(w.ID[:8]),
				faint.Sprint(w.CreatedAt.Format("2006-01-02")),
				padRight(truncate(w.Name, 30), 30),
				len(w.Exercises))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout template and its exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(w.Name), faint.Sprint(w.ID))
		if w.Description != "" {
			fmt.Printf("  %s\n", w.Description)
		}
		fmt.Printf("  created %s\n", faint.Sprint(w.CreatedAt.Format("2006-01-02 15:04")))

		if len(w.Exercises) == 0 {
			fmt.Println("\nNo exercises yet.")
			return nil
		}
		fmt.Println()
		for i, ex := range w.Exercises {
			line := fmt.Sprintf("%2d. %s %s", i+1, padRight(ex.Name, 30), faint.Sprint(ex.Type))
			if ex.Description != "" {
				line += faint.Sprintf(" (%s)", truncate(ex.Description, 30))
			}
			fmt.Println(line)
		}
		return nil
	},
}

var workoutRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a workout template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[1]
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("workout name must not be empty")
		}

		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		if _, err := db.UpdateWorkout(w.ID, store.WorkoutUpdate{Name: &name}); err != nil {
			return fmt.Errorf("failed to rename workout: %w", err)
		}

		color.Green("✓ Renamed %q to %q", w.Name, name)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout template and all its sessions",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		deleted, err := db.DeleteWorkout(w.ID)
		if err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		if !deleted {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		color.Green("✓ Deleted workout %q and its sessions", w.Name)
		return nil
	},
}

var workoutExerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage exercises on a workout template",
}

var workoutExerciseAddCmd = &cobra.Command{
	Use:   "add <workout-id> <name>",
	Short: "Append an exercise to a workout template",
	Long: `Append an exercise to a workout template. The measurement type is
fixed at creation and cannot be changed later.

Examples:
  gymlog workout exercise add abc123 "Bench press" --type PESO
  gymlog workout exercise add abc123 "Hamstring stretch" --type ALONGAMENTO
  gymlog workout exercise add abc123 "Treadmill" --type AEROBICO`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exType := models.ExerciseType(exerciseType)
		if !exType.Valid() {
			return fmt.Errorf("unknown exercise type: %s\nValid types: PESO, ALONGAMENTO, AEROBICO", exerciseType)
		}

		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		ex := models.WorkoutExercise{
			Name:        args[1],
			Type:        exType,
			Description: exerciseDesc,
		}
		if exerciseMediaURI != "" {
			ex.Media = &models.Media{URI: exerciseMediaURI, Kind: exerciseKind}
		}

		exercises := append(w.Exercises, ex)
		if _, err := db.UpdateWorkout(w.ID, store.WorkoutUpdate{Exercises: exercises}); err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}

		color.Green("✓ Added %s exercise %q to %q", exerciseType, ex.Name, w.Name)
		return nil
	},
}

var workoutExerciseRemoveCmd = &cobra.Command{
	Use:     "remove <workout-id> <name>",
	Aliases: []string{"rm"},
	Short:   "Remove an exercise from a workout template",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		var exercises []models.WorkoutExercise
		removed := false
		for _, ex := range w.Exercises {
			if !removed && ex.Name == args[1] {
				removed = true
				continue
			}
			exercises = append(exercises, ex)
		}
		if !removed {
			return fmt.Errorf("exercise not found on workout: %s", args[1])
		}
		if exercises == nil {
			exercises = []models.WorkoutExercise{}
		}

		if _, err := db.UpdateWorkout(w.ID, store.WorkoutUpdate{Exercises: exercises}); err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}

		color.Green("✓ Removed %q from %q", args[1], w.Name)
		return nil
	},
}

// findWorkout resolves a full ID or unique ID prefix to a workout.
func findWorkout(idOrPrefix string) (*models.Workout, error) {
	w, err := db.GetWorkout(idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	if w != nil {
		return w, nil
	}

	workouts, err := db.ListWorkouts()
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	var matches []models.Workout
	for _, cand := range workouts {
		if strings.HasPrefix(cand.ID, idOrPrefix) {
			matches = append(matches, cand)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("workout not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous prefix %s: matches multiple workouts", idOrPrefix)
	}
	return &matches[0], nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutDesc, "desc", "", "workout description")
	workoutExerciseAddCmd.Flags().StringVarP(&exerciseType, "type", "t", "", "exercise type (PESO, ALONGAMENTO, AEROBICO)")
	workoutExerciseAddCmd.Flags().StringVar(&exerciseDesc, "desc", "", "exercise notes")
	workoutExerciseAddCmd.Flags().StringVar(&exerciseMediaURI, "media-uri", "", "attached media URI")
	workoutExerciseAddCmd.Flags().StringVar(&exerciseKind, "media-kind", "image", "attached media kind (image or video)")
	_ = workoutExerciseAddCmd.MarkFlagRequired("type")

	workoutExerciseCmd.AddCommand(workoutExerciseAddCmd)
	workoutExerciseCmd.AddCommand(workoutExerciseRemoveCmd)
	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutRenameCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	workoutCmd.AddCommand(workoutExerciseCmd)
	rootCmd.AddCommand(workoutCmd)
}
