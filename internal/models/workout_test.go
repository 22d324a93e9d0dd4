// ABOUTME: Tests for the Workout model and its builders.
// ABOUTME: Verifies constructor defaults and exercise list handling.
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWorkoutDefaults(t *testing.T) {
	w := NewWorkout("Upper body")

	if w.ID == "" {
		t.Error("Expected generated ID")
	}
	if w.Name != "Upper body" {
		t.Errorf("Name mismatch: got %q", w.Name)
	}
	if w.Exercises == nil || len(w.Exercises) != 0 {
		t.Errorf("Expected empty exercise list, got %v", w.Exercises)
	}
	if w.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestWorkoutAddAndFindExercise(t *testing.T) {
	w := NewWorkout("Legs").
		AddExercise(WorkoutExercise{Name: "Squat", Type: ExerciseWeight}).
		AddExercise(WorkoutExercise{Name: "Treadmill", Type: ExerciseCardio})

	if len(w.Exercises) != 2 {
		t.Fatalf("Expected 2 exercises, got %d", len(w.Exercises))
	}
	if ex := w.FindExercise("Squat"); ex == nil || ex.Type != ExerciseWeight {
		t.Errorf("FindExercise(Squat) = %v", ex)
	}
	if ex := w.FindExercise("Deadlift"); ex != nil {
		t.Errorf("Expected nil for missing exercise, got %v", ex)
	}
}

func TestWorkoutEmptyExercisesMarshalsAsArray(t *testing.T) {
	data, err := json.Marshal(NewWorkout("Core"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"exercises":[]`) {
		t.Errorf("Expected exercises to serialize as [], got: %s", data)
	}
}
