// ABOUTME: Tests for the calorie estimator.
// ABOUTME: Weighted sets and cardio minutes count; stretches do not.
package metrics

import (
	"testing"

	"github.com/hsouza/gymlog/internal/models"
)

func TestEstimateCalories(t *testing.T) {
	entries := models.Entries{
		models.WeightEntry{ExerciseName: "Bench", Sets: models.SetTriple{models.Float(20), models.Float(22), nil}},
		models.CardioEntry{ExerciseName: "Bike", Minutes: models.Float(15)},
	}
	// 2 sets x 6 + 15 min x 6
	if got := EstimateCalories(entries); got != 102 {
		t.Errorf("EstimateCalories = %d, want 102", got)
	}
}

func TestEstimateCaloriesStretchIgnored(t *testing.T) {
	entries := models.Entries{
		models.StretchEntry{ExerciseName: "Hamstring", Seconds: models.Float(90)},
	}
	if got := EstimateCalories(entries); got != 0 {
		t.Errorf("Stretch-only entries should estimate 0, got %d", got)
	}
}

func TestEstimateCaloriesAbsentValues(t *testing.T) {
	entries := models.Entries{
		models.WeightEntry{ExerciseName: "Bench", Sets: models.SetTriple{}},
		models.CardioEntry{ExerciseName: "Bike", Minutes: nil},
	}
	if got := EstimateCalories(entries); got != 0 {
		t.Errorf("All-absent entries should estimate 0, got %d", got)
	}
}

func TestEstimateCaloriesEmpty(t *testing.T) {
	if got := EstimateCalories(nil); got != 0 {
		t.Errorf("Empty entries should estimate 0, got %d", got)
	}
}
