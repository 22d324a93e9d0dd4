// ABOUTME: Tests for the hint resolver.
// ABOUTME: Covers name normalization, per-index averages, and last-value scans.
package metrics

import (
	"testing"
	"time"

	"github.com/hsouza/gymlog/internal/models"
)

// sessionAt builds a test session started on the given day.
func sessionAt(t *testing.T, workoutID, day string, entries ...models.Entry) models.Session {
	t.Helper()
	start, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("bad test date %q: %v", day, err)
	}
	return models.Session{
		ID:        day + "-" + workoutID,
		WorkoutID: workoutID,
		StartedAt: start,
		EndedAt:   start.Add(time.Hour),
		Entries:   entries,
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bench Press", "bench press"},
		{"  bench press  ", "bench press"},
		{"SUPINO", "supino"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHintsTreatNormalizedNamesIdentically(t *testing.T) {
	sessions := []models.Session{
		sessionAt(t, "w1", "2024-01-10",
			models.WeightEntry{ExerciseName: "Bench Press", Sets: models.SetTriple{models.Float(60), nil, nil}}),
		sessionAt(t, "w1", "2024-01-17",
			models.WeightEntry{ExerciseName: "  bench press ", Sets: models.SetTriple{models.Float(62), nil, nil}}),
	}

	avg := GlobalAveragesBySet(sessions, "BENCH PRESS")
	if avg[0] == nil || *avg[0] != 61 {
		t.Errorf("Expected averaged set 1 of 61 across both spellings, got %v", avg[0])
	}
}

func TestLastSameWorkoutSets(t *testing.T) {
	sessions := []models.Session{
		sessionAt(t, "w1", "2024-01-10",
			models.WeightEntry{ExerciseName: "Squat", Sets: models.SetTriple{models.Float(80), models.Float(82), nil}}),
		sessionAt(t, "w2", "2024-01-20",
			models.WeightEntry{ExerciseName: "Squat", Sets: models.SetTriple{models.Float(90), nil, nil}}),
		sessionAt(t, "w1", "2024-01-15",
			models.WeightEntry{ExerciseName: "Squat", Sets: models.SetTriple{models.Float(85), nil, nil}}),
	}

	// Most recent w1 session wins; the newer w2 session is out of scope
	got := LastSameWorkoutSets(sessions, "w1", "squat")
	if got[0] == nil || *got[0] != 85 {
		t.Errorf("Expected set 1 = 85 from 2024-01-15 session, got %v", got[0])
	}

	empty := LastSameWorkoutSets(sessions, "w3", "squat")
	if empty != (models.SetTriple{}) {
		t.Errorf("Expected all-absent triple for unknown workout, got %v", empty)
	}
}

func TestGlobalAveragesBySetIndependentIndexes(t *testing.T) {
	// Sessions contribute only set 1; sets 2 and 3 must stay absent
	sessions := []models.Session{
		sessionAt(t, "w1", "2024-01-10",
			models.WeightEntry{ExerciseName: "Row", Sets: models.SetTriple{models.Float(40), nil, nil}}),
		sessionAt(t, "w1", "2024-01-17",
			models.WeightEntry{ExerciseName: "Row", Sets: models.SetTriple{models.Float(44), nil, nil}}),
	}

	avg := GlobalAveragesBySet(sessions, "row")
	if avg[0] == nil || *avg[0] != 42 {
		t.Errorf("Set 1 average: got %v, want 42", avg[0])
	}
	if avg[1] != nil {
		t.Errorf("Expected absent set 2 average, got %v", *avg[1])
	}
	if avg[2] != nil {
		t.Errorf("Expected absent set 3 average, got %v", *avg[2])
	}
}

func TestGlobalLastBySetWholeTripleFromOneSession(t *testing.T) {
	sessions := []models.Session{
		sessionAt(t, "w1", "2024-01-10",
			models.WeightEntry{ExerciseName: "Press", Sets: models.SetTriple{models.Float(30), models.Float(32), models.Float(34)}}),
		sessionAt(t, "w2", "2024-02-01",
			models.WeightEntry{ExerciseName: "Press", Sets: models.SetTriple{models.Float(36), nil, nil}}),
	}

	got := GlobalLastBySet(sessions, "press")
	if got[0] == nil || *got[0] != 36 {
		t.Errorf("Set 1: got %v, want 36", got[0])
	}
	// The whole triple comes from the latest session, absent slots included
	if got[1] != nil || got[2] != nil {
		t.Errorf("Expected sets 2 and 3 absent from latest session, got %v, %v", got[1], got[2])
	}
}

func TestGlobalAvgAndLastScalars(t *testing.T) {
	sessions := []models.Session{
		sessionAt(t, "w1", "2024-01-10",
			models.StretchEntry{ExerciseName: "Hamstring", Seconds: models.Float(30)},
			models.CardioEntry{ExerciseName: "Bike", Minutes: models.Float(20)}),
		sessionAt(t, "w1", "2024-01-17",
			models.StretchEntry{ExerciseName: "Hamstring", Seconds: models.Float(50)},
			models.CardioEntry{ExerciseName: "Bike", Minutes: nil}),
	}

	if avg := GlobalAvgSeconds(sessions, "hamstring"); avg == nil || *avg != 40 {
		t.Errorf("GlobalAvgSeconds: got %v, want 40", avg)
	}
	if last := GlobalLastSeconds(sessions, "hamstring"); last == nil || *last != 50 {
		t.Errorf("GlobalLastSeconds: got %v, want 50", last)
	}
	// Absent minutes in the latest session fall through to the previous one
	if last := GlobalLastMinutes(sessions, "bike"); last == nil || *last != 20 {
		t.Errorf("GlobalLastMinutes: got %v, want 20", last)
	}
	if avg := GlobalAvgMinutes(sessions, "bike"); avg == nil || *avg != 20 {
		t.Errorf("GlobalAvgMinutes: got %v, want 20", avg)
	}
}

func TestHintsEmptyHistory(t *testing.T) {
	if got := GlobalLastBySet(nil, "anything"); got != (models.SetTriple{}) {
		t.Errorf("Expected all-absent triple, got %v", got)
	}
	if got := GlobalAvgSeconds(nil, "anything"); got != nil {
		t.Errorf("Expected nil average, got %v", *got)
	}
}
