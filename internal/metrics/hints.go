// ABOUTME: Hint resolver deriving last-value and average-value suggestions.
// ABOUTME: Pure functions over the session history supplied by the caller.
package metrics

import (
	"math"
	"sort"

	"github.com/hsouza/gymlog/internal/models"
)

// sortedByStartDesc returns a copy of sessions ordered most-recent first.
// Equal timestamps keep the order the caller supplied.
func sortedByStartDesc(sessions []models.Session) []models.Session {
	sorted := make([]models.Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.After(sorted[j].StartedAt)
	})
	return sorted
}

// findWeightEntry returns the first weight entry in the session matching the
// normalized exercise name, or nil.
func findWeightEntry(s models.Session, normName string) *models.WeightEntry {
	for _, e := range s.Entries {
		if w, ok := e.(models.WeightEntry); ok && NormalizeName(w.ExerciseName) == normName {
			return &w
		}
	}
	return nil
}

// LastSameWorkoutSets returns the set triple from the most recent session of
// the given workout that logged the exercise, or an all-absent triple when
// no session of that workout has.
func LastSameWorkoutSets(sessions []models.Session, workoutID, exerciseName string) models.SetTriple {
	normName := NormalizeName(exerciseName)
	for _, s := range sortedByStartDesc(sessions) {
		if s.WorkoutID != workoutID {
			continue
		}
		if w := findWeightEntry(s, normName); w != nil {
			return w.Sets
		}
	}
	return models.SetTriple{}
}

// GlobalAveragesBySet averages each set index independently across every
// weight entry for the exercise, in any workout. An index with no present
// values stays absent; a session missing set 3 still contributes its set 1.
func GlobalAveragesBySet(sessions []models.Session, exerciseName string) models.SetTriple {
	normName := NormalizeName(exerciseName)
	var collected [3][]float64

	for _, s := range sessions {
		for _, e := range s.Entries {
			w, ok := e.(models.WeightEntry)
			if !ok || NormalizeName(w.ExerciseName) != normName {
				continue
			}
			for i, v := range w.Sets {
				if v != nil && !math.IsNaN(*v) {
					collected[i] = append(collected[i], *v)
				}
			}
		}
	}

	var triple models.SetTriple
	for i, values := range collected {
		if len(values) > 0 {
			triple[i] = models.Float(mean(values))
		}
	}
	return triple
}

// GlobalLastBySet returns the full set triple of the most recent weight
// entry for the exercise across all workouts. The whole triple comes from
// one session; indexes are not merged across sessions.
func GlobalLastBySet(sessions []models.Session, exerciseName string) models.SetTriple {
	normName := NormalizeName(exerciseName)
	for _, s := range sortedByStartDesc(sessions) {
		if w := findWeightEntry(s, normName); w != nil {
			return w.Sets
		}
	}
	return models.SetTriple{}
}

// GlobalAvgSeconds averages every recorded stretch duration for the
// exercise, or nil when none was recorded.
func GlobalAvgSeconds(sessions []models.Session, exerciseName string) *float64 {
	normName := NormalizeName(exerciseName)
	var values []float64
	for _, s := range sessions {
		for _, e := range s.Entries {
			if st, ok := e.(models.StretchEntry); ok && NormalizeName(st.ExerciseName) == normName && st.Seconds != nil {
				values = append(values, *st.Seconds)
			}
		}
	}
	if len(values) == 0 {
		return nil
	}
	return models.Float(mean(values))
}

// GlobalLastSeconds returns the most recently recorded stretch duration for
// the exercise, or nil when none was recorded.
func GlobalLastSeconds(sessions []models.Session, exerciseName string) *float64 {
	normName := NormalizeName(exerciseName)
	for _, s := range sortedByStartDesc(sessions) {
		for _, e := range s.Entries {
			if st, ok := e.(models.StretchEntry); ok && NormalizeName(st.ExerciseName) == normName && st.Seconds != nil {
				return st.Seconds
			}
		}
	}
	return nil
}

// GlobalAvgMinutes averages every recorded cardio duration for the
// exercise, or nil when none was recorded.
func GlobalAvgMinutes(sessions []models.Session, exerciseName string) *float64 {
	normName := NormalizeName(exerciseName)
	var values []float64
	for _, s := range sessions {
		for _, e := range s.Entries {
			if c, ok := e.(models.CardioEntry); ok && NormalizeName(c.ExerciseName) == normName && c.Minutes != nil {
				values = append(values, *c.Minutes)
			}
		}
	}
	if len(values) == 0 {
		return nil
	}
	return models.Float(mean(values))
}

// GlobalLastMinutes returns the most recently recorded cardio duration for
// the exercise, or nil when none was recorded.
func GlobalLastMinutes(sessions []models.Session, exerciseName string) *float64 {
	normName := NormalizeName(exerciseName)
	for _, s := range sortedByStartDesc(sessions) {
		for _, e := range s.Entries {
			if c, ok := e.(models.CardioEntry); ok && NormalizeName(c.ExerciseName) == normName && c.Minutes != nil {
				return c.Minutes
			}
		}
	}
	return nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
