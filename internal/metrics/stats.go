// ABOUTME: Statistics aggregator for dashboard charts over the full history.
// ABOUTME: Calendar buckets, sliding windows, and progression comparisons.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/hsouza/gymlog/internal/models"
)

// YearlyFrequency counts sessions per calendar month of the given year.
// Index 0 is January.
func YearlyFrequency(sessions []models.Session, year int) [12]int {
	var counts [12]int
	for _, s := range sessions {
		if s.StartedAt.Year() == year {
			counts[s.StartedAt.Month()-1]++
		}
	}
	return counts
}

// cardioTotal sums the recorded cardio minutes across a session's entries.
func cardioTotal(s models.Session) float64 {
	total := 0.0
	for _, e := range s.Entries {
		if c, ok := e.(models.CardioEntry); ok && c.Minutes != nil {
			total += *c.Minutes
		}
	}
	return total
}

// stretchTotal sums the recorded stretch seconds across a session's entries.
func stretchTotal(s models.Session) float64 {
	total := 0.0
	for _, e := range s.Entries {
		if st, ok := e.(models.StretchEntry); ok && st.Seconds != nil {
			total += *st.Seconds
		}
	}
	return total
}

// perWorkoutSums groups per-session totals by workout within the window,
// skipping sessions whose total is zero. Workouts appear in first-seen
// order; count is the number of contributing sessions.
type workoutSum struct {
	workoutID string
	total     float64
	count     int
}

func perWorkoutSums(sessions []models.Session, windowDays int, now time.Time, total func(models.Session) float64) []workoutSum {
	cutoff := now.AddDate(0, 0, -windowDays)

	var order []string
	sums := make(map[string]*workoutSum)
	for _, s := range sessions {
		if s.StartedAt.Before(cutoff) {
			continue
		}
		t := total(s)
		if t <= 0 {
			continue
		}
		ws, ok := sums[s.WorkoutID]
		if !ok {
			ws = &workoutSum{workoutID: s.WorkoutID}
			sums[s.WorkoutID] = ws
			order = append(order, s.WorkoutID)
		}
		ws.total += t
		ws.count++
	}

	out := make([]workoutSum, 0, len(order))
	for _, id := range order {
		out = append(out, *sums[id])
	}
	return out
}

// WorkoutCardio is the summed cardio minutes for one workout.
type WorkoutCardio struct {
	WorkoutID    string  `json:"workoutId"`
	TotalMinutes float64 `json:"totalMinutes"`
}

// CardioMinutesPerWorkout sums cardio minutes per workout over sessions
// started within windowDays of now. Sessions with no cardio contribute
// nothing, so a workout with only zero-cardio sessions is omitted.
func CardioMinutesPerWorkout(sessions []models.Session, windowDays int, now time.Time) []WorkoutCardio {
	var out []WorkoutCardio
	for _, ws := range perWorkoutSums(sessions, windowDays, now, cardioTotal) {
		out = append(out, WorkoutCardio{WorkoutID: ws.workoutID, TotalMinutes: ws.total})
	}
	return out
}

// WorkoutCardioAvg is the per-session average cardio minutes for one workout.
type WorkoutCardioAvg struct {
	WorkoutID  string  `json:"workoutId"`
	AvgMinutes float64 `json:"avgMinutes"`
}

// AvgCardioMinutesPerWorkout divides each workout's cardio minutes by the
// number of contributing sessions, not by all sessions of that workout.
func AvgCardioMinutesPerWorkout(sessions []models.Session, windowDays int, now time.Time) []WorkoutCardioAvg {
	var out []WorkoutCardioAvg
	for _, ws := range perWorkoutSums(sessions, windowDays, now, cardioTotal) {
		out = append(out, WorkoutCardioAvg{WorkoutID: ws.workoutID, AvgMinutes: ws.total / float64(ws.count)})
	}
	return out
}

// WorkoutStretch is the summed stretch seconds for one workout.
type WorkoutStretch struct {
	WorkoutID    string  `json:"workoutId"`
	TotalSeconds float64 `json:"totalSeconds"`
}

// StretchSecondsPerWorkout sums stretch seconds per workout over sessions
// started within windowDays of now.
func StretchSecondsPerWorkout(sessions []models.Session, windowDays int, now time.Time) []WorkoutStretch {
	var out []WorkoutStretch
	for _, ws := range perWorkoutSums(sessions, windowDays, now, stretchTotal) {
		out = append(out, WorkoutStretch{WorkoutID: ws.workoutID, TotalSeconds: ws.total})
	}
	return out
}

// WorkoutStretchAvg is the per-session average stretch seconds for one workout.
type WorkoutStretchAvg struct {
	WorkoutID  string  `json:"workoutId"`
	AvgSeconds float64 `json:"avgSeconds"`
}

// AvgStretchSecondsPerWorkout divides each workout's stretch seconds by the
// number of contributing sessions.
func AvgStretchSecondsPerWorkout(sessions []models.Session, windowDays int, now time.Time) []WorkoutStretchAvg {
	var out []WorkoutStretchAvg
	for _, ws := range perWorkoutSums(sessions, windowDays, now, stretchTotal) {
		out = append(out, WorkoutStretchAvg{WorkoutID: ws.workoutID, AvgSeconds: ws.total / float64(ws.count)})
	}
	return out
}

// MonthCardio is the average cardio minutes of contributing sessions in one
// calendar month.
type MonthCardio struct {
	Month      string  `json:"month"` // YYYY-MM
	AvgMinutes float64 `json:"avgMinutes"`
}

// AvgCardioMinutesPerMonth buckets sessions by calendar month and averages
// cardio minutes over the contributing sessions of each bucket. Months with
// no contributing session are omitted; the result is sorted by month key.
func AvgCardioMinutesPerMonth(sessions []models.Session) []MonthCardio {
	type bucket struct {
		total float64
		count int
	}
	buckets := make(map[string]*bucket)

	for _, s := range sessions {
		t := cardioTotal(s)
		if t <= 0 {
			continue
		}
		key := s.StartedAt.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.total += t
		b.count++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthCardio, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, MonthCardio{Month: k, AvgMinutes: b.total / float64(b.count)})
	}
	return out
}

// MonthlyAverageFrequency returns the total session count divided by the
// number of distinct calendar months containing at least one session, or 0
// when the history is empty.
func MonthlyAverageFrequency(sessions []models.Session) float64 {
	if len(sessions) == 0 {
		return 0
	}
	months := make(map[string]struct{})
	for _, s := range sessions {
		months[s.StartedAt.Format("2006-01")] = struct{}{}
	}
	return float64(len(sessions)) / float64(len(months))
}

// WeightProgress summarizes the third-set weight history of one exercise.
type WeightProgress struct {
	ExerciseName string  `json:"exerciseName"`
	MinWeight    float64 `json:"minWeight"`
	MaxWeight    float64 `json:"maxWeight"`
	LastWeight   float64 `json:"lastWeight"`
	Improvement  float64 `json:"improvement"` // percent
}

// WeightEvolution ranks exercises by third-set weight improvement. Only the
// third set is tracked; an exercise needs at least two recorded third-set
// values to appear. Improvement is (max-min)/min as a percentage, and the
// result is sorted by improvement descending.
func WeightEvolution(sessions []models.Session) []WeightProgress {
	sorted := make([]models.Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.Before(sorted[j].StartedAt)
	})

	var order []string
	series := make(map[string][]float64)
	for _, s := range sorted {
		for _, e := range s.Entries {
			w, ok := e.(models.WeightEntry)
			if !ok {
				continue
			}
			v := w.Sets[2]
			if v == nil || math.IsNaN(*v) {
				continue
			}
			name := NormalizeName(w.ExerciseName)
			if _, seen := series[name]; !seen {
				order = append(order, name)
			}
			series[name] = append(series[name], *v)
		}
	}

	var out []WeightProgress
	for _, name := range order {
		values := series[name]
		if len(values) < 2 {
			continue
		}
		min, max := values[0], values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		out = append(out, WeightProgress{
			ExerciseName: name,
			MinWeight:    min,
			MaxWeight:    max,
			LastWeight:   values[len(values)-1],
			Improvement:  (max - min) / min * 100,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Improvement > out[j].Improvement
	})
	return out
}

// CardioProgress compares cardio volume between the first and last calendar
// months of the history.
type CardioProgress struct {
	InitialAvg  float64 `json:"initialAvg"`
	CurrentAvg  float64 `json:"currentAvg"`
	Improvement float64 `json:"improvement"` // percent
}

// CardioEvolution averages per-session cardio minutes in the calendar month
// of the earliest session and in the calendar month of the latest session,
// and reports the percentage change between the two. Sessions with no cardio
// are excluded. When the whole history falls in a single month the same
// sessions feed both buckets. Returns nil when either bucket is empty.
func CardioEvolution(sessions []models.Session) *CardioProgress {
	sorted := sortedByStartDesc(sessions)
	if len(sorted) == 0 {
		return nil
	}
	latest := sorted[0].StartedAt
	earliest := sorted[len(sorted)-1].StartedAt

	firstMonth := earliest.Year()*12 + int(earliest.Month())
	lastMonth := latest.Year()*12 + int(latest.Month())

	var first, last []float64
	for _, s := range sorted {
		t := cardioTotal(s)
		if t <= 0 {
			continue
		}
		m := s.StartedAt.Year()*12 + int(s.StartedAt.Month())
		if m <= firstMonth {
			first = append(first, t)
		}
		if m >= lastMonth {
			last = append(last, t)
		}
	}
	if len(first) == 0 || len(last) == 0 {
		return nil
	}

	initialAvg := mean(first)
	currentAvg := mean(last)
	return &CardioProgress{
		InitialAvg:  initialAvg,
		CurrentAvg:  currentAvg,
		Improvement: (currentAvg - initialAvg) / initialAvg * 100,
	}
}
