// ABOUTME: Session record and the tagged-union entry types logged within it.
// ABOUTME: Entries decode from/encode to the flat {exerciseName, type, ...} wire shape.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SetTriple holds the weights for sets 1-3 of a weighted exercise.
// A nil element means the set was not entered.
type SetTriple [3]*float64

// Count returns the number of present set values.
func (s SetTriple) Count() int {
	n := 0
	for _, v := range s {
		if v != nil {
			n++
		}
	}
	return n
}

// Entry is one exercise's logged measurement within a session.
// The three implementations correspond to the three exercise types;
// an entry never changes shape after creation.
type Entry interface {
	// Name returns the exercise name as entered.
	Name() string
	// Kind returns the exercise type the entry was logged against.
	Kind() ExerciseType

	isEntry()
}

// WeightEntry records up to three set weights for a weighted exercise.
type WeightEntry struct {
	ExerciseName string    `json:"exerciseName"`
	Sets         SetTriple `json:"sets"`
}

// StretchEntry records a stretch duration in seconds.
type StretchEntry struct {
	ExerciseName string   `json:"exerciseName"`
	Seconds      *float64 `json:"seconds"`
}

// CardioEntry records a cardio duration in minutes.
type CardioEntry struct {
	ExerciseName string   `json:"exerciseName"`
	Minutes      *float64 `json:"minutes"`
}

func (e WeightEntry) Name() string        { return e.ExerciseName }
func (e WeightEntry) Kind() ExerciseType  { return ExerciseWeight }
func (e WeightEntry) isEntry()            {}
func (e StretchEntry) Name() string       { return e.ExerciseName }
func (e StretchEntry) Kind() ExerciseType { return ExerciseStretch }
func (e StretchEntry) isEntry()           {}
func (e CardioEntry) Name() string        { return e.ExerciseName }
func (e CardioEntry) Kind() ExerciseType  { return ExerciseCardio }
func (e CardioEntry) isEntry()            {}

// Entries is an ordered list of session entries with a tagged JSON codec.
type Entries []Entry

// entryEnvelope is the wire shape shared by all three entry variants.
type entryEnvelope struct {
	ExerciseName string       `json:"exerciseName"`
	Type         ExerciseType `json:"type"`
	Sets         *SetTriple   `json:"sets,omitempty"`
	Seconds      *float64     `json:"seconds,omitempty"`
	Minutes      *float64     `json:"minutes,omitempty"`
}

// MarshalJSON encodes each entry as a flat object tagged with its type.
func (es Entries) MarshalJSON() ([]byte, error) {
	envs := make([]entryEnvelope, 0, len(es))
	for _, e := range es {
		switch v := e.(type) {
		case WeightEntry:
			sets := v.Sets
			envs = append(envs, entryEnvelope{ExerciseName: v.ExerciseName, Type: ExerciseWeight, Sets: &sets})
		case StretchEntry:
			envs = append(envs, entryEnvelope{ExerciseName: v.ExerciseName, Type: ExerciseStretch, Seconds: v.Seconds})
		case CardioEntry:
			envs = append(envs, entryEnvelope{ExerciseName: v.ExerciseName, Type: ExerciseCardio, Minutes: v.Minutes})
		default:
			return nil, fmt.Errorf("marshal entry: unknown entry type %T", e)
		}
	}
	return json.Marshal(envs)
}

// UnmarshalJSON decodes tagged entry objects, dispatching on the type field.
// An unrecognized type is an error: entries are only ever constructed against
// a known exercise type.
func (es *Entries) UnmarshalJSON(data []byte) error {
	var envs []entryEnvelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return err
	}

	out := make(Entries, 0, len(envs))
	for _, env := range envs {
		switch env.Type {
		case ExerciseWeight:
			var sets SetTriple
			if env.Sets != nil {
				sets = *env.Sets
			}
			out = append(out, WeightEntry{ExerciseName: env.ExerciseName, Sets: sets})
		case ExerciseStretch:
			out = append(out, StretchEntry{ExerciseName: env.ExerciseName, Seconds: env.Seconds})
		case ExerciseCardio:
			out = append(out, CardioEntry{ExerciseName: env.ExerciseName, Minutes: env.Minutes})
		default:
			return fmt.Errorf("unmarshal entry: unknown exercise type %q", env.Type)
		}
	}
	*es = out
	return nil
}

// Session is one completed execution of a workout. Sessions are created
// atomically with their full entry list and never edited afterwards.
type Session struct {
	ID        string    `json:"id"`
	WorkoutID string    `json:"workoutId"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
	Entries   Entries   `json:"entries"`
	Calories  *int      `json:"calories,omitempty"`
}

// NewSession builds a session draft without an ID; the store assigns one
// when the session is persisted.
func NewSession(workoutID string, startedAt, endedAt time.Time, entries Entries) *Session {
	return &Session{
		WorkoutID: workoutID,
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Entries:   entries,
	}
}

// WithCalories sets a precomputed calorie estimate.
func (s *Session) WithCalories(kcal int) *Session {
	s.Calories = &kcal
	return s
}

// Float returns a pointer to v, for filling optional measurement values.
func Float(v float64) *float64 {
	return &v
}
