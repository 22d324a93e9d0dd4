// ABOUTME: Workout template model with its ordered exercise list.
// ABOUTME: Exercises are matched across sessions by normalized name, not by ID.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseType classifies how an exercise is measured.
type ExerciseType string

const (
	// ExerciseWeight is a weighted exercise logged as up to three set weights.
	ExerciseWeight ExerciseType = "PESO"
	// ExerciseStretch is a stretch logged as a duration in seconds.
	ExerciseStretch ExerciseType = "ALONGAMENTO"
	// ExerciseCardio is a cardio exercise logged as a duration in minutes.
	ExerciseCardio ExerciseType = "AEROBICO"
)

// Valid reports whether t is one of the three recognized exercise types.
func (t ExerciseType) Valid() bool {
	switch t {
	case ExerciseWeight, ExerciseStretch, ExerciseCardio:
		return true
	}
	return false
}

// Media is an attachment reference carried through storage unchanged.
type Media struct {
	URI  string `json:"uri"`
	Kind string `json:"kind"` // "image" or "video"
}

// WorkoutExercise is one exercise within a workout template.
// Its measurement type is fixed at creation.
type WorkoutExercise struct {
	Name        string       `json:"name"`
	Type        ExerciseType `json:"type"`
	Description string       `json:"description,omitempty"`
	Media       *Media       `json:"media,omitempty"`
}

// Workout is a reusable named template of exercises.
// Exercise order is meaningful: it is the display and logging order.
type Workout struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Exercises   []WorkoutExercise `json:"exercises"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// NewWorkout creates a Workout with a generated ID, empty exercise list,
// and current timestamp.
func NewWorkout(name string) *Workout {
	return &Workout{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: []WorkoutExercise{},
		CreatedAt: time.Now(),
	}
}

// WithDescription sets the workout description.
func (w *Workout) WithDescription(desc string) *Workout {
	w.Description = desc
	return w
}

// AddExercise appends an exercise to the template.
func (w *Workout) AddExercise(ex WorkoutExercise) *Workout {
	w.Exercises = append(w.Exercises, ex)
	return w
}

// FindExercise returns the first exercise whose name equals name exactly,
// or nil if the template has no such exercise.
func (w *Workout) FindExercise(name string) *WorkoutExercise {
	for i := range w.Exercises {
		if w.Exercises[i].Name == name {
			return &w.Exercises[i]
		}
	}
	return nil
}
