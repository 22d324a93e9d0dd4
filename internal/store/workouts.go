// ABOUTME: Workout CRUD operations over the persisted blob.
// ABOUTME: Deleting a workout cascades to its sessions in the same snapshot.
package store

import (
	"github.com/hsouza/gymlog/internal/models"
)

// ListWorkouts returns every workout in creation order.
func (s *Store) ListWorkouts() ([]models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}
	return db.Workouts, nil
}

// GetWorkout returns the workout with the given ID, or nil when no workout
// has that ID.
func (s *Store) GetWorkout(id string) (*models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range db.Workouts {
		if db.Workouts[i].ID == id {
			w := db.Workouts[i]
			return &w, nil
		}
	}
	return nil, nil
}

// CreateWorkout creates a workout with a fresh ID and empty exercise list
// and persists it immediately.
func (s *Store) CreateWorkout(name string) (*models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}

	w := models.NewWorkout(name)
	db.Workouts = append(db.Workouts, *w)
	if err := s.save(db); err != nil {
		return nil, err
	}
	return w, nil
}

// WorkoutUpdate carries the fields to merge into an existing workout.
// Nil fields are left unchanged.
type WorkoutUpdate struct {
	Name        *string
	Description *string
	Exercises   []models.WorkoutExercise
}

// UpdateWorkout merges the supplied fields into the workout and persists.
// Returns the updated workout, or nil when the ID is unknown.
func (s *Store) UpdateWorkout(id string, upd WorkoutUpdate) (*models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range db.Workouts {
		if db.Workouts[i].ID != id {
			continue
		}
		if upd.Name != nil {
			db.Workouts[i].Name = *upd.Name
		}
		if upd.Description != nil {
			db.Workouts[i].Description = *upd.Description
		}
		if upd.Exercises != nil {
			db.Workouts[i].Exercises = upd.Exercises
		}
		if err := s.save(db); err != nil {
			return nil, err
		}
		w := db.Workouts[i]
		return &w, nil
	}
	return nil, nil
}

// DeleteWorkout removes the workout and every session referencing it, both
// landing in the same persisted snapshot. Returns false when the ID is
// unknown.
func (s *Store) DeleteWorkout(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return false, err
	}

	workouts := db.Workouts[:0]
	found := false
	for _, w := range db.Workouts {
		if w.ID == id {
			found = true
			continue
		}
		workouts = append(workouts, w)
	}
	if !found {
		return false, nil
	}
	db.Workouts = workouts

	sessions := db.Sessions[:0]
	for _, sess := range db.Sessions {
		if sess.WorkoutID == id {
			continue
		}
		sessions = append(sessions, sess)
	}
	db.Sessions = sessions

	if err := s.save(db); err != nil {
		return false, err
	}
	return true, nil
}
