// ABOUTME: Blob schema for the persisted database.
// ABOUTME: One JSON document holding every workout and session.
package store

import "github.com/hsouza/gymlog/internal/models"

// database is the decoded form of the persisted blob.
type database struct {
	Workouts []models.Workout `json:"workouts"`
	Sessions []models.Session `json:"sessions"`
}

func emptyDatabase() *database {
	return &database{
		Workouts: []models.Workout{},
		Sessions: []models.Session{},
	}
}
