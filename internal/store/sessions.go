// ABOUTME: Session CRUD operations over the persisted blob.
// ABOUTME: Sessions are appended once, atomically, and never edited.
package store

import (
	"github.com/google/uuid"
	"github.com/hsouza/gymlog/internal/metrics"
	"github.com/hsouza/gymlog/internal/models"
)

// ListSessions returns every session in the order they were saved.
func (s *Store) ListSessions() ([]models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}
	return db.Sessions, nil
}

// GetSession returns the session with the given ID, or nil when no session
// has that ID.
func (s *Store) GetSession(id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range db.Sessions {
		if db.Sessions[i].ID == id {
			sess := db.Sessions[i]
			return &sess, nil
		}
	}
	return nil, nil
}

// CreateSession assigns a fresh ID to the draft, stamps a calorie estimate
// when the caller left it unset, appends, and persists.
func (s *Store) CreateSession(draft models.Session) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}

	draft.ID = uuid.NewString()
	if draft.Calories == nil {
		draft.WithCalories(metrics.EstimateCalories(draft.Entries))
	}

	db.Sessions = append(db.Sessions, draft)
	if err := s.save(db); err != nil {
		return nil, err
	}
	return &draft, nil
}

// DeleteSession removes a single session. Returns false when the ID is
// unknown.
func (s *Store) DeleteSession(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return false, err
	}

	sessions := db.Sessions[:0]
	found := false
	for _, sess := range db.Sessions {
		if sess.ID == id {
			found = true
			continue
		}
		sessions = append(sessions, sess)
	}
	if !found {
		return false, nil
	}
	db.Sessions = sessions

	if err := s.save(db); err != nil {
		return false, err
	}
	return true, nil
}
