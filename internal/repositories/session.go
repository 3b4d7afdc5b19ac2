package repositories

import (
	"errors"
	"fmt"
	"sync"

	"jaythakor/ai-interviewer/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores interview sessions. The in-memory implementation
// below is the only one today; handlers depend on the interface so a durable
// store can be swapped in without touching them.
type SessionRepository interface {
	Create(session *models.InterviewSession) error
	FindByID(id string) (*models.InterviewSession, error)
	Update(id string, mutate func(session *models.InterviewSession) error) error
}

type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.InterviewSession
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*models.InterviewSession),
	}
}

// Create implements SessionRepository.
func (r *memorySessionRepository) Create(session *models.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("session %s already exists", session.ID)
	}

	r.sessions[session.ID] = cloneSession(session)
	return nil
}

// FindByID implements SessionRepository. The returned session is a copy;
// mutations must go through Update to stay visible.
func (r *memorySessionRepository) FindByID(id string) (*models.InterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return cloneSession(session), nil
}

// Update implements SessionRepository. The mutate callback runs while the
// store lock is held, so concurrent updates against the same session are
// serialized. An error from mutate discards the change.
func (r *memorySessionRepository) Update(id string, mutate func(session *models.InterviewSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	working := cloneSession(session)
	if err := mutate(working); err != nil {
		return err
	}

	r.sessions[id] = working
	return nil
}

func cloneSession(s *models.InterviewSession) *models.InterviewSession {
	clone := *s
	clone.Keywords = append([]string(nil), s.Keywords...)
	clone.Questions = append([]string(nil), s.Questions...)
	clone.Answers = append([]models.AnswerRecord(nil), s.Answers...)
	return &clone
}
