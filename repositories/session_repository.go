package repositories

import (
	"sync"

	"github.com/rubickshop/rubick-cup/models"
)

// SessionRepository хранит анкеты регистрации: одна сессия на чат.
type SessionRepository interface {
	Get(chatID int64) (*models.RegistrationSession, bool)
	Put(session *models.RegistrationSession)
	Delete(chatID int64)
}

type inMemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]models.RegistrationSession
}

func NewInMemorySessionRepository() SessionRepository {
	return &inMemorySessionRepository{
		sessions: make(map[int64]models.RegistrationSession),
	}
}

func (r *inMemorySessionRepository) Get(chatID int64) (*models.RegistrationSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[chatID]
	if !ok {
		return nil, false
	}
	return &s, true
}

func (r *inMemorySessionRepository) Put(session *models.RegistrationSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ChatID] = *session
}

func (r *inMemorySessionRepository) Delete(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, chatID)
}
