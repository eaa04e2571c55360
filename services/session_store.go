package services

import (
	"chat-uploads/domain"
	"chat-uploads/errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// SessionStore owns every in-flight upload session. All mutation happens
// under its lock and the critical sections are O(1) map writes; the expensive
// work (decode, disk I/O, hashing) always runs outside.
//
// Completion arbitration: AddChunk reports completeness from inside the same
// critical section that stored the chunk, and Remove hands the session to
// exactly one caller. Two chunks racing on the last index can both observe
// "complete", but only the Remove winner assembles.
type SessionStore struct {
	log      *slog.Logger
	mu       sync.RWMutex
	sessions map[string]*domain.UploadSession

	// byTuple indexes server-keyed sessions by correlation tuple so id-less
	// chunks resolve in O(1) instead of scanning every in-flight session.
	byTuple map[domain.CorrelationKey]string
}

func NewSessionStore(log *slog.Logger) *SessionStore {
	return &SessionStore{
		log:      log,
		sessions: make(map[string]*domain.UploadSession),
		byTuple:  make(map[domain.CorrelationKey]string),
	}
}

// GetOrCreate returns the session for key, constructing it via initializer
// when absent. Atomic: two first chunks racing on the same key produce one
// session, the loser joins it.
func (s *SessionStore) GetOrCreate(key string, initializer func() *domain.UploadSession) (*domain.UploadSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[key]; ok {
		return existing, false
	}

	session := initializer()
	s.sessions[key] = session
	if !session.ClientProvidedID {
		// First upload wins the tuple slot. Two concurrent id-less uploads
		// with identical metadata are indistinguishable on the wire anyway.
		if _, taken := s.byTuple[session.Correlation()]; !taken {
			s.byTuple[session.Correlation()] = key
		}
	}
	return session, true
}

// GetOrCreateByCorrelation resolves an id-less chunk to its in-flight
// session, creating one with a freshly minted key when no tuple match
// exists. Atomic for the same reason GetOrCreate is: two id-less chunks of
// the same upload racing on an empty store must end up in one session.
func (s *SessionStore) GetOrCreateByCorrelation(tuple domain.CorrelationKey, initializer func() *domain.UploadSession) (*domain.UploadSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.byTuple[tuple]; ok {
		if existing, ok := s.sessions[key]; ok {
			return existing, false
		}
	}

	session := initializer()
	s.sessions[session.ID] = session
	if _, taken := s.byTuple[tuple]; !taken {
		s.byTuple[tuple] = session.ID
	}
	return session, true
}

// Find returns the session for key, if any.
func (s *SessionStore) Find(key string) (*domain.UploadSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[key]
	return session, ok
}

// FindByCorrelation resolves an id-less chunk to its in-flight session key.
func (s *SessionStore) FindByCorrelation(tuple domain.CorrelationKey) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.byTuple[tuple]
	return key, ok
}

// AddChunk buffers one decoded chunk and refreshes the session activity.
// The returned progress (distinct index count, buffered bytes, completeness)
// is observed atomically with the write, so two chunks for the same key can
// never both miss the completion.
func (s *SessionStore) AddChunk(key string, index int, data []byte) (domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[key]
	if !ok {
		return domain.Progress{}, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, key)
	}

	session.Chunks[index] = data
	session.LastActivity = time.Now()
	return domain.Progress{
		ReceivedCount: len(session.Chunks),
		ReceivedBytes: session.ReceivedBytes(),
		Complete:      session.IsComplete(),
	}, nil
}

// IsComplete reports whether every index 1..ExpectedTotal is buffered.
func (s *SessionStore) IsComplete(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[key]
	return ok && session.IsComplete()
}

// Remove evicts the session and returns it for finalization or cleanup.
// Exactly one caller gets ok=true per session lifetime.
func (s *SessionStore) Remove(key string) (*domain.UploadSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(key)
}

func (s *SessionStore) removeLocked(key string) (*domain.UploadSession, bool) {
	session, ok := s.sessions[key]
	if !ok {
		return nil, false
	}
	delete(s.sessions, key)
	if !session.ClientProvidedID && s.byTuple[session.Correlation()] == key {
		delete(s.byTuple, session.Correlation())
	}
	return session, true
}

// SweepInactive removes and returns every session whose last activity is
// older than the cutoff. A slow client mid-upload is indistinguishable from
// an abandoned one until the window elapses.
func (s *SessionStore) SweepInactive(olderThan time.Duration) []*domain.UploadSession {
	cutoff := time.Now().Add(-olderThan)

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []*domain.UploadSession
	for key, session := range s.sessions {
		if session.LastActivity.Before(cutoff) {
			if evicted, ok := s.removeLocked(key); ok {
				removed = append(removed, evicted)
			}
		}
	}
	return removed
}

// Len returns the number of in-flight sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
