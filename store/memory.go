// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"
	"time"

	"github.com/pquinn/scrumdeck/ident"
	"github.com/pquinn/scrumdeck/models"
)

// MemoryStore keeps all sessions in a mutex-guarded map. It is the default
// backend for single-instance deployments.
//
// Sessions are deep-copied on the way in and out, so nothing a caller
// holds can alias live store state. Archived rounds stay immutable for
// free because of this.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
	}
}

func (m *MemoryStore) CreateSession(s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *MemoryStore) GetSession(id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (m *MemoryStore) GetAllSessions() ([]*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (m *MemoryStore) DeleteSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// mutate runs fn against the live session under the lock and returns a
// snapshot of the result.
func (m *MemoryStore) mutate(id string, fn func(*models.Session) error) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (m *MemoryStore) UpdateSession(id string, patch SessionPatch) (*models.Session, error) {
	return m.mutate(id, func(s *models.Session) error {
		if patch.Topic != nil {
			s.Topic = *patch.Topic
		}
		return nil
	})
}

func (m *MemoryStore) AddParticipant(id string, p models.Participant) (*models.Session, error) {
	return m.mutate(id, func(s *models.Session) error {
		s.AddParticipant(p)
		return nil
	})
}

func (m *MemoryStore) SetParticipantOnline(id, participantID string, online bool) (*models.Session, error) {
	return m.mutate(id, func(s *models.Session) error {
		s.SetParticipantOnline(participantID, online)
		return nil
	})
}

func (m *MemoryStore) CastVote(id, participantID string, value models.CardValue) (*models.Session, error) {
	return m.mutate(id, func(s *models.Session) error {
		s.CastVote(participantID, value)
		return nil
	})
}

func (m *MemoryStore) RevealRound(id string) (*models.Session, error) {
	return m.mutate(id, func(s *models.Session) error {
		s.Reveal(time.Now())
		return nil
	})
}

func (m *MemoryStore) ResetRound(id string) (*models.Session, error) {
	return m.mutate(id, func(s *models.Session) error {
		roundID, err := ident.NewRoundID()
		if err != nil {
			return err
		}
		s.Reset(roundID)
		return nil
	})
}

func (m *MemoryStore) CleanupOldSessions(maxAge time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	deleted := 0
	for id, s := range m.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(m.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
