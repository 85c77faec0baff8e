// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pquinn/scrumdeck/ident"
	"github.com/pquinn/scrumdeck/models"
)

// SQLStore persists each session as one JSON document row, keyed by the
// session code. It works against PostgreSQL (lib/pq) and SQLite (modernc)
// with the same SQL; see the db package for the schema.
//
// Mutators are a transactional read-modify-write, additionally serialized
// by a process mutex: the server is single-process by design, so the mutex
// alone already gives store calls their required atomicity.
type SQLStore struct {
	mu sync.Mutex
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (q *SQLStore) CreateSession(s *models.Session) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	_, err = q.db.Exec(`
		INSERT INTO session (id, data, created_at)
		VALUES ($1, $2, $3)
	`, s.ID, string(data), s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (q *SQLStore) GetSession(id string) (*models.Session, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return scanSession(q.db.QueryRow(`SELECT data FROM session WHERE id = $1`, id))
}

func (q *SQLStore) GetAllSessions() ([]*models.Session, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	rows, err := q.db.Query(`SELECT data FROM session ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	out := []*models.Session{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		var s models.Session
		if err := json.Unmarshal([]byte(data), &s); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (q *SQLStore) DeleteSession(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	res, err := q.db.Exec(`DELETE FROM session WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// mutate loads the document, applies fn, and writes it back in one
// transaction.
func (q *SQLStore) mutate(id string, fn func(*models.Session) error) (*models.Session, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	tx, err := q.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	s, err := scanSession(tx.QueryRow(`SELECT data FROM session WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	if err := fn(s); err != nil {
		return nil, err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if _, err := tx.Exec(`UPDATE session SET data = $1 WHERE id = $2`, string(data), id); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session update: %w", err)
	}
	return s, nil
}

func (q *SQLStore) UpdateSession(id string, patch SessionPatch) (*models.Session, error) {
	return q.mutate(id, func(s *models.Session) error {
		if patch.Topic != nil {
			s.Topic = *patch.Topic
		}
		return nil
	})
}

func (q *SQLStore) AddParticipant(id string, p models.Participant) (*models.Session, error) {
	return q.mutate(id, func(s *models.Session) error {
		s.AddParticipant(p)
		return nil
	})
}

func (q *SQLStore) SetParticipantOnline(id, participantID string, online bool) (*models.Session, error) {
	return q.mutate(id, func(s *models.Session) error {
		s.SetParticipantOnline(participantID, online)
		return nil
	})
}

func (q *SQLStore) CastVote(id, participantID string, value models.CardValue) (*models.Session, error) {
	return q.mutate(id, func(s *models.Session) error {
		s.CastVote(participantID, value)
		return nil
	})
}

func (q *SQLStore) RevealRound(id string) (*models.Session, error) {
	return q.mutate(id, func(s *models.Session) error {
		s.Reveal(time.Now())
		return nil
	})
}

func (q *SQLStore) ResetRound(id string) (*models.Session, error) {
	return q.mutate(id, func(s *models.Session) error {
		roundID, err := ident.NewRoundID()
		if err != nil {
			return err
		}
		s.Reset(roundID)
		return nil
	})
}

func (q *SQLStore) CleanupOldSessions(maxAge time.Duration) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	res, err := q.db.Exec(`DELETE FROM session WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old sessions: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (q *SQLStore) Close() error {
	return q.db.Close()
}

func scanSession(row *sql.Row) (*models.Session, error) {
	var data string
	err := row.Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	var s models.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}
