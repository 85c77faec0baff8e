// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"time"

	"github.com/pquinn/scrumdeck/models"
)

// ErrNotFound is returned by every operation targeting an absent session.
var ErrNotFound = errors.New("session not found")

// SessionPatch names the fields UpdateSession may overwrite. Nil fields
// are left alone.
type SessionPatch struct {
	Topic *string
}

// Store is the process-wide keyed persistence of session aggregates. Every
// method is a single logical read-modify-write that appears atomic to
// concurrent handlers, and every returned session is a snapshot the caller
// owns outright.
//
// Domain mutators (CastVote, RevealRound, ResetRound) apply their effect
// unconditionally; round-state legality is gated by the round package
// before the store is reached.
type Store interface {
	// CreateSession inserts the session keyed by its id. Id collisions are
	// not checked; the 32^8 code space makes them negligible.
	CreateSession(s *models.Session) error
	GetSession(id string) (*models.Session, error)
	GetAllSessions() ([]*models.Session, error)
	DeleteSession(id string) error

	// UpdateSession overwrites the fields set in patch.
	UpdateSession(id string, patch SessionPatch) (*models.Session, error)
	// AddParticipant appends to the participant list.
	AddParticipant(id string, p models.Participant) (*models.Session, error)
	// SetParticipantOnline flips an existing participant's online flag.
	SetParticipantOnline(id, participantID string, online bool) (*models.Session, error)
	// CastVote upserts the participant's vote in the current round.
	CastVote(id, participantID string, value models.CardValue) (*models.Session, error)
	// RevealRound stamps the current round's revealedAt. Re-invoking just
	// refreshes the timestamp; callers gate on "not already revealed".
	RevealRound(id string) (*models.Session, error)
	// ResetRound archives the current round into history and installs a
	// fresh empty round with a new id.
	ResetRound(id string) (*models.Session, error)

	// CleanupOldSessions deletes every session older than maxAge and
	// returns the count deleted.
	CleanupOldSessions(maxAge time.Duration) (int, error)

	Close() error
}
