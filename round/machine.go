// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package round

import (
	"errors"

	"github.com/pquinn/scrumdeck/models"
	"github.com/pquinn/scrumdeck/stats"
	"github.com/pquinn/scrumdeck/store"
)

var (
	// ErrRoundClosed rejects votes cast after reveal.
	ErrRoundClosed = errors.New("round already revealed")
	// ErrAlreadyRevealed rejects a second reveal request.
	ErrAlreadyRevealed = errors.New("round already revealed")
	// ErrInvalidValue rejects vote values outside the deck.
	ErrInvalidValue = errors.New("invalid vote value")
)

// Machine governs the legality of round transitions. A round is Open until
// revealed, Revealed until reset, and permanently archived in history after
// reset. The machine checks legality against the store's current state and
// then delegates the mutation to the store.
type Machine struct {
	store store.Store
}

func NewMachine(s store.Store) *Machine {
	return &Machine{store: s}
}

// Cast records a vote in the session's current round, overwriting any
// earlier vote by the same participant (last-write-wins). Fails with
// ErrRoundClosed once the round is revealed.
func (m *Machine) Cast(sessionID, participantID string, value models.CardValue) (*models.Session, error) {
	if !value.Valid() {
		return nil, ErrInvalidValue
	}

	s, err := m.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if s.CurrentRound.Revealed() {
		return nil, ErrRoundClosed
	}
	return m.store.CastVote(sessionID, participantID, value)
}

// Reveal closes the current round and returns the session along with the
// statistics over its votes. A second reveal fails with ErrAlreadyRevealed.
// Reveal is never gated on "all participants voted"; partial reveals are
// allowed and the missing votes simply don't count.
func (m *Machine) Reveal(sessionID string) (*models.Session, stats.Statistics, error) {
	s, err := m.store.GetSession(sessionID)
	if err != nil {
		return nil, stats.Statistics{}, err
	}
	if s.CurrentRound.Revealed() {
		return nil, stats.Statistics{}, ErrAlreadyRevealed
	}

	s, err = m.store.RevealRound(sessionID)
	if err != nil {
		return nil, stats.Statistics{}, err
	}
	return s, stats.Calculate(s.CurrentRound.Votes), nil
}

// Reset archives the current round, whatever its state, and starts a fresh
// empty one. Legal at any time: resetting an open round discards its
// partial votes into history.
func (m *Machine) Reset(sessionID string) (*models.Session, error) {
	return m.store.ResetRound(sessionID)
}
