// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// NewRound returns an open round with no votes.
func NewRound(id string) Round {
	return Round{
		ID:    id,
		Votes: make(map[string]*CardValue),
	}
}

// NewSession builds a session with its creator as the only participant and
// a fresh empty round.
func NewSession(id, topic string, creator Participant, roundID string, now time.Time) *Session {
	return &Session{
		ID:           id,
		Topic:        topic,
		Participants: []Participant{creator},
		CurrentRound: NewRound(roundID),
		History:      []Round{},
		CreatedAt:    now,
	}
}

// Revealed reports whether the round is closed.
func (r *Round) Revealed() bool {
	return r.RevealedAt != nil
}

// Clone returns a deep copy of the round.
func (r Round) Clone() Round {
	out := r
	out.Votes = make(map[string]*CardValue, len(r.Votes))
	for pid, v := range r.Votes {
		if v == nil {
			out.Votes[pid] = nil
			continue
		}
		card := *v
		out.Votes[pid] = &card
	}
	if r.RevealedAt != nil {
		at := *r.RevealedAt
		out.RevealedAt = &at
	}
	return out
}

// Clone returns a deep copy of the session. Mutating the copy never
// touches the original.
func (s *Session) Clone() *Session {
	out := *s
	out.Participants = append([]Participant(nil), s.Participants...)
	out.CurrentRound = s.CurrentRound.Clone()
	out.History = make([]Round, 0, len(s.History))
	for _, r := range s.History {
		out.History = append(out.History, r.Clone())
	}
	return &out
}

// Participant returns a pointer to the participant entry with the given id.
func (s *Session) Participant(participantID string) (*Participant, bool) {
	for i := range s.Participants {
		if s.Participants[i].ID == participantID {
			return &s.Participants[i], true
		}
	}
	return nil, false
}

// AddParticipant appends p to the participant list. Entries are never
// removed; a participant who leaves and rejoins gets a brand-new entry.
func (s *Session) AddParticipant(p Participant) {
	s.Participants = append(s.Participants, p)
}

// SetParticipantOnline flips the online flag of an existing participant
// in place. It reports whether the participant was found.
func (s *Session) SetParticipantOnline(participantID string, online bool) bool {
	p, ok := s.Participant(participantID)
	if !ok {
		return false
	}
	p.IsOnline = online
	return true
}

// CastVote upserts the participant's vote in the current round,
// last-write-wins. Legality (round still open) is the state machine's
// concern, not this mutator's.
func (s *Session) CastVote(participantID string, value CardValue) {
	if s.CurrentRound.Votes == nil {
		s.CurrentRound.Votes = make(map[string]*CardValue)
	}
	s.CurrentRound.Votes[participantID] = &value
}

// Reveal stamps the current round's reveal time. Votes are untouched.
func (s *Session) Reveal(now time.Time) {
	at := now
	s.CurrentRound.RevealedAt = &at
}

// Reset archives the current round verbatim into history and installs a
// fresh empty round under the given id.
func (s *Session) Reset(newRoundID string) {
	s.History = append(s.History, s.CurrentRound)
	s.CurrentRound = NewRound(newRoundID)
}

// Redacted returns a copy safe to show to anyone while the current round
// is open: present votes are masked to null so the payload exposes who has
// voted but not what. Revealed rounds and history pass through unchanged.
func (s *Session) Redacted() *Session {
	out := s.Clone()
	if out.CurrentRound.Revealed() {
		return out
	}
	for pid := range out.CurrentRound.Votes {
		out.CurrentRound.Votes[pid] = nil
	}
	return out
}
