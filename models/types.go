package models

import "time"

// Request types

type CreateSessionRequest struct {
	CreatorName string `json:"creatorName"`
	Topic       string `json:"topic,omitempty"`
}

type JoinSessionRequest struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
}

// Value is a pointer so a missing or null value can be told apart from a
// cast of Card(0).
type VoteRequest struct {
	ParticipantID string     `json:"participantId"`
	Value         *CardValue `json:"value"`
}

// Response types

type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
	JoinURL   string `json:"joinUrl"`
}

type JoinSessionResponse struct {
	Session       *Session `json:"session"`
	ParticipantID string   `json:"participantId"`
}

type SessionResponse struct {
	Session *Session `json:"session"`
}

// Domain types

type Participant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
	IsOnline bool      `json:"isOnline"`
}

// A Round is open while RevealedAt is nil. Vote values are pointers so an
// explicit non-vote (null) stays distinct from an absent key.
type Round struct {
	ID         string                `json:"id"`
	Votes      map[string]*CardValue `json:"votes"`
	RevealedAt *time.Time            `json:"revealedAt,omitempty"`
}

type Session struct {
	ID           string        `json:"id"`
	Topic        string        `json:"topic,omitempty"`
	Participants []Participant `json:"participants"`
	CurrentRound Round         `json:"currentRound"`
	History      []Round       `json:"history"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
