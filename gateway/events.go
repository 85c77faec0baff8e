// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/pquinn/scrumdeck/ident"
	"github.com/pquinn/scrumdeck/models"
	"github.com/pquinn/scrumdeck/stats"
)

// Client → server event names. Each expects an acknowledgment.
const (
	eventSessionCreate = "session:create"
	eventSessionJoin   = "session:join"
	eventVoteCast      = "vote:cast"
	eventRoundReveal   = "round:reveal"
	eventRoundReset    = "round:reset"
)

// Server → client event names, no acknowledgment.
const (
	eventAck               = "ack"
	eventSessionState      = "session:state"
	eventParticipantJoined = "participant:joined"
	eventParticipantLeft   = "participant:left"
	eventVoteUpdated       = "vote:updated"
	eventRoundRevealed     = "round:revealed"
	eventRoundWasReset     = "round:reset"
)

// frame is an inbound message: the event name, a client-chosen ack id, and
// the event payload.
type frame struct {
	Type string          `json:"type"`
	ID   int64           `json:"id,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

type outFrame struct {
	Type string `json:"type"`
	ID   int64  `json:"id,omitempty"`
	Data any    `json:"data,omitempty"`
}

// Inbound payloads.

type createPayload struct {
	CreatorName string `json:"creatorName"`
	Topic       string `json:"topic,omitempty"`
}

type joinPayload struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
}

type votePayload struct {
	SessionID string            `json:"sessionId"`
	Value     *models.CardValue `json:"value"`
}

type sessionRefPayload struct {
	SessionID string `json:"sessionId"`
}

// ackPayload acknowledges a client event. Failures carry ok=false and
// nothing else; the client resynchronizes from the next session:state.
type ackPayload struct {
	OK            bool            `json:"ok"`
	SessionID     string          `json:"sessionId,omitempty"`
	Session       *models.Session `json:"session,omitempty"`
	ParticipantID string          `json:"participantId,omitempty"`
}

// Outbound event payloads.

type statePayload struct {
	Session *models.Session `json:"session"`
}

type participantJoinedPayload struct {
	Participant models.Participant `json:"participant"`
}

type participantLeftPayload struct {
	ParticipantID string `json:"participantId"`
}

type voteUpdatedPayload struct {
	// The vote's value is deliberately absent: votes stay hidden until
	// reveal.
	ParticipantID string `json:"participantId"`
}

type roundRevealedPayload struct {
	Stats stats.Statistics `json:"stats"`
	Round models.Round     `json:"round"`
}

type roundResetPayload struct {
	Round models.Round `json:"round"`
}

// handleEvent dispatches one inbound frame. Broadcasts are enqueued before
// the sender's ack, so a client never sees its ack ahead of the room-wide
// state it caused.
func (g *Gateway) handleEvent(c *client, f frame) {
	switch f.Type {
	case eventSessionCreate:
		g.handleCreate(c, f)
	case eventSessionJoin:
		g.handleJoin(c, f)
	case eventVoteCast:
		g.handleVote(c, f)
	case eventRoundReveal:
		g.handleReveal(c, f)
	case eventRoundReset:
		g.handleReset(c, f)
	default:
		slog.Warn("unknown event", "type", f.Type, "client_id", c.id)
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
	}
}

func (g *Gateway) handleCreate(c *client, f frame) {
	var p createPayload
	if err := json.Unmarshal(f.Data, &p); err != nil || strings.TrimSpace(p.CreatorName) == "" {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	sessionID, err := ident.NewSessionID()
	if err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}
	participantID, err := ident.NewParticipantID()
	if err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}
	roundID, err := ident.NewRoundID()
	if err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	now := time.Now()
	creator := models.Participant{
		ID:       participantID,
		Name:     strings.TrimSpace(p.CreatorName),
		JoinedAt: now,
		IsOnline: true,
	}
	session := models.NewSession(sessionID, strings.TrimSpace(p.Topic), creator, roundID, now)

	if err := g.store.CreateSession(session); err != nil {
		slog.Error("failed to create session", "error", err, "client_id", c.id)
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	g.joinRoom(c, sessionID)
	c.participantID = participantID

	slog.Info("session created", "session_id", sessionID, "creator", creator.Name)

	g.broadcast(sessionID, c, eventSessionState, statePayload{Session: session.Redacted()})
	c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: true, SessionID: sessionID}})
}

func (g *Gateway) handleJoin(c *client, f frame) {
	var p joinPayload
	if err := json.Unmarshal(f.Data, &p); err != nil || strings.TrimSpace(p.Name) == "" {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	participantID, err := ident.NewParticipantID()
	if err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	participant := models.Participant{
		ID:       participantID,
		Name:     strings.TrimSpace(p.Name),
		JoinedAt: time.Now(),
		IsOnline: true,
	}

	session, err := g.store.AddParticipant(p.SessionID, participant)
	if err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	g.joinRoom(c, p.SessionID)
	c.participantID = participantID

	slog.Info("participant joined", "session_id", p.SessionID, "participant_id", participantID)

	g.broadcast(p.SessionID, c, eventParticipantJoined, participantJoinedPayload{Participant: participant})
	c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{
		OK:            true,
		Session:       session.Redacted(),
		ParticipantID: participantID,
	}})
}

func (g *Gateway) handleVote(c *client, f frame) {
	var p votePayload
	if err := json.Unmarshal(f.Data, &p); err != nil || p.Value == nil || c.participantID == "" {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	session, err := g.machine.Cast(p.SessionID, c.participantID, *p.Value)
	if err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	// The value stays hidden: vote:updated names the voter only, and the
	// accompanying state is redacted while the round is open.
	g.broadcast(p.SessionID, c, eventVoteUpdated, voteUpdatedPayload{ParticipantID: c.participantID})
	g.broadcast(p.SessionID, c, eventSessionState, statePayload{Session: session.Redacted()})
	c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: true}})
}

func (g *Gateway) handleReveal(c *client, f frame) {
	var p sessionRefPayload
	if err := json.Unmarshal(f.Data, &p); err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	session, st, err := g.machine.Reveal(p.SessionID)
	if err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	slog.Info("round revealed", "session_id", p.SessionID, "round_id", session.CurrentRound.ID,
		"total_votes", st.TotalVotes)

	// Everyone sees the reveal, the requester included.
	g.broadcast(p.SessionID, nil, eventRoundRevealed, roundRevealedPayload{Stats: st, Round: session.CurrentRound})
	g.broadcast(p.SessionID, nil, eventSessionState, statePayload{Session: session})
	c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: true}})
}

func (g *Gateway) handleReset(c *client, f frame) {
	var p sessionRefPayload
	if err := json.Unmarshal(f.Data, &p); err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	session, err := g.machine.Reset(p.SessionID)
	if err != nil {
		c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: false}})
		return
	}

	slog.Info("round reset", "session_id", p.SessionID, "round_id", session.CurrentRound.ID)

	g.broadcast(p.SessionID, nil, eventRoundWasReset, roundResetPayload{Round: session.CurrentRound})
	g.broadcast(p.SessionID, nil, eventSessionState, statePayload{Session: session.Redacted()})
	c.reply(outFrame{Type: eventAck, ID: f.ID, Data: ackPayload{OK: true}})
}
