// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pquinn/scrumdeck/round"
	"github.com/pquinn/scrumdeck/store"
)

// Gateway is the real-time fan-out hub. One instance exists per process,
// constructed at startup and injected into the router. Each live
// connection belongs to at most one session room; inbound events mutate
// the store through the round state machine and the resulting state is
// broadcast to the room.
type Gateway struct {
	store    store.Store
	machine  *round.Machine
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	rooms map[string]map[*client]bool
}

func New(st store.Store, m *round.Machine) *Gateway {
	return &Gateway{
		store:   st,
		machine: m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin policy is CORS middleware's concern; the gateway
			// accepts any upgrade.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		rooms: make(map[string]map[*client]bool),
	}
}

// ServeWS handles GET /ws, upgrading the request to a WebSocket connection.
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		gw:   g,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}

	slog.Info("client connected", "client_id", c.id, "remote", r.RemoteAddr)

	go c.writePump()
	c.readPump()
}

// joinRoom places c in the session's room, detaching it from any previous
// room first (a connection is in at most one room).
func (g *Gateway) joinRoom(c *client, sessionID string) {
	if c.sessionID != "" && c.sessionID != sessionID {
		g.detach(c)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms[sessionID]
	if !ok {
		room = make(map[*client]bool)
		g.rooms[sessionID] = room
	}
	room[c] = true
	c.sessionID = sessionID
}

// leaveRoom removes c from its room, dropping the room when it empties.
func (g *Gateway) leaveRoom(c *client) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms[c.sessionID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(g.rooms, c.sessionID)
	}
}

// detach is the shared leave path: mark the participant offline, tell the
// rest of the room, and remove the connection from it.
func (g *Gateway) detach(c *client) {
	sessionID, participantID := c.sessionID, c.participantID
	if sessionID == "" {
		return
	}

	g.leaveRoom(c)
	c.sessionID = ""
	c.participantID = ""

	if participantID == "" {
		return
	}

	session, err := g.store.SetParticipantOnline(sessionID, participantID, false)
	if err != nil {
		// Session may have been cleaned up already.
		return
	}

	g.broadcast(sessionID, nil, eventSessionState, statePayload{Session: session.Redacted()})
	g.broadcast(sessionID, nil, eventParticipantLeft, participantLeftPayload{ParticipantID: participantID})
}

// disconnect runs when a connection's read loop ends for any reason.
func (g *Gateway) disconnect(c *client) {
	slog.Info("client disconnected", "client_id", c.id)
	g.detach(c)
}

// broadcast fans an event out to every member of the session's room,
// excluding except when non-nil. Members too slow to drain their send
// buffer are dropped.
func (g *Gateway) broadcast(sessionID string, except *client, event string, data any) {
	frame, err := json.Marshal(outFrame{Type: event, Data: data})
	if err != nil {
		slog.Error("failed to encode broadcast", "error", err, "event", event)
		return
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	for member := range g.rooms[sessionID] {
		if member == except {
			continue
		}
		member.enqueue(frame)
	}
}

// roomSize reports current room membership, for tests and logs.
func (g *Gateway) roomSize(sessionID string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms[sessionID])
}
