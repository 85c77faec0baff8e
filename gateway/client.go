// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	// Outbound queue depth before a consumer counts as too slow.
	sendBufferSize = 32
)

// client is one live WebSocket connection. sessionID and participantID
// are only touched from the connection's own read loop, so they need no
// lock; the send channel is the only thing other goroutines reach.
type client struct {
	id   string
	gw   *Gateway
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once

	sessionID     string
	participantID string
}

// close tears the connection down exactly once. Safe to call from any
// goroutine; the read loop notices the closed conn and runs disconnect.
func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// enqueue queues a frame for delivery. A client whose buffer is full is
// dropped rather than allowed to stall the whole room.
func (c *client) enqueue(frame []byte) {
	select {
	case c.send <- frame:
	default:
		slog.Warn("dropping slow client", "client_id", c.id, "session_id", c.sessionID)
		c.close()
	}
}

// reply marshals and queues a frame built on this side (acks and events).
func (c *client) reply(f outFrame) {
	frame, err := json.Marshal(f)
	if err != nil {
		slog.Error("failed to encode frame", "error", err, "type", f.Type)
		return
	}
	c.enqueue(frame)
}

// readPump processes inbound frames one at a time, which is what gives
// per-connection event ordering.
func (c *client) readPump() {
	defer func() {
		c.close()
		c.gw.disconnect(c)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read failed", "error", err, "client_id", c.id)
			}
			return
		}

		var f frame
		if err := json.Unmarshal(raw, &f); err != nil {
			slog.Warn("malformed frame", "error", err, "client_id", c.id)
			continue
		}
		c.gw.handleEvent(c, f)
	}
}

// writePump owns all writes to the connection.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case frame := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
