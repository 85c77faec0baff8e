// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gateway is the real-time fan-out hub over WebSocket.

# Wire Protocol

Frames are JSON. Client → server frames carry an event name, an ack id,
and a payload:

	{"type": "vote:cast", "id": 7, "data": {"sessionId": "ABCD2345", "value": 5}}

The server acknowledges with the same id:

	{"type": "ack", "id": 7, "data": {"ok": true}}

and pushes events without ids:

	{"type": "session:state", "data": {"session": {...}}}

# Events

Client → server: session:create, session:join, vote:cast, round:reveal,
round:reset. Server → client: session:state, participant:joined,
participant:left, vote:updated, round:revealed, round:reset.

Failures acknowledge {ok:false} with no detail code; clients always have
session:state as a parallel source of truth.

# Rooms and Ordering

Each connection belongs to at most one session room. A single read loop
per connection keeps that connection's events ordered; no order is
promised across connections racing on one session. Room broadcasts are
enqueued before the sender's ack, and always reflect store state after the
triggering mutation. Consumers that stop draining their socket are
disconnected rather than allowed to stall the room.

# Vote Hiding

vote:updated names the voter but never the value, and any session payload
emitted while the current round is open has its vote values masked to
null. Values first appear in round:revealed and in states of a revealed
round.
*/
package gateway
