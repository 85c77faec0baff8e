// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request-response facade.

# Endpoints

	POST /sessions           → Create (mints session + creator + round)
	GET  /sessions/{id}      → Get
	POST /sessions/{id}/vote → Vote (delegates to the round state machine)

The handler is a struct with store, state machine, and config dependencies:

	h := handlers.NewSessionHandler(st, machine, cfg)

# Error Contract

  - 400 "Invalid session ID format" for a malformed session code
  - 400 "Invalid request" for a malformed JSON body
  - 400 "Creator name is required" / "Missing participantId or value"
  - 400 "Round already revealed" for a vote after reveal
  - 404 "Session not found"

# Vote Visibility

Session payloads returned while the current round is open are redacted:
present votes appear as null so the response shows who voted, never what.
*/
package handlers
