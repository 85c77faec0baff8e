// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Scrumdeck API server.

Scrumdeck is a collaborative planning-poker service: participants join a
shared session, cast hidden votes on a work item, reveal all votes at
once, see aggregate statistics, and start a new round.

# Starting the Server

The in-memory store needs no configuration:

	go run main.go

With a persistent backend:

	DATABASE_TYPE=sqlite DATABASE_URL=scrumdeck.db go run main.go
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings:

  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): memory, sqlite, or postgres (default: memory)
  - DATABASE_URL (-d): required for sqlite/postgres
  - BASE_URL (-b): public base URL used in join links
  - CLEANUP_INTERVAL_MINUTES, SESSION_MAX_AGE_HOURS: idle-session sweep

# Architecture

The server uses a handler-based architecture with dependency injection:

  - models: domain types, vote value variant, session mutators
  - ident: session/participant/round identifier policy
  - stats: vote statistics at reveal time
  - store: keyed session persistence (memory, sqlite, postgres) + sweeper
  - round: vote/reveal/reset state machine
  - gateway: WebSocket fan-out hub, one per process
  - handlers: HTTP request-response facade
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - db: schema creation for the SQL store
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
