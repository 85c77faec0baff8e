// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides keyed persistence of session aggregates.

# Store Interface

All handlers share one Store instance, injected at startup. Each method is
a single atomic read-modify-write returning a snapshot of the post-mutation
session, or ErrNotFound:

	s, err := st.CastVote(sessionID, participantID, models.Card(5))

Domain mutators apply unconditionally; the round package gates legality
(no casting on a revealed round, no double reveal) before the store is
reached.

# Implementations

  - MemoryStore: mutex-guarded map, the default. Deep copies in and out.
  - SQLStore: one JSON document row per session, PostgreSQL or SQLite
    behind database/sql. Same contract, for deployments that want sessions
    to survive a restart.

# Cleanup

Sweeper runs CleanupOldSessions periodically:

	sw := store.NewSweeper(st, time.Hour, 24*time.Hour)
	go sw.Run(ctx)

Sweeps are best-effort; a missed sweep only delays deletion.
*/
package store
