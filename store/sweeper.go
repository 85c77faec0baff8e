// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper deletes idle sessions on a timer. It is best-effort housekeeping,
// not a correctness mechanism; nothing in the request path depends on it.
type Sweeper struct {
	store    Store
	interval time.Duration
	maxAge   time.Duration
}

func NewSweeper(s Store, interval, maxAge time.Duration) *Sweeper {
	return &Sweeper{store: s, interval: interval, maxAge: maxAge}
}

// Run sweeps once per interval until ctx is cancelled.
func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *Sweeper) sweep() {
	deleted, err := w.store.CleanupOldSessions(w.maxAge)
	if err != nil {
		slog.Error("session cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("cleaned up old sessions", "deleted", deleted, "max_age", w.maxAge)
	}
}
