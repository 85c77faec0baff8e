// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/pquinn/scrumdeck/cliparse"
	"github.com/pquinn/scrumdeck/gateway"
	"github.com/pquinn/scrumdeck/handlers"
	"github.com/pquinn/scrumdeck/middleware"
	"github.com/pquinn/scrumdeck/round"
	"github.com/pquinn/scrumdeck/store"
)

func NewRouter(st store.Store, machine *round.Machine, gw *gateway.Gateway, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	sessionHandler := handlers.NewSessionHandler(st, machine, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Request-response facade
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Create))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.Get))
	mux.HandleFunc("POST /sessions/{id}/vote", middleware.WithLogging(sessionHandler.Vote))

	// Real-time channel (not wrapped in WithLogging; the gateway logs
	// connection lifecycle itself)
	mux.HandleFunc("GET /ws", gw.ServeWS)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("scrumdeck API v1"))
	})

	return middleware.CORS(mux)
}
