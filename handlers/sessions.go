// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pquinn/scrumdeck/cliparse"
	"github.com/pquinn/scrumdeck/ident"
	"github.com/pquinn/scrumdeck/middleware"
	"github.com/pquinn/scrumdeck/models"
	"github.com/pquinn/scrumdeck/round"
	"github.com/pquinn/scrumdeck/store"
)

// SessionHandler is the synchronous fallback surface: initial page loads
// and voting when no live channel exists yet. Everything it does is also
// reachable over the gateway.
type SessionHandler struct {
	store   store.Store
	machine *round.Machine
	cfg     cliparse.Config
}

func NewSessionHandler(st store.Store, m *round.Machine, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{store: st, machine: m, cfg: cfg}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}

	creatorName := strings.TrimSpace(req.CreatorName)
	if creatorName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Creator name is required")
		return
	}

	sessionID, err := ident.NewSessionID()
	if err != nil {
		slog.Error("failed to generate session id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	participantID, err := ident.NewParticipantID()
	if err != nil {
		slog.Error("failed to generate participant id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	roundID, err := ident.NewRoundID()
	if err != nil {
		slog.Error("failed to generate round id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	now := time.Now()
	creator := models.Participant{
		ID:       participantID,
		Name:     creatorName,
		JoinedAt: now,
		IsOnline: true,
	}
	session := models.NewSession(sessionID, strings.TrimSpace(req.Topic), creator, roundID, now)

	if err := h.store.CreateSession(session); err != nil {
		slog.Error("failed to create session", "error", err, "session_id", sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("session created", "session_id", sessionID, "creator", creatorName)

	middleware.JSONResponse(w, http.StatusOK, models.CreateSessionResponse{
		SessionID: sessionID,
		JoinURL:   h.cfg.BaseURL + "/session/" + sessionID,
	})
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if !ident.ValidateSessionID(sessionID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	session, err := h.store.GetSession(sessionID)
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to get session", "error", err, "session_id", sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Open-round vote values never leave the server.
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Session: session.Redacted(),
	})
}

// Vote handles POST /sessions/{id}/vote
func (h *SessionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if !ident.ValidateSessionID(sessionID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.ParticipantID == "" || req.Value == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing participantId or value")
		return
	}

	session, err := h.machine.Cast(sessionID, req.ParticipantID, *req.Value)
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if errors.Is(err, round.ErrRoundClosed) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Round already revealed")
		return
	}
	if err != nil {
		slog.Error("failed to cast vote", "error", err, "session_id", sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "session_id", sessionID, "participant_id", req.ParticipantID)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Session: session.Redacted(),
	})
}
