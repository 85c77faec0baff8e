// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pquinn/scrumdeck/cliparse"
	"github.com/pquinn/scrumdeck/ident"
	"github.com/pquinn/scrumdeck/models"
	"github.com/pquinn/scrumdeck/round"
	"github.com/pquinn/scrumdeck/store"
	"github.com/pquinn/scrumdeck/testutil"
)

func getTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:    3000,
		BaseURL: "http://localhost:3000",
	}
}

func newTestHandler() (*SessionHandler, store.Store) {
	st := store.NewMemoryStore()
	return NewSessionHandler(st, round.NewMachine(st), getTestConfig()), st
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp.Error
}

func TestCreateSession(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid create",
			requestBody:    `{"creatorName":"Alice","topic":"Sprint 12"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no topic",
			requestBody:    `{"creatorName":"Alice"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing creator name",
			requestBody:    `{"topic":"Sprint 12"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Creator name is required",
		},
		{
			name:           "whitespace creator name",
			requestBody:    `{"creatorName":"   "}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Creator name is required",
		},
		{
			name:           "malformed json",
			requestBody:    `{"creatorName":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, st := newTestHandler()

			req := httptest.NewRequest("POST", "/sessions", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedError != "" {
				if got := decodeError(t, w); got != tt.expectedError {
					t.Errorf("Expected error %q, got %q", tt.expectedError, got)
				}
				return
			}

			var resp models.CreateSessionResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if !ident.ValidateSessionID(resp.SessionID) {
				t.Errorf("Expected well-formed session id, got %q", resp.SessionID)
			}
			if resp.JoinURL != "http://localhost:3000/session/"+resp.SessionID {
				t.Errorf("Unexpected join url %q", resp.JoinURL)
			}

			// The session is immediately readable with the creator enrolled.
			session, err := st.GetSession(resp.SessionID)
			if err != nil {
				t.Fatalf("Created session not in store: %v", err)
			}
			if len(session.Participants) != 1 || session.Participants[0].Name != "Alice" {
				t.Error("Expected the creator as the sole participant")
			}
			if session.CurrentRound.Revealed() {
				t.Error("Expected a fresh open round")
			}
		})
	}
}

func TestGetSession(t *testing.T) {
	handler, st := newTestHandler()
	session := testutil.NewTestSession(t, "Alice", "Bob")
	if err := st.CreateSession(session); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}

	tests := []struct {
		name           string
		sessionID      string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "existing session",
			sessionID:      session.ID,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "well-formed but absent",
			sessionID:      "23456789",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Session not found",
		},
		{
			name:           "malformed id",
			sessionID:      "short",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid session ID format",
		},
		{
			name:           "ambiguous characters rejected",
			sessionID:      "O0O0O0O0",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid session ID format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/sessions/"+tt.sessionID, nil)
			req.SetPathValue("id", tt.sessionID)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedError != "" {
				if got := decodeError(t, w); got != tt.expectedError {
					t.Errorf("Expected error %q, got %q", tt.expectedError, got)
				}
				return
			}

			var resp models.SessionResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Session == nil || resp.Session.ID != session.ID {
				t.Error("Expected the seeded session in the response")
			}
			if len(resp.Session.Participants) != 2 {
				t.Errorf("Expected 2 participants, got %d", len(resp.Session.Participants))
			}
		})
	}
}

func TestGetSessionHidesOpenRoundVotes(t *testing.T) {
	handler, st := newTestHandler()
	session := testutil.NewTestSession(t, "Alice")
	pid := session.Participants[0].ID
	if err := st.CreateSession(session); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}
	if _, err := st.CastVote(session.ID, pid, models.Card(8)); err != nil {
		t.Fatalf("Failed to seed vote: %v", err)
	}

	req := testutil.MakeRequest("GET", "/sessions/"+session.ID, nil, nil)
	req.SetPathValue("id", session.ID)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	// The voter's presence is visible but the value must read as null.
	var raw struct {
		Session struct {
			CurrentRound struct {
				Votes map[string]json.RawMessage `json:"votes"`
			} `json:"currentRound"`
		} `json:"session"`
	}
	testutil.AssertJSON(t, w, &raw)
	v, ok := raw.Session.CurrentRound.Votes[pid]
	if !ok {
		t.Fatal("Expected the vote key present")
	}
	if string(v) != "null" {
		t.Errorf("Expected open-round vote masked to null, got %s", v)
	}
}

func TestVote(t *testing.T) {
	handler, st := newTestHandler()
	session := testutil.NewTestSession(t, "Alice")
	pid := session.Participants[0].ID
	if err := st.CreateSession(session); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}

	revealed := testutil.NewTestSession(t, "Bob")
	if err := st.CreateSession(revealed); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}
	if _, err := st.RevealRound(revealed.ID); err != nil {
		t.Fatalf("Failed to reveal round: %v", err)
	}

	tests := []struct {
		name           string
		sessionID      string
		requestBody    string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "numeric vote",
			sessionID:      session.ID,
			requestBody:    `{"participantId":"` + pid + `","value":5}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown vote",
			sessionID:      session.ID,
			requestBody:    `{"participantId":"` + pid + `","value":"?"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing participant id",
			sessionID:      session.ID,
			requestBody:    `{"value":5}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing participantId or value",
		},
		{
			name:           "missing value",
			sessionID:      session.ID,
			requestBody:    `{"participantId":"` + pid + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing participantId or value",
		},
		{
			name:           "off-deck value",
			sessionID:      session.ID,
			requestBody:    `{"participantId":"` + pid + `","value":4}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request",
		},
		{
			name:           "malformed json",
			sessionID:      session.ID,
			requestBody:    `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request",
		},
		{
			name:           "malformed session id",
			sessionID:      "nope",
			requestBody:    `{"participantId":"` + pid + `","value":5}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid session ID format",
		},
		{
			name:           "absent session",
			sessionID:      "23456789",
			requestBody:    `{"participantId":"` + pid + `","value":5}`,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Session not found",
		},
		{
			name:           "round already revealed",
			sessionID:      revealed.ID,
			requestBody:    `{"participantId":"` + pid + `","value":5}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Round already revealed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/sessions/"+tt.sessionID+"/vote", bytes.NewReader([]byte(tt.requestBody)))
			req.SetPathValue("id", tt.sessionID)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedError != "" {
				if got := decodeError(t, w); got != tt.expectedError {
					t.Errorf("Expected error %q, got %q", tt.expectedError, got)
				}
			}
		})
	}

	// Successful votes land in the store with the real value.
	got, err := st.GetSession(session.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if v := got.CurrentRound.Votes[pid]; v == nil || !v.IsUnknown() {
		t.Errorf("Expected last vote ? recorded, got %v", v)
	}
}
