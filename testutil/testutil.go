// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pquinn/scrumdeck/db"
	"github.com/pquinn/scrumdeck/ident"
	"github.com/pquinn/scrumdeck/models"
)

// SetupTestDB opens an in-memory SQLite database with the full schema,
// for exercising the SQL store without an external server.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second pooled connection would see its own empty :memory: database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewTestSession builds a session with the given participant names, the
// first being the creator. Ids are real generator output.
func NewTestSession(t *testing.T, names ...string) *models.Session {
	t.Helper()

	if len(names) == 0 {
		names = []string{"Alice"}
	}

	sessionID, err := ident.NewSessionID()
	if err != nil {
		t.Fatalf("Failed to generate session id: %v", err)
	}
	roundID, err := ident.NewRoundID()
	if err != nil {
		t.Fatalf("Failed to generate round id: %v", err)
	}

	now := time.Now()
	creator := testParticipant(t, names[0], now)
	session := models.NewSession(sessionID, "Test topic", creator, roundID, now)
	for _, name := range names[1:] {
		session.AddParticipant(testParticipant(t, name, now))
	}
	return session
}

func testParticipant(t *testing.T, name string, joinedAt time.Time) models.Participant {
	t.Helper()
	id, err := ident.NewParticipantID()
	if err != nil {
		t.Fatalf("Failed to generate participant id: %v", err)
	}
	return models.Participant{ID: id, Name: name, JoinedAt: joinedAt, IsOnline: true}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
