package ident

import (
	"strings"
	"testing"
)

func TestNewSessionID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewSessionID()
		if err != nil {
			t.Fatalf("NewSessionID failed: %v", err)
		}
		if len(id) != 8 {
			t.Fatalf("Expected 8-character id, got %q", id)
		}
		for _, c := range id {
			if !strings.ContainsRune(sessionAlphabet, c) {
				t.Fatalf("Id %q contains %q outside the session alphabet", id, c)
			}
		}
		if seen[id] {
			t.Fatalf("Duplicate session id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestNewParticipantID(t *testing.T) {
	id, err := NewParticipantID()
	if err != nil {
		t.Fatalf("NewParticipantID failed: %v", err)
	}
	if len(id) != 12 {
		t.Errorf("Expected 12-character id, got %q", id)
	}
	for _, c := range id {
		if !strings.ContainsRune(participantAlphabet, c) {
			t.Errorf("Id %q contains %q outside the participant alphabet", id, c)
		}
	}
}

func TestNewRoundID(t *testing.T) {
	id, err := NewRoundID()
	if err != nil {
		t.Fatalf("NewRoundID failed: %v", err)
	}
	if len(id) != 12 {
		t.Errorf("Expected 12-character id, got %q", id)
	}
}

func TestValidateSessionID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"valid all digits", "23456789", true},
		{"valid mixed", "ABCD2345", true},
		{"too short", "ABC", false},
		{"too long", "ABCDEFGH2", false},
		{"empty", "", false},
		{"lowercase rejected", "abcd2345", false},
		{"ambiguous zero rejected", "0BCD2345", false},
		{"ambiguous O rejected", "OBCD2345", false},
		{"ambiguous I rejected", "IBCD2345", false},
		{"ambiguous L rejected", "LBCD2345", false},
		{"one rejected", "1BCD2345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateSessionID(tt.id); got != tt.valid {
				t.Errorf("ValidateSessionID(%q) = %v, want %v", tt.id, got, tt.valid)
			}
		})
	}
}

func TestGeneratedSessionIDsValidate(t *testing.T) {
	for i := 0; i < 50; i++ {
		id, err := NewSessionID()
		if err != nil {
			t.Fatalf("NewSessionID failed: %v", err)
		}
		if !ValidateSessionID(id) {
			t.Fatalf("Generated id %q fails validation", id)
		}
	}
}
