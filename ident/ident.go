// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"fmt"
)

// sessionAlphabet has 32 symbols; 0, O, 1, I and L are excluded because
// they are easy to misread when a code is shared by voice or hand.
const sessionAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// participantAlphabet is plain lowercase-alphanumeric.
const participantAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const (
	sessionIDLen     = 8
	participantIDLen = 12
)

// NewSessionID returns an 8-character session code drawn uniformly from
// the session alphabet. Codes are hard to guess but are not a security
// boundary.
func NewSessionID() (string, error) {
	return randomString(sessionAlphabet, sessionIDLen)
}

// NewParticipantID returns a 12-character lowercase-alphanumeric id.
func NewParticipantID() (string, error) {
	return randomString(participantAlphabet, participantIDLen)
}

// NewRoundID mints a round id. Rounds share the participant generator;
// the separate name just keeps call sites readable.
func NewRoundID() (string, error) {
	return randomString(participantAlphabet, participantIDLen)
}

// ValidateSessionID reports whether s is exactly 8 characters from the
// session alphabet. It is the sole shape gate before a session lookup.
func ValidateSessionID(s string) bool {
	if len(s) != sessionIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !inAlphabet(sessionAlphabet, s[i]) {
			return false
		}
	}
	return true
}

func inAlphabet(alphabet string, c byte) bool {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return true
		}
	}
	return false
}

// randomString draws length symbols uniformly from alphabet using
// crypto/rand. Bytes that would bias the draw are rejected, so alphabets
// whose size does not divide 256 stay uniform.
func randomString(alphabet string, length int) (string, error) {
	n := len(alphabet)
	limit := byte(256 - 256%n)

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate random id: %w", err)
		}
		for _, b := range buf {
			if limit != 0 && b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%n])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
