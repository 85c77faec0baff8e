// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Internal data structures:

  - Session: owns its participants, the current round, and round history
  - Participant: joined member; isOnline flips false on disconnect
  - Round: votes keyed by participant id; open until revealedAt is set
  - CardValue: one of {0,1,2,3,5,8,13,21} or the "?" card

# Vote Values

CardValue is a closed variant rather than a raw union: numeric cards and
the Unknown card are constructed via Card(n) and Unknown, and the
numeric/non-numeric split is checked with Number(). On the wire a numeric
card is a JSON number and Unknown is the string "?".

# Session Mutators

The mutators shared by every store implementation live here as methods:

	s.AddParticipant(p)
	s.SetParticipantOnline(id, online)
	s.CastVote(participantID, value)
	s.Reveal(now)
	s.Reset(newRoundID)

None of them enforce round-state legality; that is the round package's job.

# Redaction

Session.Redacted() masks vote values of an open current round to null so
broadcasts and HTTP payloads reveal who has voted without leaking what.

# Request Types

Types for parsing incoming JSON:

  - CreateSessionRequest: creatorName, topic
  - JoinSessionRequest: sessionId, name
  - VoteRequest: participantId, value

# Response Types

Types for JSON responses:

  - CreateSessionResponse: sessionId, joinUrl
  - JoinSessionResponse: session, participantId
  - SessionResponse: session
  - ErrorResponse: error
*/
package models
