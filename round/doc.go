// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package round is the state machine governing vote, reveal, and reset.

# States

Per round: Open (no revealedAt) → Revealed (revealedAt set) → archived into
history on reset, replaced by a brand-new Open round.

# Transitions

	m := round.NewMachine(st)

	m.Cast(sessionID, participantID, value)  // Open only, else ErrRoundClosed
	m.Reveal(sessionID)                      // Open only, else ErrAlreadyRevealed
	m.Reset(sessionID)                       // always legal

Cast is last-write-wins per participant within a round. Reveal returns the
computed statistics alongside the session. Reveal does not require every
participant to have voted; hiding the reveal control until everyone has
voted is a client convenience, not a server rule.

The machine checks legality, the store applies the mutation. Two racing
casts on different participants both land; two racing reveals resolve to
one winner at the data level either way, since re-stamping revealedAt
changes no votes.
*/
package round
