// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidCard is returned when a vote value is not in the deck.
var ErrInvalidCard = errors.New("invalid card value")

// deckNumbers is the closed set of numeric estimation sizes.
var deckNumbers = []int{0, 1, 2, 3, 5, 8, 13, 21}

// CardValue is a single estimation vote: either one of the deck numbers
// or the "?" card meaning unknown/abstain. The zero value is Card(0),
// which is a legal vote.
type CardValue struct {
	number  int
	unknown bool
}

// Unknown is the "?" card.
var Unknown = CardValue{unknown: true}

// Card returns the numeric card for n. The result is only meaningful for
// deck numbers; use Valid to check membership.
func Card(n int) CardValue {
	return CardValue{number: n}
}

// Deck returns every legal card in ascending order, with Unknown last.
func Deck() []CardValue {
	deck := make([]CardValue, 0, len(deckNumbers)+1)
	for _, n := range deckNumbers {
		deck = append(deck, Card(n))
	}
	return append(deck, Unknown)
}

// IsUnknown reports whether c is the "?" card.
func (c CardValue) IsUnknown() bool {
	return c.unknown
}

// Number returns the numeric value of c and true, or 0 and false for "?".
func (c CardValue) Number() (int, bool) {
	if c.unknown {
		return 0, false
	}
	return c.number, true
}

// Valid reports whether c is one of the legal vote values.
func (c CardValue) Valid() bool {
	if c.unknown {
		return true
	}
	for _, n := range deckNumbers {
		if c.number == n {
			return true
		}
	}
	return false
}

func (c CardValue) String() string {
	if c.unknown {
		return "?"
	}
	return strconv.Itoa(c.number)
}

// MarshalJSON serializes numeric cards as JSON numbers and "?" as the
// one-character string.
func (c CardValue) MarshalJSON() ([]byte, error) {
	if c.unknown {
		return []byte(`"?"`), nil
	}
	return []byte(strconv.Itoa(c.number)), nil
}

// UnmarshalJSON accepts a deck number or the string "?". Anything else,
// including numbers outside the deck, fails with ErrInvalidCard.
func (c *CardValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != "?" {
			return ErrInvalidCard
		}
		*c = Unknown
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidCard
	}
	card := Card(n)
	if !card.Valid() {
		return ErrInvalidCard
	}
	*c = card
	return nil
}
