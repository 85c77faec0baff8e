package models

import (
	"encoding/json"
	"testing"
)

func TestCardValueValid(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5, 8, 13, 21} {
		if !Card(n).Valid() {
			t.Errorf("Expected Card(%d) to be valid", n)
		}
	}
	for _, n := range []int{-1, 4, 6, 7, 9, 22, 100} {
		if Card(n).Valid() {
			t.Errorf("Expected Card(%d) to be invalid", n)
		}
	}
	if !Unknown.Valid() {
		t.Error("Expected Unknown to be valid")
	}
}

func TestCardValueNumber(t *testing.T) {
	n, ok := Card(8).Number()
	if !ok || n != 8 {
		t.Errorf("Expected (8, true), got (%d, %v)", n, ok)
	}
	if _, ok := Unknown.Number(); ok {
		t.Error("Expected Unknown.Number() to report false")
	}
}

func TestCardValueMarshalJSON(t *testing.T) {
	tests := []struct {
		card CardValue
		want string
	}{
		{Card(0), "0"},
		{Card(5), "5"},
		{Card(21), "21"},
		{Unknown, `"?"`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(tt.card)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", tt.card, err)
		}
		if string(b) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.card, b, tt.want)
		}
	}
}

func TestCardValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CardValue
		wantErr bool
	}{
		{"numeric", "5", Card(5), false},
		{"zero", "0", Card(0), false},
		{"unknown", `"?"`, Unknown, false},
		{"outside deck", "4", CardValue{}, true},
		{"negative", "-1", CardValue{}, true},
		{"fractional", "2.5", CardValue{}, true},
		{"other string", `"five"`, CardValue{}, true},
		{"bool", "true", CardValue{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c CardValue
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error unmarshaling %s, got %v", tt.input, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if c != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, c, tt.want)
			}
		})
	}
}

func TestVotesMapJSONRoundTrip(t *testing.T) {
	five := Card(5)
	q := Unknown
	votes := map[string]*CardValue{
		"a": &five,
		"b": &q,
		"c": nil,
	}

	b, err := json.Marshal(votes)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]*CardValue
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded["a"] == nil || *decoded["a"] != Card(5) {
		t.Errorf("Expected a=5, got %v", decoded["a"])
	}
	if decoded["b"] == nil || !decoded["b"].IsUnknown() {
		t.Errorf("Expected b=?, got %v", decoded["b"])
	}
	if v, present := decoded["c"]; !present || v != nil {
		t.Errorf("Expected c present and null, got %v (present=%v)", v, present)
	}
}

func TestDeck(t *testing.T) {
	deck := Deck()
	if len(deck) != 9 {
		t.Fatalf("Expected 9 cards, got %d", len(deck))
	}
	if !deck[len(deck)-1].IsUnknown() {
		t.Error("Expected Unknown last")
	}
	for _, c := range deck {
		if !c.Valid() {
			t.Errorf("Deck card %v is invalid", c)
		}
	}
}
