// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats computes aggregate vote statistics for a revealed round.

Calculate is a pure function over a votes mapping:

	st := stats.Calculate(session.CurrentRound.Votes)

Average and median are computed over numeric votes only and are nil when
there are none. Mode considers every cast vote, "?" included, with ties
broken by the first value encountered walking participant ids in ascending
order. Explicit non-votes (null) and participants who never voted are
excluded from everything.
*/
package stats
