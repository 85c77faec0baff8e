// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"sort"

	"github.com/pquinn/scrumdeck/models"
)

// Statistics summarizes a round's votes at reveal time. It is derived,
// never stored. Average and median cover numeric votes only; mode covers
// every vote including "?". Nil fields mean "no input to compute from".
type Statistics struct {
	Average      *float64          `json:"average"`
	Median       *float64          `json:"median"`
	Mode         *models.CardValue `json:"mode"`
	TotalVotes   int               `json:"totalVotes"`
	NumericVotes int               `json:"numericVotes"`
}

// Calculate computes statistics over a votes mapping. Nil values are
// explicit non-votes and are excluded, as are absent keys. The function is
// pure; no rounding happens here, presentation rounds for display.
//
// Mode ties are broken by the first-encountered value walking participant
// ids in ascending order. Go maps have no iteration order, so the sorted
// walk is what makes the result deterministic.
func Calculate(votes map[string]*models.CardValue) Statistics {
	ids := make([]string, 0, len(votes))
	for pid := range votes {
		ids = append(ids, pid)
	}
	sort.Strings(ids)

	var voteValues []models.CardValue
	var numericValues []int
	for _, pid := range ids {
		v := votes[pid]
		if v == nil {
			continue
		}
		voteValues = append(voteValues, *v)
		if n, ok := v.Number(); ok {
			numericValues = append(numericValues, n)
		}
	}

	out := Statistics{
		TotalVotes:   len(voteValues),
		NumericVotes: len(numericValues),
	}

	if len(numericValues) > 0 {
		avg := mean(numericValues)
		out.Average = &avg

		sorted := append([]int(nil), numericValues...)
		sort.Ints(sorted)
		med := median(sorted)
		out.Median = &med
	}

	out.Mode = mode(voteValues)
	return out
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// median expects values sorted ascending.
func median(values []int) float64 {
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return float64(values[mid-1]+values[mid]) / 2
	}
	return float64(values[mid])
}

// mode returns the most frequent value, first-encountered wins ties.
func mode(values []models.CardValue) *models.CardValue {
	if len(values) == 0 {
		return nil
	}

	frequency := make(map[models.CardValue]int, len(values))
	for _, v := range values {
		frequency[v]++
	}

	maxCount := 0
	var best models.CardValue
	for _, v := range values {
		if frequency[v] > maxCount {
			maxCount = frequency[v]
			best = v
		}
	}
	return &best
}
