// api/stats/picker.go
package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"drawboard/api/models"
)

// Ball ranges for the current Powerball matrix.
const (
	MaxMainBall  = 69
	MaxPowerball = 26
)

// How many near-miss draws to surface when there is no jackpot hit.
const bestDrawCount = 3

// Validation reasons surfaced one at a time, in fixed precedence.
const (
	ReasonDuplicates       = "duplicate numbers are not allowed"
	ReasonMissingNumbers   = "enter five main numbers between 1 and 69"
	ReasonInvalidPowerball = "enter a Powerball between 1 and 26"
)

// ClampBall normalizes a single ball input field on every keystroke.
// Non-numeric input clears the field; fractional values truncate toward
// zero; out-of-range values snap to the nearest bound.
func ClampBall(raw string, max int) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	// Clamp before the int conversion: converting a float beyond the int
	// range is unspecified.
	if f > float64(max) {
		return strconv.Itoa(max)
	}
	if f < 1 {
		return "1"
	}
	return strconv.Itoa(int(f))
}

// EvaluatePick validates a user pick and, when valid, scans the full draw
// history for exact and near matches. Validation failures are reported one
// at a time: duplicates first, then an incomplete main-number set, then an
// invalid Powerball. The scan is linear over all draws; at historical scale
// (a few thousand rows) that is cheap enough to re-run on every change.
func EvaluatePick(draws []models.Draw, mains []string, powerball string) models.PickAnalysis {
	var numeric []int
	for _, raw := range mains {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxMainBall {
			continue
		}
		numeric = append(numeric, n)
	}

	picked := make(map[int]struct{}, len(numeric))
	for _, n := range numeric {
		picked[n] = struct{}{}
	}

	analysis := models.PickAnalysis{NumericMain: numeric}

	if len(picked) != len(numeric) {
		analysis.HasDuplicates = true
		analysis.Reason = ReasonDuplicates
		return analysis
	}
	if len(numeric) != 5 {
		analysis.Reason = ReasonMissingNumbers
		return analysis
	}
	pb, err := strconv.Atoi(strings.TrimSpace(powerball))
	if err != nil || pb < 1 || pb > MaxPowerball {
		analysis.Reason = ReasonInvalidPowerball
		return analysis
	}

	analysis.Ready = true
	analysis.PowerballNumeric = &pb

	matches := make([]models.DrawMatch, 0, len(draws))
	for _, d := range draws {
		mainMatches := 0
		for _, n := range d.MainNumbers {
			if _, ok := picked[n]; ok {
				mainMatches++
			}
		}
		powerballMatch := d.Powerball == pb
		if mainMatches == 5 && powerballMatch {
			analysis.JackpotHits = append(analysis.JackpotHits, d)
		}
		matches = append(matches, models.DrawMatch{
			Draw:           d,
			MainMatches:    mainMatches,
			PowerballMatch: powerballMatch,
		})
	}

	// Rank near misses: main matches desc, powerball match first, then
	// most recent draw wins remaining ties.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MainMatches != matches[j].MainMatches {
			return matches[i].MainMatches > matches[j].MainMatches
		}
		if matches[i].PowerballMatch != matches[j].PowerballMatch {
			return matches[i].PowerballMatch
		}
		return matches[i].Draw.DateMs > matches[j].Draw.DateMs
	})
	if len(matches) > bestDrawCount {
		matches = matches[:bestDrawCount]
	}
	analysis.BestDraws = matches

	return analysis
}
