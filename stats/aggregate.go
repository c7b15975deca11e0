// api/stats/aggregate.go

// Package stats derives summary statistics and pick evaluations from parsed
// record sequences. Everything here is a pure function of its inputs: no
// mutation of the record slices, no state, deterministic output.
package stats

import (
	"math"
	"sort"
	"strconv"
	"time"

	"drawboard/api/models"
	"drawboard/api/utils"
)

// Display cutoffs for the ranked frequency tables.
const (
	topMainEntries      = 15
	topPowerballEntries = 10
)

// counter accumulates hit counts while remembering first-seen order, so
// that ranking ties resolve to the value encountered first.
type counter struct {
	order []int
	hits  map[int]int
}

func newCounter() *counter {
	return &counter{hits: make(map[int]int)}
}

func (c *counter) add(v int) {
	if _, seen := c.hits[v]; !seen {
		c.order = append(c.order, v)
	}
	c.hits[v]++
}

func (c *counter) ranked(label func(int) string) []models.FrequencyEntry {
	entries := make([]models.FrequencyEntry, 0, len(c.order))
	for _, v := range c.order {
		entries = append(entries, models.FrequencyEntry{Label: label(v), Hits: c.hits[v]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Hits > entries[j].Hits
	})
	return entries
}

func topN(entries []models.FrequencyEntry, n int) []models.FrequencyEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

// yearRangeLabel renders "{startYear}–{endYear}" from the first and last
// record of a sequence already sorted ascending by timestamp.
func yearRangeLabel(firstMs, lastMs int64) *string {
	label := strconv.Itoa(time.UnixMilli(firstMs).UTC().Year()) +
		"–" +
		strconv.Itoa(time.UnixMilli(lastMs).UTC().Year())
	return &label
}

// MainFrequencies returns the full ranked frequency table for main numbers.
func MainFrequencies(draws []models.Draw) []models.FrequencyEntry {
	c := newCounter()
	for _, d := range draws {
		for _, n := range d.MainNumbers {
			c.add(n)
		}
	}
	return c.ranked(utils.PadBallLabel)
}

// PowerballFrequencies returns the full ranked frequency table for Powerballs.
func PowerballFrequencies(draws []models.Draw) []models.FrequencyEntry {
	c := newCounter()
	for _, d := range draws {
		c.add(d.Powerball)
	}
	return c.ranked(utils.PadBallLabel)
}

// MultiplierFrequencies returns the ranked multiplier table. Draws without
// a multiplier are excluded.
func MultiplierFrequencies(draws []models.Draw) []models.FrequencyEntry {
	c := newCounter()
	for _, d := range draws {
		if d.Multiplier != nil {
			c.add(*d.Multiplier)
		}
	}
	return c.ranked(strconv.Itoa)
}

// SummarizeDraws computes the display summary for the draw dataset. An
// empty sequence yields zero counts, nil "most common" fields, and empty
// ranked lists.
func SummarizeDraws(draws []models.Draw) models.DrawSummary {
	summary := models.DrawSummary{
		TotalDraws:           len(draws),
		MainFrequencies:      topN(MainFrequencies(draws), topMainEntries),
		PowerballFrequencies: topN(PowerballFrequencies(draws), topPowerballEntries),
	}
	if len(draws) == 0 {
		return summary
	}

	if multipliers := MultiplierFrequencies(draws); len(multipliers) > 0 {
		summary.MostCommonMultiplier = &multipliers[0]
	}

	sum := 0
	for _, d := range draws {
		sum += d.MainSum
	}
	avg := int(math.Round(float64(sum) / float64(len(draws))))
	summary.AverageMainSum = &avg

	summary.YearRange = yearRangeLabel(draws[0].DateMs, draws[len(draws)-1].DateMs)
	return summary
}

// SummarizeTraffic computes the display summary for the traffic dataset.
// The peak day keeps the first record on ties: only a strictly greater
// combined count replaces the current peak.
func SummarizeTraffic(days []models.TrafficDay) models.TrafficSummary {
	summary := models.TrafficSummary{TotalDays: len(days)}
	if len(days) == 0 {
		return summary
	}

	peak := days[0]
	for _, d := range days {
		if d.SocrataUsers != nil {
			summary.TotalSocrata += *d.SocrataUsers
		}
		if d.GeohubUsers != nil {
			summary.TotalGeohub += *d.GeohubUsers
		}
		summary.TotalCombined += d.CombinedUsers
		if d.CombinedUsers > peak.CombinedUsers {
			peak = d
		}
	}
	summary.PeakDay = &peak
	summary.YearRange = yearRangeLabel(days[0].DateMs, days[len(days)-1].DateMs)
	return summary
}
