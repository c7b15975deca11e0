// api/parse/draws.go
package parse

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"drawboard/api/models"
)

// Accepted layouts for the draw-date column. The upstream export has used
// both ISO timestamps and plain US dates over the years.
var drawDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

func parseDrawDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range drawDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Draws converts raw Powerball history CSV text into a sequence of draws
// sorted ascending by date. The first row is treated as a header and
// discarded. Columns are positional: draw date, winning numbers
// (space-separated, last value is the Powerball), multiplier. Rows with an
// unparseable date or numbers field are dropped; an empty or unparseable
// multiplier becomes nil. Duplicate dates are preserved as distinct draws.
func Draws(text string) []models.Draw {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	var draws []models.Draw
	row := 0
	for {
		cols, err := r.Read()
		if err == io.EOF {
			break
		}
		// Count the row whether or not it parsed, so a malformed header
		// still occupies the header slot.
		row++
		if err != nil {
			// Malformed row: skip it, keep reading.
			continue
		}
		if row == 1 {
			continue
		}
		if len(cols) < 2 {
			continue
		}

		when, ok := parseDrawDate(cols[0])
		if !ok {
			continue
		}

		tokens := strings.Fields(cols[1])
		if len(tokens) < 2 {
			continue
		}
		numbers := make([]int, 0, len(tokens))
		valid := true
		for _, tok := range tokens {
			n, err := strconv.Atoi(tok)
			if err != nil {
				valid = false
				break
			}
			numbers = append(numbers, n)
		}
		if !valid {
			continue
		}

		main := numbers[:len(numbers)-1]
		sum := 0
		for _, n := range main {
			sum += n
		}

		var multiplier *int
		if len(cols) > 2 {
			if raw := strings.TrimSpace(cols[2]); raw != "" {
				if m, err := strconv.Atoi(raw); err == nil {
					multiplier = &m
				}
			}
		}

		draws = append(draws, models.Draw{
			DateMs:      when.UnixMilli(),
			DateLabel:   strings.TrimSpace(cols[0]),
			MainNumbers: main,
			Powerball:   numbers[len(numbers)-1],
			Multiplier:  multiplier,
			MainSum:     sum,
		})
	}

	sort.SliceStable(draws, func(i, j int) bool {
		return draws[i].DateMs < draws[j].DateMs
	})
	return draws
}
