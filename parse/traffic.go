// api/parse/traffic.go
package parse

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"drawboard/api/models"
)

// Positional column indices in the traffic export.
const (
	trafficDateCol     = 0
	trafficSocrataCol  = 1
	trafficGeohubCol   = 4
	trafficCombinedCol = 7
)

// parseTrafficDate parses an mm/dd/yyyy date by explicit numeric split,
// avoiding locale-dependent interpretation of the components.
func parseTrafficDate(raw string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func optionalInt(cols []string, idx int) *int {
	if idx >= len(cols) {
		return nil
	}
	raw := strings.TrimSpace(cols[idx])
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// Traffic converts raw portal-traffic CSV text into a sequence of daily
// records sorted ascending by date. The export is plain comma-separated
// (no quoted fields); the first row is a header and is discarded. Rows with
// an unparseable date, or without a numeric value in any of the three user
// columns, are dropped. When the combined column is absent or non-numeric
// it is synthesized as socrata+geohub, treating a missing operand as zero.
func Traffic(text string) []models.TrafficDay {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var days []models.TrafficDay
	for i, line := range strings.Split(text, "\n") {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, ",")

		when, ok := parseTrafficDate(cols[trafficDateCol])
		if !ok {
			continue
		}

		socrata := optionalInt(cols, trafficSocrataCol)
		geohub := optionalInt(cols, trafficGeohubCol)
		combined := optionalInt(cols, trafficCombinedCol)

		if combined == nil {
			if socrata == nil && geohub == nil {
				continue
			}
			sum := 0
			if socrata != nil {
				sum += *socrata
			}
			if geohub != nil {
				sum += *geohub
			}
			combined = &sum
		}

		days = append(days, models.TrafficDay{
			DateMs:        when.UnixMilli(),
			DateLabel:     strings.TrimSpace(cols[trafficDateCol]),
			SocrataUsers:  socrata,
			GeohubUsers:   geohub,
			CombinedUsers: *combined,
		})
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].DateMs < days[j].DateMs
	})
	return days
}
