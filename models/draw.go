// api/models/draw.go
package models

// Draw represents a single historical Powerball drawing parsed from the CSV.
type Draw struct {
	DateMs      int64  `json:"dateMs"`
	DateLabel   string `json:"dateLabel"`
	MainNumbers []int  `json:"mainNumbers"`
	Powerball   int    `json:"powerball"`
	Multiplier  *int   `json:"multiplier"` // nil when no multiplier drawing took place
	MainSum     int    `json:"mainSum"`
}

// FrequencyEntry is one row of a frequency table, ranked by hit count.
type FrequencyEntry struct {
	Label string `json:"label"`
	Hits  int    `json:"hits"`
}

// DrawSummary holds the derived statistics for the draw dataset.
// Pointer fields are nil when the record sequence is empty.
type DrawSummary struct {
	TotalDraws           int              `json:"totalDraws"`
	MainFrequencies      []FrequencyEntry `json:"mainFrequencies"`      // top 15
	PowerballFrequencies []FrequencyEntry `json:"powerballFrequencies"` // top 10
	MostCommonMultiplier *FrequencyEntry  `json:"mostCommonMultiplier"`
	AverageMainSum       *int             `json:"averageMainSum"`
	YearRange            *string          `json:"yearRange"`
}
