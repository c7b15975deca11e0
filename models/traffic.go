// api/models/traffic.go
package models

// TrafficDay represents one day of portal traffic parsed from the CSV.
// SocrataUsers and GeohubUsers are nil when the source column was blank or
// non-numeric; CombinedUsers is always populated (rows without any numeric
// user value are dropped during parsing).
type TrafficDay struct {
	DateMs        int64  `json:"dateMs"`
	DateLabel     string `json:"dateLabel"`
	SocrataUsers  *int   `json:"socrataUsers"`
	GeohubUsers   *int   `json:"geohubUsers"`
	CombinedUsers int    `json:"combinedUsers"`
}

// TrafficSummary holds the derived statistics for the traffic dataset.
// Per-source totals count a missing day value as zero.
type TrafficSummary struct {
	TotalDays     int         `json:"totalDays"`
	PeakDay       *TrafficDay `json:"peakDay"`
	TotalSocrata  int         `json:"totalSocrata"`
	TotalGeohub   int         `json:"totalGeohub"`
	TotalCombined int         `json:"totalCombined"`
	YearRange     *string     `json:"yearRange"`
}
