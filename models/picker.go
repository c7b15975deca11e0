// api/models/picker.go
package models

// PickRequest is the user's candidate ticket as entered: five main-number
// strings plus one Powerball string. Fields arrive as raw input text; the
// evaluator decides validity.
type PickRequest struct {
	MainNumbers []string `json:"mainNumbers" binding:"required"`
	Powerball   string   `json:"powerball"`
}

// DrawMatch pairs a historical draw with how well it matches a pick.
type DrawMatch struct {
	Draw           Draw `json:"draw"`
	MainMatches    int  `json:"mainMatches"`
	PowerballMatch bool `json:"powerballMatch"`
}

// PickAnalysis is the full evaluation of a pick against the draw history.
// When Ready is false, Reason carries the single validation failure
// surfaced to the user; match fields are left empty.
type PickAnalysis struct {
	Ready            bool        `json:"ready"`
	Reason           string      `json:"reason,omitempty"`
	HasDuplicates    bool        `json:"hasDuplicates"`
	NumericMain      []int       `json:"numericMain,omitempty"`
	PowerballNumeric *int        `json:"powerballNumeric,omitempty"`
	JackpotHits      []Draw      `json:"jackpotHits"`
	BestDraws        []DrawMatch `json:"bestDraws"`
}
