package models

// CalcResult is the output of one calculator operation: a mapping of
// named numeric fields (monetary values rounded to 2 decimals) plus a
// human-readable summary. Pure value, no identity.
type CalcResult struct {
	Result  map[string]interface{} `json:"result"`
	Summary string                 `json:"summary"`
}

// YearValue is one entry of the investment-return yearly breakdown.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}
