package dto

import "github.com/shopspring/decimal"

// DeviationRecord is one analyst price target whose deviation from the
// reference price exceeded the threshold.
type DeviationRecord struct {
	Symbol       string          `json:"symbol"`
	Company      string          `json:"company"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	TargetPrice  decimal.Decimal `json:"target_price"`
	DeviationPct decimal.Decimal `json:"deviation_pct"`
	Analyst      string          `json:"analyst"`
	Firm         string          `json:"firm"`
}
