package repository

import (
	"stock-target-deviation/internal/entity"

	"github.com/shopspring/decimal"
)

// Closing prices as of 2025-09-13. US tickers in USD, .HK tickers in HKD.
var defaultPriceSnapshot = []struct {
	symbol string
	price  string
}{
	// US
	{"AAPL", "234.35"}, {"MSFT", "500.28"}, {"GOOGL", "241.58"}, {"AMZN", "227.85"}, {"META", "505.7"},
	{"TSLA", "394.13"}, {"NVDA", "177.87"}, {"NFLX", "1185.84"}, {"COST", "890.5"}, {"CSCO", "52.8"},
	{"AMD", "157.06"}, {"PEP", "143.53"}, {"INTC", "24.08"}, {"TXN", "195.4"}, {"QCOM", "161.51"},
	{"ADBE", "590.8"}, {"AMGN", "285.3"}, {"BABA", "155.0"}, {"V", "350.87"}, {"PDD", "124.79"},
	{"JD", "33.94"}, {"JPM", "305.05"}, {"JNJ", "151.33"}, {"WMT", "89.50"}, {"PG", "157.90"},
	{"MA", "522.50"}, {"HD", "417.30"},

	// Hong Kong
	{"00700.HK", "643.50"}, {"09988.HK", "151.0"}, {"00005.HK", "106.30"}, {"00939.HK", "7.88"},
	{"00388.HK", "47.2"}, {"00386.HK", "4.23"}, {"01024.HK", "45.8"}, {"02382.HK", "82.1"},
	{"02269.HK", "28.5"}, {"09961.HK", "145.2"}, {"03888.HK", "26.8"}, {"01833.HK", "42.5"},
	{"02015.HK", "118.6"}, {"09866.HK", "48.2"}, {"02688.HK", "14.2"},
	{"03690.HK", "96.55"}, {"01211.HK", "104.50"}, {"03988.HK", "4.38"}, {"01398.HK", "5.50"},
	{"01109.HK", "8.90"}, {"00016.HK", "78.50"}, {"00857.HK", "65.20"}, {"01299.HK", "42.80"},
	{"02318.HK", "150.30"}, {"09618.HK", "135.60"}, {"02020.HK", "28.70"}, {"00175.HK", "9.80"},
	{"06060.HK", "25.4"}, {"09999.HK", "158.5"},
}

// DefaultPriceSnapshot returns the built-in reference prices.
func DefaultPriceSnapshot() []entity.PriceEntry {
	entries := make([]entity.PriceEntry, 0, len(defaultPriceSnapshot))
	for _, p := range defaultPriceSnapshot {
		entries = append(entries, entity.PriceEntry{
			Symbol: p.symbol,
			Price:  decimal.RequireFromString(p.price),
		})
	}
	return entries
}
