package entity

import (
	"strings"

	"stock-target-deviation/pkg/common"

	"github.com/shopspring/decimal"
)

// PriceEntry is the reference current price of a symbol. Plain tickers are
// quoted in USD, ".HK" tickers in HKD.
type PriceEntry struct {
	Symbol string
	Price  decimal.Decimal
}

// IsHongKongSymbol reports whether symbol trades in Hong Kong dollars.
func IsHongKongSymbol(symbol string) bool {
	return strings.HasSuffix(symbol, common.HongKongSymbolSuffix)
}
