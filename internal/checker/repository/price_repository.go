package repository

import (
	"errors"
	"fmt"
	"sort"

	"stock-target-deviation/internal/entity"

	"github.com/shopspring/decimal"
)

// ErrInvalidPrice is returned when a price entry has no symbol or a non-positive price.
var ErrInvalidPrice = errors.New("invalid price entry")

// PriceRepository is a read-only lookup of reference prices by symbol.
type PriceRepository interface {
	Get(symbol string) (decimal.Decimal, bool)
	Entries() []entity.PriceEntry
}

type priceRepository struct {
	prices map[string]decimal.Decimal
}

// NewPriceRepository builds an immutable price table. Later sets override
// earlier ones for the same symbol, so a snapshot can be overlaid with
// configured prices.
func NewPriceRepository(sets ...[]entity.PriceEntry) (PriceRepository, error) {
	prices := make(map[string]decimal.Decimal)
	for _, set := range sets {
		for _, e := range set {
			if e.Symbol == "" {
				return nil, fmt.Errorf("%w: empty symbol", ErrInvalidPrice)
			}
			if !e.Price.IsPositive() {
				return nil, fmt.Errorf("%w: %s has price %s", ErrInvalidPrice, e.Symbol, e.Price)
			}
			prices[e.Symbol] = e.Price
		}
	}
	return &priceRepository{prices: prices}, nil
}

func (r *priceRepository) Get(symbol string) (decimal.Decimal, bool) {
	price, ok := r.prices[symbol]
	return price, ok
}

// Entries returns a copy of the table sorted by symbol.
func (r *priceRepository) Entries() []entity.PriceEntry {
	entries := make([]entity.PriceEntry, 0, len(r.prices))
	for symbol, price := range r.prices {
		entries = append(entries, entity.PriceEntry{Symbol: symbol, Price: price})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Symbol < entries[j].Symbol
	})
	return entries
}
