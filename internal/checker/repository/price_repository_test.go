package repository

import (
	"testing"

	"stock-target-deviation/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRepository_DefaultSnapshot(t *testing.T) {
	repo, err := NewPriceRepository(DefaultPriceSnapshot())
	require.NoError(t, err)

	price, ok := repo.Get("AAPL")
	require.True(t, ok)
	assert.Equal(t, "234.35", price.StringFixed(2))

	price, ok = repo.Get("00700.HK")
	require.True(t, ok)
	assert.Equal(t, "643.50", price.StringFixed(2))

	_, ok = repo.Get("XXXX")
	assert.False(t, ok)

	assert.Len(t, repo.Entries(), 56)
}

func TestPriceRepository_OverlayOverridesSnapshot(t *testing.T) {
	repo, err := NewPriceRepository(
		DefaultPriceSnapshot(),
		[]entity.PriceEntry{
			{Symbol: "AAPL", Price: decimal.RequireFromString("250")},
			{Symbol: "ZZZZ", Price: decimal.RequireFromString("1.5")},
		},
	)
	require.NoError(t, err)

	price, ok := repo.Get("AAPL")
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(250)))

	_, ok = repo.Get("ZZZZ")
	assert.True(t, ok)
}

func TestPriceRepository_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry entity.PriceEntry
	}{
		{name: "zero price", entry: entity.PriceEntry{Symbol: "AAPL", Price: decimal.Zero}},
		{name: "negative price", entry: entity.PriceEntry{Symbol: "AAPL", Price: decimal.NewFromInt(-1)}},
		{name: "empty symbol", entry: entity.PriceEntry{Price: decimal.NewFromInt(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewPriceRepository([]entity.PriceEntry{tt.entry})
			assert.Nil(t, repo)
			assert.ErrorIs(t, err, ErrInvalidPrice)
		})
	}
}

func TestPriceRepository_EntriesSortedAndDetached(t *testing.T) {
	repo, err := NewPriceRepository([]entity.PriceEntry{
		{Symbol: "MSFT", Price: decimal.NewFromInt(2)},
		{Symbol: "AAPL", Price: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)

	entries := repo.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "AAPL", entries[0].Symbol)
	assert.Equal(t, "MSFT", entries[1].Symbol)

	entries[0].Price = decimal.NewFromInt(99)
	price, _ := repo.Get("AAPL")
	assert.True(t, price.Equal(decimal.NewFromInt(1)))
}
