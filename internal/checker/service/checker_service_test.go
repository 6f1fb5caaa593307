package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"stock-target-deviation/internal/checker/repository"
	"stock-target-deviation/pkg/logger"
	"stock-target-deviation/pkg/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const earningsFixture = `{
  "earnings_events": [
    {
      "symbol": "AAPL",
      "company_name": "Apple",
      "analyst_comments": [
        {"analyst_name": "Jane Doe", "firm": "Goldman", "price_target": 300},
        {"analyst_name": "No Target", "firm": "Nowhere"},
        {"analyst_name": "Close Call", "firm": "MS", "price_target": 240}
      ]
    },
    {
      "symbol": "00700.HK",
      "company_name": "Tencent",
      "analyst_comments": [
        {"analyst_name": "Li Wei", "firm": "CICC", "price_target": 900}
      ]
    },
    {
      "symbol": "XXXX",
      "company_name": "Nobody",
      "analyst_comments": [
        {"analyst_name": "Ghost", "firm": "None", "price_target": 1}
      ]
    },
    {
      "symbol": "NVDA",
      "company_name": "Nvidia"
    }
  ]
}`

func newTestCheckerService(t *testing.T, out *bytes.Buffer) CheckerService {
	t.Helper()
	log := logger.NewNop()
	prices, err := repository.NewPriceRepository(repository.DefaultPriceSnapshot())
	require.NoError(t, err)

	threshold := decimal.NewFromInt(20)
	return NewCheckerService(
		log,
		repository.NewEarningsRepository(log),
		NewDeviationService(log, prices, threshold),
		report.NewTableReporter(out, threshold),
	)
}

func TestCheckerService_Run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earnings_data.json")
	require.NoError(t, os.WriteFile(path, []byte(earningsFixture), 0o644))

	var out bytes.Buffer
	count, err := newTestCheckerService(t, &out).Run(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	want := "=== Analyst price targets deviating more than 20% ===\n" +
		"Symbol       Company      Current    Target     Dev      Analyst         Firm\n" +
		"------------------------------------------------------------------------------------------\n" +
		"00700.HK     Tencent      HK$643.50    HK$900.00      39.9% Li Wei          CICC\n" +
		"AAPL         Apple        $234.35    $300.00      28.0% Jane Doe        Goldman\n" +
		"\n" +
		"Total: 2 price targets deviate more than 20% and need review\n"
	assert.Equal(t, want, out.String())
}

func TestCheckerService_RunMissingFile(t *testing.T) {
	var out bytes.Buffer
	count, err := newTestCheckerService(t, &out).Run(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrReadEarnings)
	assert.Zero(t, count)
	assert.Empty(t, out.String())
}

func TestCheckerService_RunMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earnings_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"earnings_events": [`), 0o644))

	var out bytes.Buffer
	_, err := newTestCheckerService(t, &out).Run(context.Background(), path)
	assert.ErrorIs(t, err, repository.ErrParseEarnings)
	assert.Empty(t, out.String())
}

func TestCheckerService_RunIgnoresCommentsOfUnknownSymbols(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earnings_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"earnings_events": [
		{"symbol": "XXXX", "company_name": "Nobody", "analyst_comments": [
			{"analyst_name": "Ghost", "firm": "None", "price_target": "n/a"}
		]},
		{"symbol": "AAPL", "company_name": "Apple", "analyst_comments": [
			{"analyst_name": "Jane Doe", "firm": "Goldman", "price_target": 300}
		]}
	]}`), 0o644))

	var out bytes.Buffer
	count, err := newTestCheckerService(t, &out).Run(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, out.String(), "AAPL         Apple        $234.35    $300.00      28.0% Jane Doe        Goldman\n")
}

func TestCheckerService_RunNullPriceTargetIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earnings_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"earnings_events": [
		{"symbol": "AAPL", "company_name": "Apple", "analyst_comments": [
			{"analyst_name": "Null", "firm": "X", "price_target": null},
			{"analyst_name": "Jane Doe", "firm": "Goldman", "price_target": 300}
		]}
	]}`), 0o644))

	var out bytes.Buffer
	count, err := newTestCheckerService(t, &out).Run(context.Background(), path)
	assert.ErrorIs(t, err, repository.ErrParseEarnings)
	assert.Zero(t, count)
	assert.Empty(t, out.String())
}
