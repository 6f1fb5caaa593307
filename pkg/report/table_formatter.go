package report

import (
	"fmt"
	"io"
	"strings"

	"stock-target-deviation/internal/checker/dto"
	"stock-target-deviation/internal/entity"
	"stock-target-deviation/pkg/common"

	"github.com/charmbracelet/lipgloss"
)

const separatorWidth = 90

// CurrencyPrefix returns "HK$" for Hong Kong listed symbols and "$" otherwise.
func CurrencyPrefix(symbol string) string {
	if entity.IsHongKongSymbol(symbol) {
		return common.CurrencyPrefixHKD
	}
	return common.CurrencyPrefixUSD
}

// FormatDeviationTable formats the records as a fixed-width text table
// followed by a summary line. Column widths count runes, not bytes.
func FormatDeviationTable(records []dto.DeviationRecord, threshold fmt.Stringer) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("=== Analyst price targets deviating more than %s%% ===\n", threshold))
	builder.WriteString(fmt.Sprintf("%-12s %-12s %-10s %-10s %-8s %-15s %s\n",
		"Symbol", "Company", "Current", "Target", "Dev", "Analyst", "Firm"))
	builder.WriteString(strings.Repeat("-", separatorWidth))
	builder.WriteString("\n")

	for _, r := range records {
		currency := CurrencyPrefix(r.Symbol)
		builder.WriteString(fmt.Sprintf("%-12s %-12s %s%-9s %s%-9s %6s%% %-15s %s\n",
			r.Symbol,
			r.Company,
			currency, r.CurrentPrice.StringFixed(2),
			currency, r.TargetPrice.StringFixed(2),
			r.DeviationPct.StringFixed(1),
			r.Analyst,
			r.Firm,
		))
	}

	builder.WriteString(fmt.Sprintf("\nTotal: %d price targets deviate more than %s%% and need review\n", len(records), threshold))

	return builder.String()
}

// FormatPriceTable writes the reference price table. The title is styled
// when w is a terminal and plain otherwise.
func FormatPriceTable(w io.Writer, entries []entity.PriceEntry) error {
	renderer := lipgloss.NewRenderer(w)
	titleStyle := renderer.NewStyle().Bold(true)

	var builder strings.Builder
	builder.WriteString(titleStyle.Render("=== Reference prices ==="))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("%-12s %s\n", "Symbol", "Price"))
	builder.WriteString(strings.Repeat("-", 24))
	builder.WriteString("\n")
	for _, e := range entries {
		builder.WriteString(fmt.Sprintf("%-12s %s%s\n", e.Symbol, CurrencyPrefix(e.Symbol), e.Price.StringFixed(2)))
	}
	builder.WriteString(fmt.Sprintf("\nTotal: %d symbols\n", len(entries)))

	_, err := io.WriteString(w, builder.String())
	return err
}
