package report

import (
	"io"

	"stock-target-deviation/internal/checker/dto"

	"github.com/shopspring/decimal"
)

// Reporter defines the interface for rendering deviation records.
type Reporter interface {
	Render(records []dto.DeviationRecord) error
}

// tableReporter is an implementation of Reporter that writes a fixed-width table.
type tableReporter struct {
	w         io.Writer
	threshold decimal.Decimal
}

// NewTableReporter creates a Reporter writing to w. threshold is only used in the title and summary.
func NewTableReporter(w io.Writer, threshold decimal.Decimal) Reporter {
	return &tableReporter{
		w:         w,
		threshold: threshold,
	}
}

// Render writes the whole table in a single write.
func (r *tableReporter) Render(records []dto.DeviationRecord) error {
	_, err := io.WriteString(r.w, FormatDeviationTable(records, r.threshold))
	return err
}
