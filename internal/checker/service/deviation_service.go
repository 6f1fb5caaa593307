package service

import (
	"context"
	"fmt"
	"sort"

	"stock-target-deviation/internal/checker/dto"
	"stock-target-deviation/internal/checker/repository"
	"stock-target-deviation/internal/entity"
	"stock-target-deviation/pkg/logger"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DeviationService finds analyst price targets that stray too far from the reference price.
type DeviationService interface {
	Analyze(ctx context.Context, doc *entity.EarningsDocument) ([]dto.DeviationRecord, error)
	Threshold() decimal.Decimal
}

type deviationService struct {
	logger    *logger.Logger
	prices    repository.PriceRepository
	threshold decimal.Decimal
}

// NewDeviationService creates a DeviationService. threshold is in percent.
func NewDeviationService(log *logger.Logger, prices repository.PriceRepository, threshold decimal.Decimal) DeviationService {
	return &deviationService{
		logger:    log,
		prices:    prices,
		threshold: threshold,
	}
}

// ComputeDeviation returns (target - current) / current * 100.
// current must be non-zero.
func ComputeDeviation(current, target decimal.Decimal) decimal.Decimal {
	return target.Sub(current).Div(current).Mul(hundred)
}

// ExceedsThreshold reports whether |deviation| is strictly greater than threshold.
func ExceedsThreshold(deviation, threshold decimal.Decimal) bool {
	return deviation.Abs().GreaterThan(threshold)
}

func (s *deviationService) Threshold() decimal.Decimal {
	return s.threshold
}

// Analyze returns the exceeding records ordered by absolute deviation, largest
// first. Exact ties keep document order. Comments are only decoded for events
// with a reference price; a malformed comment there fails the whole analysis.
func (s *deviationService) Analyze(ctx context.Context, doc *entity.EarningsDocument) ([]dto.DeviationRecord, error) {
	records := make([]dto.DeviationRecord, 0)

	for _, event := range doc.EarningsEvents {
		currentPrice, ok := s.prices.Get(event.Symbol)
		if !ok {
			s.logger.DebugContext(ctx, "Skipping event with unknown symbol", logger.StringField("symbol", event.Symbol))
			continue
		}

		comments, err := event.AnalystComments.Decode()
		if err != nil {
			s.logger.ErrorContext(ctx, "Failed to decode analyst comments", logger.ErrorField(err), logger.StringField("symbol", event.Symbol))
			return nil, fmt.Errorf("%w: %s: %w", repository.ErrParseEarnings, event.Symbol, err)
		}

		for _, comment := range comments {
			if !comment.HasPriceTarget() {
				s.logger.DebugContext(ctx, "Skipping comment without price target",
					logger.StringField("symbol", event.Symbol),
					logger.StringField("analyst", comment.AnalystName),
				)
				continue
			}

			targetPrice, err := comment.PriceTarget.Amount()
			if err != nil {
				s.logger.ErrorContext(ctx, "Failed to parse price target", logger.ErrorField(err), logger.StringField("symbol", event.Symbol))
				return nil, fmt.Errorf("%w: %s: %w", repository.ErrParseEarnings, event.Symbol, err)
			}

			deviation := ComputeDeviation(currentPrice, targetPrice)
			if !ExceedsThreshold(deviation, s.threshold) {
				continue
			}

			records = append(records, dto.DeviationRecord{
				Symbol:       event.Symbol,
				Company:      event.Company(),
				CurrentPrice: currentPrice,
				TargetPrice:  targetPrice,
				DeviationPct: deviation,
				Analyst:      comment.AnalystName,
				Firm:         comment.Firm,
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DeviationPct.Abs().GreaterThan(records[j].DeviationPct.Abs())
	})

	s.logger.DebugContext(ctx, "Deviation analysis finished",
		logger.IntField("events", len(doc.EarningsEvents)),
		logger.IntField("records", len(records)),
		logger.StringerField("threshold_percent", s.threshold),
	)

	return records, nil
}
