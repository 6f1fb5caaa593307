package service

import (
	"context"
	"fmt"

	"stock-target-deviation/internal/checker/repository"
	"stock-target-deviation/pkg/logger"
	"stock-target-deviation/pkg/report"
)

// CheckerService runs the load, analyze and report pipeline.
type CheckerService interface {
	Run(ctx context.Context, inputPath string) (int, error)
}

type checkerService struct {
	logger           *logger.Logger
	earningsRepo     repository.EarningsRepository
	deviationService DeviationService
	reporter         report.Reporter
}

// NewCheckerService creates a new CheckerService.
func NewCheckerService(
	log *logger.Logger,
	earningsRepo repository.EarningsRepository,
	deviationService DeviationService,
	reporter report.Reporter,
) CheckerService {
	return &checkerService{
		logger:           log,
		earningsRepo:     earningsRepo,
		deviationService: deviationService,
		reporter:         reporter,
	}
}

// Run returns the number of reported records. Nothing is rendered when loading fails.
func (s *checkerService) Run(ctx context.Context, inputPath string) (int, error) {
	s.logger.InfoContext(ctx, "Checking analyst price target deviations",
		logger.StringField("input_path", inputPath),
		logger.StringerField("threshold_percent", s.deviationService.Threshold()),
	)

	doc, err := s.earningsRepo.Load(ctx, inputPath)
	if err != nil {
		return 0, err
	}

	records, err := s.deviationService.Analyze(ctx, doc)
	if err != nil {
		return 0, err
	}

	if err := s.reporter.Render(records); err != nil {
		s.logger.ErrorContext(ctx, "Failed to render deviation report", logger.ErrorField(err))
		return 0, fmt.Errorf("failed to render report: %w", err)
	}

	s.logger.InfoContext(ctx, "Deviation check finished", logger.IntField("records", len(records)))

	return len(records), nil
}
