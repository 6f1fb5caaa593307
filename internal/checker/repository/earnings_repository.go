package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"stock-target-deviation/internal/entity"
	"stock-target-deviation/pkg/logger"

	"github.com/go-playground/validator/v10"
)

var (
	ErrReadEarnings    = errors.New("failed to read earnings data")
	ErrParseEarnings   = errors.New("failed to parse earnings data")
	ErrInvalidEarnings = errors.New("invalid earnings data")
)

type EarningsRepository interface {
	Load(ctx context.Context, path string) (*entity.EarningsDocument, error)
}

type earningsRepository struct {
	log      *logger.Logger
	validate *validator.Validate
}

func NewEarningsRepository(log *logger.Logger) EarningsRepository {
	return &earningsRepository{
		log:      log,
		validate: validator.New(),
	}
}

// Load reads the whole earnings file and decodes it. Any failure is returned
// and no partial document is produced.
func (r *earningsRepository) Load(ctx context.Context, path string) (*entity.EarningsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to read earnings file", logger.ErrorField(err), logger.StringField("path", path))
		return nil, fmt.Errorf("%w: %w", ErrReadEarnings, err)
	}

	var doc entity.EarningsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		r.log.ErrorContext(ctx, "Failed to unmarshal earnings file", logger.ErrorField(err), logger.StringField("path", path))
		return nil, fmt.Errorf("%w: %w", ErrParseEarnings, err)
	}

	if err := r.validate.StructCtx(ctx, &doc); err != nil {
		r.log.ErrorContext(ctx, "Earnings file failed validation", logger.ErrorField(err), logger.StringField("path", path))
		return nil, fmt.Errorf("%w: %w", ErrInvalidEarnings, err)
	}

	r.log.DebugContext(ctx, "Loaded earnings file",
		logger.StringField("path", path),
		logger.IntField("events", len(doc.EarningsEvents)),
	)

	return &doc, nil
}
