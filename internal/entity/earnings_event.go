package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNonNumericPriceTarget is returned when price_target is present but is not a JSON number.
	ErrNonNumericPriceTarget = errors.New("price_target is not a number")
	// ErrInvalidAnalystComments is returned when analyst_comments is present but is not a list of comments.
	ErrInvalidAnalystComments = errors.New("analyst_comments is not a list of comments")
)

var jsonNull = []byte("null")

// EarningsDocument is the top level of the earnings data file.
type EarningsDocument struct {
	EarningsEvents []EarningsEvent `json:"earnings_events" validate:"required,dive"`
}

// EarningsEvent is a single company earnings event. Analyst comments are kept
// raw and only decoded for events whose symbol has a reference price.
type EarningsEvent struct {
	Symbol          string          `json:"symbol" validate:"required"`
	CompanyName     *string         `json:"company_name" validate:"required"`
	AnalystComments AnalystComments `json:"analyst_comments"`
}

// Company returns the company name, empty when absent.
func (e EarningsEvent) Company() string {
	if e.CompanyName == nil {
		return ""
	}
	return *e.CompanyName
}

// AnalystComments holds the raw analyst_comments value. Raw is nil when the key is absent.
type AnalystComments struct {
	Raw json.RawMessage
}

func (c *AnalystComments) UnmarshalJSON(data []byte) error {
	c.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Decode returns the comments. An absent key yields no comments; null or any
// non-list value is an error.
func (c AnalystComments) Decode() ([]AnalystComment, error) {
	if c.Raw == nil {
		return nil, nil
	}
	if bytes.Equal(c.Raw, jsonNull) {
		return nil, fmt.Errorf("%w: null", ErrInvalidAnalystComments)
	}

	var comments []AnalystComment
	if err := json.Unmarshal(c.Raw, &comments); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnalystComments, err)
	}
	return comments, nil
}

// AnalystComment is one analyst's opinion on an event.
type AnalystComment struct {
	AnalystName string      `json:"analyst_name"`
	Firm        string      `json:"firm"`
	PriceTarget PriceTarget `json:"price_target"`
}

// HasPriceTarget reports whether the price_target key is present, even if null.
func (c AnalystComment) HasPriceTarget() bool {
	return c.PriceTarget.Raw != nil
}

// PriceTarget holds the raw price_target value in the symbol's native currency.
type PriceTarget struct {
	Raw json.RawMessage
}

func (p *PriceTarget) UnmarshalJSON(data []byte) error {
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Amount parses the target. Only JSON number literals are accepted; null and
// quoted values are rejected even when they look numeric.
func (p PriceTarget) Amount() (decimal.Decimal, error) {
	data := p.Raw
	if len(data) == 0 || !(data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNonNumericPriceTarget, data)
	}
	amount, err := decimal.NewFromString(string(data))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNonNumericPriceTarget, data)
	}
	return amount, nil
}
