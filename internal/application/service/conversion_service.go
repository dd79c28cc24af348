package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mhartwell/fxresolver/internal/domain/currency"
	"github.com/mhartwell/fxresolver/internal/domain/entity"
	"github.com/mhartwell/fxresolver/internal/infrastructure/logger"
	"github.com/mhartwell/fxresolver/internal/infrastructure/middleware"
	"github.com/mhartwell/fxresolver/internal/numeric"
)

// Conversion is the result of converting a money amount between two
// currencies on a date.
type Conversion struct {
	From            string          `json:"from"`
	To              string          `json:"to"`
	Date            time.Time       `json:"date"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	ExchangeRate    float64         `json:"exchange_rate"`
	RateKind        entity.RateKind `json:"rate_kind"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
}

// ConversionService converts money amounts using the rate manager and
// the target currency's rounding rule. The resolver itself never rounds;
// rounding happens only here, where a rate meets an amount.
type ConversionService struct {
	manager *RateManager
	logger  logger.Logger
}

// NewConversionService creates a new conversion service.
func NewConversionService(manager *RateManager, log logger.Logger) *ConversionService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ConversionService{
		manager: manager,
		logger:  log,
	}
}

// Convert resolves the from/to rate on the given date and applies it to
// amount. Unknown currency codes fail before the resolver is consulted.
func (s *ConversionService) Convert(ctx context.Context, amount decimal.Decimal, from, to string, date time.Time) (*Conversion, error) {
	requestID := middleware.GetRequestID(ctx)

	if _, err := currency.Get(from); err != nil {
		return nil, err
	}
	target, err := currency.Get(to)
	if err != nil {
		return nil, err
	}

	rate, err := s.manager.Lookup(from, to, date, KindAny)
	if err != nil {
		s.logger.Error("Failed to resolve exchange rate", map[string]interface{}{
			"request_id": requestID,
			"from":       from,
			"to":         to,
			"date":       date.Format("2006-01-02"),
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to resolve exchange rate: %w", err)
	}

	converted := entity.Money{
		Amount:   amount.Mul(decimal.NewFromFloat(rate.Rate)),
		Currency: to,
	}

	// currencies without an explicit rule round to the conventional two
	// decimal places
	rounding := target.Rounding
	if rounding.Type == numeric.RoundNone {
		rounding = numeric.ClosestRounding(2)
	}
	converted = converted.Rounded(rounding)

	s.logger.Info("Conversion completed", map[string]interface{}{
		"request_id":       requestID,
		"from":             from,
		"to":               to,
		"date":             date.Format("2006-01-02"),
		"original_amount":  amount.String(),
		"exchange_rate":    rate.Rate,
		"rate_kind":        string(rate.Kind),
		"converted_amount": converted.Amount.String(),
	})

	return &Conversion{
		From:            from,
		To:              to,
		Date:            date,
		OriginalAmount:  amount,
		ExchangeRate:    rate.Rate,
		RateKind:        rate.Kind,
		ConvertedAmount: converted.Amount,
	}, nil
}
