package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/currency"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// ConverterService converts amounts and keeps a short history of conversions.
type ConverterService struct {
	mu      sync.Mutex
	rates   *Rates
	history *storage.Repository[[]models.Conversion]
	logger  *slog.Logger
	now     func() time.Time
}

// NewConverterService creates a ConverterService.
func NewConverterService(repos *storage.Repositories, rates *Rates, logger *slog.Logger) *ConverterService {
	return &ConverterService{
		rates:   rates,
		history: repos.ConversionHistory,
		logger:  logger,
		now:     time.Now,
	}
}

// Currencies returns the currencies available for conversion.
func (s *ConverterService) Currencies(ctx context.Context) []models.Currency {
	return s.rates.Currencies(ctx)
}

// Convert converts amount from one currency to another and records the
// conversion at the head of the history.
func (s *ConverterService) Convert(ctx context.Context, amount float64, from, to string) (*models.Conversion, error) {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: both currencies are required", ErrInvalidArgument)
	}

	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	for _, code := range []string{from, to} {
		if !table.Has(code) {
			return nil, fmt.Errorf("%w: no exchange rate for %s", ErrInvalidArgument, code)
		}
	}

	result := table.Convert(amount, from, to)
	conversion := models.Conversion{
		ID:           uuid.New().String(),
		Amount:       amount,
		FromCurrency: from,
		ToCurrency:   to,
		Result:       result,
		Rate:         result / amount,
		Timestamp:    s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.history.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err := s.history.Save(ctx, currency.PushHistory(history, conversion)); err != nil {
		return nil, err
	}

	s.logger.Debug("Converted currency", "from", from, "to", to, "amount", amount, "result", conversion.Result)
	return &conversion, nil
}

// History returns the recorded conversions, newest first.
func (s *ConverterService) History(ctx context.Context) ([]models.Conversion, error) {
	return s.history.LoadOr(ctx, nil)
}

// ClearHistory removes every recorded conversion.
func (s *ConverterService) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Save(ctx, []models.Conversion{})
}
