package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mhartwell/fxresolver/internal/domain/currency"
	"github.com/mhartwell/fxresolver/internal/domain/entity"
	"github.com/mhartwell/fxresolver/internal/domain/repository"
	"github.com/mhartwell/fxresolver/internal/infrastructure/logger"
	"github.com/mhartwell/fxresolver/internal/infrastructure/middleware"
)

// RateService fronts the rate manager with currency validation and
// persistence of registered entries.
type RateService struct {
	manager *RateManager
	store   repository.RateEntryRepository
	logger  logger.Logger
}

// NewRateService creates a rate service. The store may be nil when
// persistence is not wanted (e.g. the inspection CLI).
func NewRateService(manager *RateManager, store repository.RateEntryRepository, log logger.Logger) *RateService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &RateService{
		manager: manager,
		store:   store,
		logger:  log,
	}
}

// Register validates and adds a rate entry, persisting it on success.
// Unknown currency codes are rejected here, before the resolver is
// reached.
func (s *RateService) Register(ctx context.Context, source, target string, rate float64, validFrom, validTo time.Time) (*entity.RateEntry, error) {
	requestID := middleware.GetRequestID(ctx)

	if _, err := currency.Get(source); err != nil {
		return nil, err
	}
	if _, err := currency.Get(target); err != nil {
		return nil, err
	}

	entry := entity.RateEntry{
		ID:        uuid.NewString(),
		Source:    source,
		Target:    target,
		Rate:      rate,
		ValidFrom: validFrom,
		ValidTo:   validTo,
	}

	if err := s.manager.Add(entry); err != nil {
		s.logger.Warn("Rate registration rejected", map[string]interface{}{
			"request_id": requestID,
			"source":     source,
			"target":     target,
			"rate":       rate,
			"error":      err.Error(),
		})
		return nil, err
	}

	if s.store != nil {
		if err := s.store.Save(ctx, &entry); err != nil {
			return nil, fmt.Errorf("failed to persist rate entry: %w", err)
		}
	}

	return &entry, nil
}

// Clear resets the rate table to its baseline and purges persisted
// entries.
func (s *RateService) Clear(ctx context.Context) error {
	s.manager.Clear()

	if s.store != nil {
		if err := s.store.Purge(ctx); err != nil {
			return fmt.Errorf("failed to purge persisted rate entries: %w", err)
		}
	}

	s.logger.Info("Rate table cleared", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
	})
	return nil
}

// Lookup validates the currency codes and resolves the pair on the given
// date.
func (s *RateService) Lookup(ctx context.Context, source, target string, date time.Time, kind entity.RateKind) (entity.ExchangeRate, error) {
	if _, err := currency.Get(source); err != nil {
		return entity.ExchangeRate{}, err
	}
	if _, err := currency.Get(target); err != nil {
		return entity.ExchangeRate{}, err
	}

	rate, err := s.manager.Lookup(source, target, date, kind)
	if err != nil {
		return entity.ExchangeRate{}, err
	}

	s.logger.Debug("Rate resolved", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"source":     rate.Source,
		"target":     rate.Target,
		"rate":       rate.Rate,
		"kind":       string(rate.Kind),
	})
	return rate, nil
}

// Restore replays persisted entries into the manager. Called once at
// startup; entries that fail validation are skipped with a warning so a
// corrupt record cannot prevent the service from starting.
func (s *RateService) Restore(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, nil
	}

	entries, err := s.store.LoadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load persisted rate entries: %w", err)
	}

	restored := 0
	for _, entry := range entries {
		if err := s.manager.Add(entry); err != nil {
			s.logger.Warn("Skipping invalid persisted rate entry", map[string]interface{}{
				"id":    entry.ID,
				"error": err.Error(),
			})
			continue
		}
		restored++
	}

	s.logger.Info("Persisted rate entries restored", map[string]interface{}{
		"count": restored,
	})
	return restored, nil
}
