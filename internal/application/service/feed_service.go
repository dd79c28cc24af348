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
)

// RateSheetProvider fetches the published rate sheet for a date from an
// external feed.
type RateSheetProvider interface {
	FetchRateSheet(ctx context.Context, date time.Time) (*entity.RateSheet, error)
}

// FeedService pulls dated rate sheets from a provider and registers each
// quote as a direct entry valid for that day.
type FeedService struct {
	provider RateSheetProvider
	manager  *RateManager
	store    repository.RateEntryRepository
	logger   logger.Logger
}

// NewFeedService creates a feed service. The store may be nil.
func NewFeedService(provider RateSheetProvider, manager *RateManager, store repository.RateEntryRepository, log logger.Logger) *FeedService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &FeedService{
		provider: provider,
		manager:  manager,
		store:    store,
		logger:   log,
	}
}

// Refresh fetches the sheet for date and registers its quotes. Quotes in
// currencies missing from the registry are skipped with a warning; the
// count of registered entries is returned.
func (s *FeedService) Refresh(ctx context.Context, date time.Time) (int, error) {
	sheet, err := s.provider.FetchRateSheet(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rate sheet: %w", err)
	}

	if _, err := currency.Get(sheet.Base); err != nil {
		return 0, fmt.Errorf("rate sheet has unusable base: %w", err)
	}

	registered := 0
	for code, rate := range sheet.Rates {
		if _, err := currency.Get(code); err != nil {
			s.logger.Warn("Skipping quote for unregistered currency", map[string]interface{}{
				"code": code,
			})
			continue
		}

		entry := entity.RateEntry{
			ID:        uuid.NewString(),
			Source:    sheet.Base,
			Target:    code,
			Rate:      rate,
			ValidFrom: sheet.Date,
			ValidTo:   sheet.Date,
		}
		if err := s.manager.Add(entry); err != nil {
			s.logger.Warn("Skipping invalid feed quote", map[string]interface{}{
				"code":  code,
				"rate":  rate,
				"error": err.Error(),
			})
			continue
		}
		if s.store != nil {
			if err := s.store.Save(ctx, &entry); err != nil {
				return registered, fmt.Errorf("failed to persist feed entry: %w", err)
			}
		}
		registered++
	}

	s.logger.Info("Rate feed refreshed", map[string]interface{}{
		"base":       sheet.Base,
		"date":       sheet.Date.Format("2006-01-02"),
		"registered": registered,
	})
	return registered, nil
}
