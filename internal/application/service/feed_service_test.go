package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mhartwell/fxresolver/internal/application/service"
	"github.com/mhartwell/fxresolver/internal/domain/entity"
	"github.com/mhartwell/fxresolver/internal/mocks"
)

func TestRefreshRegistersSheetQuotes(t *testing.T) {
	date := entity.Day(2024, time.June, 14)
	sheet := &entity.RateSheet{
		Base: "EUR",
		Date: date,
		Rates: map[string]float64{
			"USD": 1.0850,
			"GBP": 0.8520,
			"XQZ": 2.0, // not in the registry, must be skipped
		},
	}

	provider := new(mocks.MockRateSheetProvider)
	provider.On("FetchRateSheet", mock.Anything, date).Return(sheet, nil)

	manager := service.NewRateManager(nil)
	feed := service.NewFeedService(provider, manager, nil, nil)

	registered, err := feed.Refresh(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 2, registered)

	rate, err := manager.Lookup("EUR", "USD", date, service.KindAny)
	require.NoError(t, err)
	assert.Equal(t, 1.0850, rate.Rate)
	assert.Equal(t, entity.Direct, rate.Kind)

	// feed quotes are valid for the sheet date only
	_, err = manager.Lookup("EUR", "USD", date.AddDate(0, 0, 1), service.KindAny)
	assert.Error(t, err)

	provider.AssertExpectations(t)
}

func TestRefreshPersistsQuotes(t *testing.T) {
	date := entity.Day(2024, time.June, 14)
	sheet := &entity.RateSheet{
		Base:  "EUR",
		Date:  date,
		Rates: map[string]float64{"USD": 1.0850},
	}

	provider := new(mocks.MockRateSheetProvider)
	provider.On("FetchRateSheet", mock.Anything, date).Return(sheet, nil)

	store := new(mocks.MockRateEntryRepository)
	store.On("Save", mock.Anything, mock.AnythingOfType("*entity.RateEntry")).Return(nil)

	feed := service.NewFeedService(provider, service.NewRateManager(nil), store, nil)

	registered, err := feed.Refresh(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 1, registered)

	store.AssertNumberOfCalls(t, "Save", 1)
}

func TestRefreshFailsOnProviderError(t *testing.T) {
	date := entity.Day(2024, time.June, 14)

	provider := new(mocks.MockRateSheetProvider)
	provider.On("FetchRateSheet", mock.Anything, date).Return(nil, errors.New("feed unreachable"))

	feed := service.NewFeedService(provider, service.NewRateManager(nil), nil, nil)

	_, err := feed.Refresh(context.Background(), date)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch rate sheet")
}

func TestRefreshFailsOnUnknownBase(t *testing.T) {
	date := entity.Day(2024, time.June, 14)
	sheet := &entity.RateSheet{
		Base:  "XQZ",
		Date:  date,
		Rates: map[string]float64{"USD": 1.0850},
	}

	provider := new(mocks.MockRateSheetProvider)
	provider.On("FetchRateSheet", mock.Anything, date).Return(sheet, nil)

	feed := service.NewFeedService(provider, service.NewRateManager(nil), nil, nil)

	_, err := feed.Refresh(context.Background(), date)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unusable base")
}

func TestRefreshSkipsInvalidQuotes(t *testing.T) {
	date := entity.Day(2024, time.June, 14)
	sheet := &entity.RateSheet{
		Base: "EUR",
		Date: date,
		Rates: map[string]float64{
			"USD": 1.0850,
			"GBP": -0.8520,
		},
	}

	provider := new(mocks.MockRateSheetProvider)
	provider.On("FetchRateSheet", mock.Anything, date).Return(sheet, nil)

	manager := service.NewRateManager(nil)
	feed := service.NewFeedService(provider, manager, nil, nil)

	registered, err := feed.Refresh(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 1, registered)

	_, err = manager.Lookup("EUR", "GBP", date, service.KindAny)
	assert.Error(t, err)
}
