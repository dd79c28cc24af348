// Package mocks holds the testify mocks shared by service and handler
// tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mhartwell/fxresolver/internal/domain/entity"
)

// MockRateEntryRepository mocks the RateEntryRepository interface.
type MockRateEntryRepository struct {
	mock.Mock
}

func (m *MockRateEntryRepository) Save(ctx context.Context, entry *entity.RateEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRateEntryRepository) LoadAll(ctx context.Context) ([]entity.RateEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RateEntry), args.Error(1)
}

func (m *MockRateEntryRepository) Purge(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockRateSheetProvider mocks the rate feed provider interface.
type MockRateSheetProvider struct {
	mock.Mock
}

func (m *MockRateSheetProvider) FetchRateSheet(ctx context.Context, date time.Time) (*entity.RateSheet, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RateSheet), args.Error(1)
}
