package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhartwell/fxresolver/internal/apperrors"
	"github.com/mhartwell/fxresolver/internal/domain/entity"
)

func testDate() time.Time {
	return entity.Day(2024, time.June, 15)
}

func yearEntry(source, target string, rate float64) entity.RateEntry {
	return entity.RateEntry{
		Source:    source,
		Target:    target,
		Rate:      rate,
		ValidFrom: entity.Day(2024, time.January, 1),
		ValidTo:   entity.Day(2024, time.December, 31),
	}
}

func TestLookupIdentity(t *testing.T) {
	m := NewRateManager(nil)

	rate, err := m.Lookup("EUR", "EUR", testDate(), KindAny)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate.Rate)
	assert.Equal(t, entity.Direct, rate.Kind)
	assert.Equal(t, "EUR", rate.Source)
	assert.Equal(t, "EUR", rate.Target)
}

func TestLookupDirect(t *testing.T) {
	m := NewRateManager(nil)
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0850)))

	rate, err := m.Lookup("EUR", "USD", testDate(), KindAny)
	require.NoError(t, err)
	assert.Equal(t, 1.0850, rate.Rate)
	assert.Equal(t, entity.Direct, rate.Kind)
}

func TestLookupReciprocal(t *testing.T) {
	m := NewRateManager(nil)
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0850)))

	rate, err := m.Lookup("USD", "EUR", testDate(), KindAny)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/1.0850, rate.Rate, 1e-12)
	assert.Equal(t, entity.Direct, rate.Kind)
	assert.Equal(t, "USD", rate.Source)
	assert.Equal(t, "EUR", rate.Target)
}

func TestLookupNewestEntryWins(t *testing.T) {
	m := NewRateManager(nil)
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0800)))
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.1000)))

	rate, err := m.Lookup("EUR", "USD", testDate(), KindAny)
	require.NoError(t, err)
	assert.Equal(t, 1.1000, rate.Rate)

	// an entry stored in the opposite orientation still supersedes
	require.NoError(t, m.Add(yearEntry("USD", "EUR", 0.9000)))

	rate, err = m.Lookup("EUR", "USD", testDate(), KindAny)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/0.9000, rate.Rate, 1e-12)
}

func TestLookupTriangulation(t *testing.T) {
	m := NewRateManager(nil)
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0850)))
	require.NoError(t, m.Add(yearEntry("USD", "JPY", 148.50)))

	rate, err := m.Lookup("EUR", "JPY", testDate(), KindAny)
	require.NoError(t, err)
	assert.Equal(t, entity.Derived, rate.Kind)
	assert.InDelta(t, 1.0850*148.50, rate.Rate, 1e-9)
	assert.Equal(t, "EUR", rate.Source)
	assert.Equal(t, "JPY", rate.Target)
}

func TestLookupDeterministicPathSelection(t *testing.T) {
	// two viable paths EUR->USD->JPY and EUR->GBP->JPY; insertion order
	// decides, so the USD path must win on every run
	for run := 0; run < 20; run++ {
		m := NewRateManager(nil)
		require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0850)))
		require.NoError(t, m.Add(yearEntry("USD", "JPY", 148.50)))
		require.NoError(t, m.Add(yearEntry("EUR", "GBP", 0.8520)))
		require.NoError(t, m.Add(yearEntry("GBP", "JPY", 189.00)))

		rate, err := m.Lookup("EUR", "JPY", testDate(), KindAny)
		require.NoError(t, err)
		assert.InDelta(t, 1.0850*148.50, rate.Rate, 1e-9, "run %d", run)
	}
}

func TestLookupMultiHopThroughBaseline(t *testing.T) {
	m := NewRateManager(nil)

	// PEN->PEI and PEI->PEH are both seeded, so PEN->PEH chains them
	rate, err := m.Lookup("PEN", "PEH", testDate(), KindAny)
	require.NoError(t, err)
	assert.Equal(t, entity.Derived, rate.Kind)
	assert.InDelta(t, 1000000.0*1000.0, rate.Rate, 1e-3)
}

func TestLookupOutsideValidityWindow(t *testing.T) {
	m := NewRateManager(nil)
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0850)))

	_, err := m.Lookup("EUR", "USD", entity.Day(2025, time.March, 1), KindAny)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	// boundary dates are inclusive
	rate, err := m.Lookup("EUR", "USD", entity.Day(2024, time.January, 1), KindAny)
	require.NoError(t, err)
	assert.Equal(t, 1.0850, rate.Rate)

	rate, err = m.Lookup("EUR", "USD", entity.Day(2024, time.December, 31), KindAny)
	require.NoError(t, err)
	assert.Equal(t, 1.0850, rate.Rate)
}

func TestLookupKindConstraint(t *testing.T) {
	m := NewRateManager(nil)
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0850)))
	require.NoError(t, m.Add(yearEntry("USD", "JPY", 148.50)))

	t.Run("Direct accepted as Direct", func(t *testing.T) {
		rate, err := m.Lookup("EUR", "USD", testDate(), entity.Direct)
		require.NoError(t, err)
		assert.Equal(t, entity.Direct, rate.Kind)
	})

	t.Run("Derived rejected as Direct", func(t *testing.T) {
		_, err := m.Lookup("EUR", "JPY", testDate(), entity.Direct)
		assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	})

	t.Run("Direct rejected as Derived", func(t *testing.T) {
		_, err := m.Lookup("EUR", "USD", testDate(), entity.Derived)
		assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	})

	t.Run("Identity rejected as Derived", func(t *testing.T) {
		_, err := m.Lookup("EUR", "EUR", testDate(), entity.Derived)
		assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	})
}

func TestAddRejectsInvalidEntries(t *testing.T) {
	m := NewRateManager(nil)

	cases := []struct {
		name  string
		entry entity.RateEntry
	}{
		{"zero rate", yearEntry("EUR", "USD", 0.0)},
		{"negative rate", yearEntry("EUR", "USD", -1.0850)},
		{"identical currencies", yearEntry("EUR", "EUR", 1.0)},
		{"inverted window", entity.RateEntry{
			Source:    "EUR",
			Target:    "USD",
			Rate:      1.0850,
			ValidFrom: entity.Day(2024, time.December, 31),
			ValidTo:   entity.Day(2024, time.January, 1),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := m.Add(tc.entry)
			assert.ErrorIs(t, err, apperrors.ErrInvalidEntry)
		})
	}

	// rejected entries never reach the table
	_, err := m.Lookup("EUR", "USD", testDate(), KindAny)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestClearReseedsBaseline(t *testing.T) {
	m := NewRateManager(nil)
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0850)))

	m.Clear()

	_, err := m.Lookup("EUR", "USD", testDate(), KindAny)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	rate, err := m.Lookup("EUR", "DEM", testDate(), KindAny)
	require.NoError(t, err)
	assert.Equal(t, 1.95583, rate.Rate)
	assert.Equal(t, entity.Direct, rate.Kind)
}

func TestClearIsIdempotent(t *testing.T) {
	m := NewRateManager(nil)

	m.Clear()
	first, err := m.Lookup("EUR", "ITL", testDate(), KindAny)
	require.NoError(t, err)

	m.Clear()
	second, err := m.Lookup("EUR", "ITL", testDate(), KindAny)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBaselineRespectsStartDates(t *testing.T) {
	m := NewRateManager(nil)

	// GRD joined the fixed-rate regime in 2001
	_, err := m.Lookup("EUR", "GRD", entity.Day(2000, time.June, 1), KindAny)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	rate, err := m.Lookup("EUR", "GRD", entity.Day(2001, time.June, 1), KindAny)
	require.NoError(t, err)
	assert.Equal(t, 340.750, rate.Rate)

	// TRY/TRL redenomination starts in 2005
	_, err = m.Lookup("TRY", "TRL", entity.Day(2004, time.June, 1), KindAny)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	rate, err = m.Lookup("TRY", "TRL", entity.Day(2005, time.June, 1), KindAny)
	require.NoError(t, err)
	assert.Equal(t, 1000000.0, rate.Rate)
}

func TestLookupCachesDerivedResults(t *testing.T) {
	m := NewRateManager(nil)
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0850)))
	require.NoError(t, m.Add(yearEntry("USD", "JPY", 148.50)))

	first, err := m.Lookup("EUR", "JPY", testDate(), KindAny)
	require.NoError(t, err)

	second, err := m.Lookup("EUR", "JPY", testDate(), KindAny)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// registering a new entry invalidates cached resolutions
	require.NoError(t, m.Add(yearEntry("EUR", "JPY", 161.00)))

	direct, err := m.Lookup("EUR", "JPY", testDate(), KindAny)
	require.NoError(t, err)
	assert.Equal(t, entity.Direct, direct.Kind)
	assert.Equal(t, 161.00, direct.Rate)
}

func TestLookupConcurrentAccess(t *testing.T) {
	m := NewRateManager(nil)
	require.NoError(t, m.Add(yearEntry("EUR", "USD", 1.0850)))
	require.NoError(t, m.Add(yearEntry("USD", "JPY", 148.50)))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				rate, err := m.Lookup("EUR", "JPY", testDate(), KindAny)
				if err != nil {
					t.Error(err)
					return
				}
				if rate.Kind != entity.Derived {
					t.Errorf("unexpected kind %s", rate.Kind)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	close(done)
}
