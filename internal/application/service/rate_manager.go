package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/mhartwell/fxresolver/internal/apperrors"
	"github.com/mhartwell/fxresolver/internal/domain/currency"
	"github.com/mhartwell/fxresolver/internal/domain/entity"
	"github.com/mhartwell/fxresolver/internal/infrastructure/cache"
	"github.com/mhartwell/fxresolver/internal/infrastructure/logger"
)

// KindAny places no constraint on the kind of a resolved rate.
const KindAny entity.RateKind = ""

// RateManager owns the in-memory exchange-rate table and answers lookup
// queries, deriving rates through vehicle currencies when no direct entry
// matches. It is safe for concurrent use; construct one and inject it
// where resolution is needed. Lookups are pure in-memory operations, so
// none of the methods take a context.
type RateManager struct {
	mu      sync.RWMutex
	buckets map[string][]entity.RateEntry
	// pair keys in first-insertion order; vehicle candidates are scanned
	// in this order so path selection is deterministic
	order  []string
	cache  *cache.ResolutionCache
	logger logger.Logger
}

// NewRateManager creates a manager seeded with the known historical
// rates.
func NewRateManager(log logger.Logger) *RateManager {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	m := &RateManager{
		cache:  cache.NewResolutionCache(),
		logger: log,
	}
	m.reset()
	return m
}

// pairKey normalizes a currency pair so {A,B} and {B,A} share a bucket.
func pairKey(a, b string) string {
	if a < b {
		return a + "/" + b
	}
	return b + "/" + a
}

// Add appends a rate entry to the table. Overlapping or redundant
// entries are permitted; conflicts are resolved at lookup time in favor
// of the most recently added matching entry.
func (m *RateManager) Add(e entity.RateEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	m.append(e)
	m.mu.Unlock()
	m.cache.Clear()

	m.logger.Info("Rate entry added", map[string]interface{}{
		"source":     e.Source,
		"target":     e.Target,
		"rate":       e.Rate,
		"valid_from": e.ValidFrom.Format("2006-01-02"),
		"valid_to":   e.ValidTo.Format("2006-01-02"),
	})
	return nil
}

// Clear discards every entry and reseeds the baseline of known
// historical rates. Repeated calls always produce the same table.
func (m *RateManager) Clear() {
	m.mu.Lock()
	m.reset()
	m.mu.Unlock()
	m.cache.Clear()

	m.logger.Info("Rate table cleared and reseeded", nil)
}

// append assumes m.mu is held for writing.
func (m *RateManager) append(e entity.RateEntry) {
	key := pairKey(e.Source, e.Target)
	if _, seen := m.buckets[key]; !seen {
		m.order = append(m.order, key)
	}
	m.buckets[key] = append(m.buckets[key], e)
}

// reset assumes m.mu is held for writing. It rebuilds the table with the
// fixed conversions of currencies obsoleted by a successor unit.
func (m *RateManager) reset() {
	m.buckets = make(map[string][]entity.RateEntry)
	m.order = nil

	euroStart := entity.Day(1999, time.January, 1)
	for _, known := range []struct {
		target string
		rate   float64
		from   time.Time
	}{
		{"ATS", 13.7603, euroStart},
		{"BEF", 40.3399, euroStart},
		{"DEM", 1.95583, euroStart},
		{"ESP", 166.386, euroStart},
		{"FIM", 5.94573, euroStart},
		{"FRF", 6.55957, euroStart},
		{"GRD", 340.750, entity.Day(2001, time.January, 1)},
		{"IEP", 0.787564, euroStart},
		{"ITL", 1936.27, euroStart},
		{"LUF", 40.3399, euroStart},
		{"NLG", 2.20371, euroStart},
		{"PTE", 200.482, euroStart},
	} {
		m.append(entity.RateEntry{
			Source:    currency.MustGet("EUR").Code,
			Target:    currency.MustGet(known.target).Code,
			Rate:      known.rate,
			ValidFrom: known.from,
			ValidTo:   entity.MaxDate(),
		})
	}

	// other redenominations
	for _, known := range []struct {
		source, target string
		rate           float64
		from           time.Time
	}{
		{"TRY", "TRL", 1000000.0, entity.Day(2005, time.January, 1)},
		{"RON", "ROL", 10000.0, entity.Day(2005, time.July, 1)},
		{"PEN", "PEI", 1000000.0, entity.Day(1991, time.July, 1)},
		{"PEI", "PEH", 1000.0, entity.Day(1985, time.February, 1)},
	} {
		m.append(entity.RateEntry{
			Source:    currency.MustGet(known.source).Code,
			Target:    currency.MustGet(known.target).Code,
			Rate:      known.rate,
			ValidFrom: known.from,
			ValidTo:   entity.MaxDate(),
		})
	}
}

// Lookup resolves the exchange rate between source and target on the
// given date. kind restricts the result: KindAny accepts either, while
// Direct or Derived reject a result of the other kind even when one is
// computable.
func (m *RateManager) Lookup(source, target string, date time.Time, kind entity.RateKind) (entity.ExchangeRate, error) {
	if source == target {
		return constrain(entity.ExchangeRate{
			Source: source,
			Target: target,
			Rate:   1.0,
			Kind:   entity.Direct,
		}, kind)
	}

	if cached, ok := m.cache.Get(source, target, date); ok {
		return constrain(cached, kind)
	}

	m.mu.RLock()
	rate, err := m.smartLookup(source, target, date, map[string]bool{})
	m.mu.RUnlock()
	if err != nil {
		m.logger.Debug("Lookup failed", map[string]interface{}{
			"source": source,
			"target": target,
			"date":   date.Format("2006-01-02"),
		})
		return entity.ExchangeRate{}, err
	}

	m.cache.Put(rate, date)
	return constrain(rate, kind)
}

// constrain enforces the requested result kind.
func constrain(rate entity.ExchangeRate, kind entity.RateKind) (entity.ExchangeRate, error) {
	if kind != KindAny && rate.Kind != kind {
		return entity.ExchangeRate{}, fmt.Errorf("%w: %s/%s resolves to a %s rate, %s requested",
			apperrors.ErrRateNotFound, rate.Source, rate.Target, rate.Kind, kind)
	}
	return rate, nil
}

// directLookup scans the pair bucket newest-first for an entry whose
// validity window contains date, returning the reciprocal when the entry
// was stored in the opposite orientation. Assumes m.mu is held.
func (m *RateManager) directLookup(source, target string, date time.Time) (entity.ExchangeRate, bool) {
	entries := m.buckets[pairKey(source, target)]
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if !e.Contains(date) {
			continue
		}
		rate := entity.ExchangeRate{Source: source, Target: target, Rate: e.Rate, Kind: entity.Direct}
		if e.Source != source {
			rate.Rate = 1.0 / e.Rate
		}
		return rate, true
	}
	return entity.ExchangeRate{}, false
}

// smartLookup prefers a direct rate and otherwise recurses through
// vehicle currencies in table order, chaining two legs per step. The
// visited set forbids revisiting currencies along a path, so the search
// terminates on any table instead of walking an unbounded graph.
// Assumes m.mu is held.
func (m *RateManager) smartLookup(source, target string, date time.Time, visited map[string]bool) (entity.ExchangeRate, error) {
	if rate, ok := m.directLookup(source, target, date); ok {
		return rate, nil
	}

	visited[source] = true
	for _, key := range m.order {
		bucket := m.buckets[key]
		if len(bucket) == 0 {
			continue
		}
		a, b := bucket[0].Source, bucket[0].Target
		var vehicle string
		switch source {
		case a:
			vehicle = b
		case b:
			vehicle = a
		default:
			continue
		}
		if visited[vehicle] {
			continue
		}

		head, ok := m.directLookup(source, vehicle, date)
		if !ok {
			continue
		}
		tail, err := m.smartLookup(vehicle, target, date, cloneVisited(visited))
		if err != nil {
			// dead end through this vehicle, try the next one
			continue
		}
		chained, err := entity.Chain(head, tail)
		if err != nil {
			continue
		}
		return chained, nil
	}

	return entity.ExchangeRate{}, fmt.Errorf("%w: no conversion available from %s to %s on %s",
		apperrors.ErrRateNotFound, source, target, date.Format("2006-01-02"))
}

// cloneVisited copies the forbidden set so sibling branches can reuse
// currencies a failed branch already tried.
func cloneVisited(visited map[string]bool) map[string]bool {
	clone := make(map[string]bool, len(visited))
	for code := range visited {
		clone[code] = true
	}
	return clone
}
