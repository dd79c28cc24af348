// Package currency holds the static metadata for all supported currencies
// and a registry resolving ISO-style codes to their definitions.
package currency

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mhartwell/fxresolver/internal/apperrors"
	"github.com/mhartwell/fxresolver/internal/numeric"
)

// Currency describes a single currency. Values are immutable once
// registered; the resolver only ever keys on Code.
type Currency struct {
	Name             string           `json:"name"`
	Code             string           `json:"code"`
	NumericCode      int              `json:"numeric_code"`
	Symbol           string           `json:"symbol"`
	FractionSymbol   string           `json:"fraction_symbol"`
	FractionsPerUnit int              `json:"fractions_per_unit"`
	Rounding         numeric.Rounding `json:"rounding"`
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Currency)
)

// register adds a currency definition to the registry. Region files call
// it from init; a duplicate code panics because the tables are static.
func register(c Currency) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[c.Code]; dup {
		panic("currency: duplicate code " + c.Code)
	}
	registry[c.Code] = c
}

// Get resolves a currency code. Unknown codes fail with
// apperrors.ErrUnknownCurrency; this validation happens before any rate
// lookup reaches the resolver.
func Get(code string) (Currency, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}
	return c, nil
}

// MustGet resolves a code that is known to be registered. It is used for
// the built-in baseline rates, where a miss is a programming error.
func MustGet(code string) Currency {
	c, err := Get(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Codes returns all registered codes in lexicographic order.
func Codes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
