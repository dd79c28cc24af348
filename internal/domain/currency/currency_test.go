package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhartwell/fxresolver/internal/apperrors"
	"github.com/mhartwell/fxresolver/internal/numeric"
)

func TestGetKnownCurrency(t *testing.T) {
	eur, err := Get("EUR")
	require.NoError(t, err)
	assert.Equal(t, "European Euro", eur.Name)
	assert.Equal(t, 978, eur.NumericCode)
	assert.Equal(t, 100, eur.FractionsPerUnit)
	assert.Equal(t, numeric.RoundClosest, eur.Rounding.Type)
	assert.Equal(t, int32(2), eur.Rounding.Precision)
}

func TestGetUnknownCurrency(t *testing.T) {
	_, err := Get("XQZ")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	// lookups are case sensitive, codes are upper case
	_, err = Get("eur")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestMustGetPanicsOnUnknownCode(t *testing.T) {
	assert.Panics(t, func() { MustGet("XQZ") })
	assert.NotPanics(t, func() { MustGet("USD") })
}

func TestBaselineCurrenciesRegistered(t *testing.T) {
	// every currency the rate manager seeds must resolve
	for _, code := range []string{
		"EUR", "ATS", "BEF", "DEM", "ESP", "FIM", "FRF", "GRD",
		"IEP", "ITL", "LUF", "NLG", "PTE",
		"TRY", "TRL", "RON", "ROL", "PEN", "PEI", "PEH",
	} {
		_, err := Get(code)
		assert.NoError(t, err, code)
	}
}

func TestCodesSortedAndUnique(t *testing.T) {
	codes := Codes()
	require.NotEmpty(t, codes)

	seen := make(map[string]bool, len(codes))
	for i, code := range codes {
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
		if i > 0 {
			assert.Less(t, codes[i-1], code, "codes must be sorted")
		}
	}
	assert.True(t, seen["USD"])
	assert.True(t, seen["EUR"])
}
