package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSobolFirstPoints(t *testing.T) {
	s, err := NewSobolSequence(4)
	require.NoError(t, err)

	first := s.NextSequence()
	assert.Equal(t, 1.0, first.Weight)
	require.Len(t, first.Values, 4)
	for d, v := range first.Values {
		assert.Equal(t, 0.5, v, "dimension %d of the first point", d)
	}

	second := s.NextSequence()
	assert.Equal(t, 0.75, second.Values[0])
	assert.Equal(t, 0.25, second.Values[1])
}

func TestSobolDeterminismAndRestart(t *testing.T) {
	a, err := NewSobolSequence(5)
	require.NoError(t, err)
	b, err := NewSobolSequence(5)
	require.NoError(t, err)

	var recorded [][]float64
	for i := 0; i < 64; i++ {
		pa := a.NextSequence()
		pb := b.NextSequence()
		assert.Equal(t, pa.Values, pb.Values, "point %d", i)
		recorded = append(recorded, pa.Values)
	}

	a.Restart()
	for i := 0; i < 64; i++ {
		assert.Equal(t, recorded[i], a.NextSequence().Values, "restarted point %d", i)
	}
}

func TestSobolValuesInUnitInterval(t *testing.T) {
	s, err := NewSobolSequence(MaxSobolDimension)
	require.NoError(t, err)

	for i := 0; i < 256; i++ {
		p := s.NextSequence()
		for d, v := range p.Values {
			assert.GreaterOrEqual(t, v, 0.0, "point %d dimension %d", i, d)
			assert.Less(t, v, 1.0, "point %d dimension %d", i, d)
		}
	}
}

func TestSobolDimensionBounds(t *testing.T) {
	_, err := NewSobolSequence(0)
	assert.Error(t, err)

	_, err = NewSobolSequence(MaxSobolDimension + 1)
	assert.Error(t, err)
}
