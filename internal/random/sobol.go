package random

import (
	"fmt"
)

const sobolBits = 32

// sobolDim carries the primitive polynomial (degree and middle
// coefficient bits) and the direction-number initializers for one
// dimension beyond the first. Values follow the classic Joe–Kuo table.
type sobolDim struct {
	degree int
	poly   uint32
	init   []uint32
}

var sobolDims = []sobolDim{
	{degree: 1, poly: 0, init: []uint32{1}},
	{degree: 2, poly: 1, init: []uint32{1, 3}},
	{degree: 3, poly: 1, init: []uint32{1, 3, 1}},
	{degree: 3, poly: 2, init: []uint32{1, 1, 1}},
	{degree: 4, poly: 1, init: []uint32{1, 1, 3, 3}},
	{degree: 4, poly: 4, init: []uint32{1, 3, 5, 13}},
	{degree: 5, poly: 2, init: []uint32{1, 1, 5, 5, 17}},
	{degree: 5, poly: 4, init: []uint32{1, 1, 5, 5, 5}},
	{degree: 5, poly: 7, init: []uint32{1, 1, 7, 11, 19}},
}

// MaxSobolDimension is the largest supported dimensionality. Higher
// dimensions would need more rows of the direction-number table.
var MaxSobolDimension = len(sobolDims) + 1

// SobolSequence generates a Gray-code Sobol low-discrepancy sequence of
// the requested dimensionality. Deterministic: two sequences of the same
// dimensionality always agree point for point.
type SobolSequence struct {
	dimension int
	direction [][sobolBits]uint32
	integers  []uint32
	counter   uint64
}

// NewSobolSequence creates a sequence of the given dimensionality.
func NewSobolSequence(dimension int) (*SobolSequence, error) {
	if dimension < 1 || dimension > MaxSobolDimension {
		return nil, fmt.Errorf("sobol dimension must be between 1 and %d, got %d", MaxSobolDimension, dimension)
	}

	s := &SobolSequence{
		dimension: dimension,
		direction: make([][sobolBits]uint32, dimension),
		integers:  make([]uint32, dimension),
	}

	// first dimension: van der Corput in base 2
	for k := 0; k < sobolBits; k++ {
		s.direction[0][k] = 1 << (sobolBits - 1 - k)
	}

	for d := 1; d < dimension; d++ {
		spec := sobolDims[d-1]
		for k := 0; k < spec.degree && k < sobolBits; k++ {
			s.direction[d][k] = spec.init[k] << (sobolBits - 1 - k)
		}
		for k := spec.degree; k < sobolBits; k++ {
			v := s.direction[d][k-spec.degree]
			v ^= v >> spec.degree
			for j := 1; j < spec.degree; j++ {
				if (spec.poly>>(spec.degree-1-j))&1 != 0 {
					v ^= s.direction[d][k-j]
				}
			}
			s.direction[d][k] = v
		}
	}

	return s, nil
}

// Dimension returns the dimensionality of the sequence.
func (s *SobolSequence) Dimension() int {
	return s.dimension
}

// NextSequence returns the next point of the sequence with unit weight.
// The first point is 0.5 in every dimension.
func (s *SobolSequence) NextSequence() SequenceSample {
	// Gray-code update: flip the direction number indexed by the
	// position of the rightmost zero bit of the counter.
	c := 0
	for n := s.counter; n&1 == 1; n >>= 1 {
		c++
	}
	s.counter++

	values := make([]float64, s.dimension)
	for d := 0; d < s.dimension; d++ {
		s.integers[d] ^= s.direction[d][c]
		values[d] = float64(s.integers[d]) / 4294967296.0
	}

	return SequenceSample{Values: values, Weight: 1.0}
}

// Restart rewinds the sequence to its beginning.
func (s *SobolSequence) Restart() {
	s.counter = 0
	for d := range s.integers {
		s.integers[d] = 0
	}
}
