// Package random provides the deterministic sample-sequence generators
// used for reproducible numeric comparisons: a Mersenne Twister uniform
// generator and a Sobol low-discrepancy sequence.
package random

// Sample is one draw from a uniform generator, carrying its statistical
// weight.
type Sample struct {
	Value  float64
	Weight float64
}

// SequenceSample is one multi-dimensional point from a low-discrepancy
// sequence.
type SequenceSample struct {
	Values []float64
	Weight float64
}
