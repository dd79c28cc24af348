package random

const (
	mtN          = 624
	mtM          = 397
	mtMatrixA    = 0x9908b0df
	mtUpperMask  = 0x80000000
	mtLowerMask  = 0x7fffffff
	mtInitFactor = 1812433253
)

// MT19937 is the classic 32-bit Mersenne Twister uniform generator.
// Given the same seed it always produces the same sequence, which is
// what the comparison tooling depends on.
type MT19937 struct {
	state [mtN]uint32
	index int
}

// NewMT19937 creates a generator seeded with seed.
func NewMT19937(seed uint32) *MT19937 {
	g := &MT19937{}
	g.Reseed(seed)
	return g
}

// Reseed restarts the sequence from the given seed.
func (g *MT19937) Reseed(seed uint32) {
	g.state[0] = seed
	for i := uint32(1); i < mtN; i++ {
		g.state[i] = mtInitFactor*(g.state[i-1]^(g.state[i-1]>>30)) + i
	}
	g.index = mtN
}

// NextUint32 returns the next raw 32-bit word.
func (g *MT19937) NextUint32() uint32 {
	if g.index >= mtN {
		g.twist()
	}

	y := g.state[g.index]
	g.index++

	// tempering
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// NextSample returns a uniform draw on (0,1) with unit weight. The
// half-step offset keeps the endpoints strictly excluded.
func (g *MT19937) NextSample() Sample {
	return Sample{
		Value:  (float64(g.NextUint32()) + 0.5) / 4294967296.0,
		Weight: 1.0,
	}
}

func (g *MT19937) twist() {
	for i := 0; i < mtN; i++ {
		y := (g.state[i] & mtUpperMask) | (g.state[(i+1)%mtN] & mtLowerMask)
		next := g.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		g.state[i] = next
	}
	g.index = 0
}
