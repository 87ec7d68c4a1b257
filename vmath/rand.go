package vmath

// Rand is a xorshift64 generator, deterministic per seed
// Scenes own one each so randomization is reproducible in tests
type Rand struct {
	state uint64
}

// NewRand seeds a generator, zero seed is remapped since xorshift sticks at 0
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns [0, n), 0 when n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntInRange returns [lo, hi] inclusive
func (r *Rand) IntInRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float01 returns [0, 1)
func (r *Rand) Float01() float64 {
	// 53 significant bits
	return float64(r.Next()>>11) / (1 << 53)
}

// FloatInRange returns [lo, hi)
func (r *Rand) FloatInRange(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float01()
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.Float01() < p
}

// UV returns a point in the unit square
func (r *Rand) UV() Vec2 {
	return Vec2{r.Float01(), r.Float01()}
}
