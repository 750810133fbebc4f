package vmath

// Fixed point constants
// Positions and speeds are pixels scaled by One, angles are Angle units per turn scaled by One
const (
	OneBit = 8
	One    = 1 << OneBit

	AngleBit = 8
	Angle    = 1 << AngleBit

	FullTurn    = Angle * One
	HalfTurn    = FullTurn / 2
	QuarterTurn = FullTurn / 4

	LUTSize = Angle
	LUTMask = LUTSize - 1

	atanLUTSize = 256
	atanLUTMask = atanLUTSize - 1
)

// --- Arithmetic ---

func FromInt(i int) int { return i << OneBit }
func ToInt(f int) int   { return f >> OneBit }

// Abs returns absolute value
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func Square(x int) int { return x * x }

// --- Randomness ---

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a random int in [lo, hi]
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
