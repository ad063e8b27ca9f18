package sortable

import "math"

// Float is a sortable wrapper type for float64. Unlike the raw < operator it
// gives NaN a fixed place: NaN sorts before every other value and equals
// other NaNs, so sorting a slice containing NaN is still deterministic.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

func (f Float) Equals(other Float) bool {
	if f.isNaN() || other.isNaN() {
		return f.isNaN() && other.isNaN()
	}

	return float64(f) == float64(other)
}

func (f Float) LessThan(other Float) bool {
	if f.isNaN() {
		return !other.isNaN()
	}

	if other.isNaN() {
		return false
	}

	return float64(f) < float64(other)
}

func (f Float) isNaN() bool {
	return math.IsNaN(float64(f))
}
