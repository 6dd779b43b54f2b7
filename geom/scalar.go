// Package geom defines the axis-aligned regions and rays that quadtrees and octrees are built
// over. Regions are half-open: the lower bound of every axis is inclusive and the upper bound is
// exclusive.
package geom

import (
	"golang.org/x/exp/constraints"
)

// Scalar is the coordinate domain of a region. Integer domains split with floor division,
// floating domains split exactly.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// DefaultFloatMinimum is the minimum child size used by floating domains when none is configured.
const DefaultFloatMinimum = 1e-4

// Integral reports whether T is an integer domain.
func Integral[T Scalar]() bool {
	half := 0.5
	return T(half) == 0
}

// DefaultMinimum returns the smallest child size a node of domain T may be split into when no
// minimum is configured: one unit for integers and DefaultFloatMinimum for floats.
func DefaultMinimum[T Scalar]() T {
	if Integral[T]() {
		return 1
	}
	m := DefaultFloatMinimum
	return T(m)
}

// Midpoint returns the midpoint of [lower, upper). Integer domains round toward negative infinity
// and never overflow, even when upper-lower exceeds the range of T.
func Midpoint[T Scalar](lower, upper T) T {
	if !Integral[T]() {
		return lower + (upper-lower)/2
	}
	half := lower/2 + upper/2
	switch rem := lower - lower/2*2 + upper - upper/2*2; {
	case rem == 2:
		half++
	case rem < 0:
		half--
	}
	return half
}

// halvesFit reports whether [lower, upper) can be bisected into two non-empty halves that are
// both at least minimum wide.
func halvesFit[T Scalar](lower, upper, minimum T) bool {
	mid := Midpoint(lower, upper)
	if mid <= lower || mid >= upper {
		return false
	}
	if !Integral[T]() {
		return mid-lower >= minimum && upper-mid >= minimum
	}
	// Spans are measured in uint64 so a half wider than T's range does not wrap.
	floor := uint64(int64(minimum))
	return span(lower, mid) >= floor && span(mid, upper) >= floor
}

// span returns upper-lower for integer domains where upper > lower.
func span[T Scalar](lower, upper T) uint64 {
	return uint64(int64(upper)) - uint64(int64(lower))
}

func orDefault[T Scalar](v T) T {
	if v == 0 {
		return DefaultMinimum[T]()
	}
	return v
}
