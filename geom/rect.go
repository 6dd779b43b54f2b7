package geom

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Rect is a two dimensional axis-aligned region covering [Min.X, Max.X) x [Min.Y, Max.Y).
type Rect[T Scalar] struct {
	Min Vec2[T] `json:"min"`
	Max Vec2[T] `json:"max"`
}

// NewRect returns the region [minX, maxX) x [minY, maxY), or an error wrapping ErrInvalidRegion
// if it would be empty on either axis.
func NewRect[T Scalar](minX, minY, maxX, maxY T) (Rect[T], error) {
	r := Rect[T]{Min: Vec2[T]{minX, minY}, Max: Vec2[T]{maxX, maxY}}
	if err := r.Validate(); err != nil {
		return Rect[T]{}, err
	}
	return r, nil
}

// RectFromR2 converts a golang/geo rectangle, treating its Hi bounds as exclusive.
func RectFromR2(r r2.Rect) (Rect[float64], error) {
	return NewRect(r.X.Lo, r.Y.Lo, r.X.Hi, r.Y.Hi)
}

// Validate returns an error if the region is empty on some axis.
func (r Rect[T]) Validate() error {
	if !(r.Min.X < r.Max.X) || !(r.Min.Y < r.Max.Y) {
		return newInvalidRegionError(r)
	}
	return nil
}

// Contains reports whether other lies entirely inside r.
func (r Rect[T]) Contains(other Rect[T]) bool {
	return r.Min.X <= other.Min.X && other.Max.X <= r.Max.X &&
		r.Min.Y <= other.Min.Y && other.Max.Y <= r.Max.Y
}

// Overlaps reports whether r and other share any area. Regions that only touch along an edge do
// not overlap.
func (r Rect[T]) Overlaps(other Rect[T]) bool {
	return r.Min.X < other.Max.X && other.Min.X < r.Max.X &&
		r.Min.Y < other.Max.Y && other.Min.Y < r.Max.Y
}

// Width is the extent along X. For integer domains it wraps when the extent exceeds the range of T.
func (r Rect[T]) Width() T {
	return r.Max.X - r.Min.X
}

// Height is the extent along Y. For integer domains it wraps when the extent exceeds the range of T.
func (r Rect[T]) Height() T {
	return r.Max.Y - r.Min.Y
}

// Size returns the extent along every axis.
func (r Rect[T]) Size() Vec2[T] {
	return Vec2[T]{r.Width(), r.Height()}
}

// Lower returns the inclusive lower corner.
func (r Rect[T]) Lower() Vec2[T] {
	return r.Min
}

// CanSubdivide reports whether both halves of every axis would be at least minimum wide.
func (r Rect[T]) CanSubdivide(minimum Vec2[T]) bool {
	return halvesFit(r.Min.X, r.Max.X, minimum.X) &&
		halvesFit(r.Min.Y, r.Max.Y, minimum.Y)
}

// Subdivide bisects r on both axes and returns the four quadrants. X varies slowest:
// (low x, low y), (low x, high y), (high x, low y), (high x, high y).
func (r Rect[T]) Subdivide() []Rect[T] {
	midX := Midpoint(r.Min.X, r.Max.X)
	midY := Midpoint(r.Min.Y, r.Max.Y)
	xs := [2][2]T{{r.Min.X, midX}, {midX, r.Max.X}}
	ys := [2][2]T{{r.Min.Y, midY}, {midY, r.Max.Y}}

	quadrants := make([]Rect[T], 0, 4)
	for _, x := range xs {
		for _, y := range ys {
			quadrants = append(quadrants, Rect[T]{
				Min: Vec2[T]{x[0], y[0]},
				Max: Vec2[T]{x[1], y[1]},
			})
		}
	}
	return quadrants
}

// R2 converts r into a golang/geo rectangle.
func (r Rect[T]) R2() r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: float64(r.Min.X), Hi: float64(r.Max.X)},
		Y: r1.Interval{Lo: float64(r.Min.Y), Hi: float64(r.Max.Y)},
	}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("[%v, %v) x [%v, %v)", r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}
