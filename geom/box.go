package geom

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Box is a three dimensional axis-aligned region covering
// [Min.X, Max.X) x [Min.Y, Max.Y) x [Min.Z, Max.Z).
type Box[T Scalar] struct {
	Min Vec3[T] `json:"min"`
	Max Vec3[T] `json:"max"`
}

// NewBox returns the region spanning the given bounds, or an error wrapping ErrInvalidRegion if it
// would be empty on any axis.
func NewBox[T Scalar](minX, minY, minZ, maxX, maxY, maxZ T) (Box[T], error) {
	b := Box[T]{Min: Vec3[T]{minX, minY, minZ}, Max: Vec3[T]{maxX, maxY, maxZ}}
	if err := b.Validate(); err != nil {
		return Box[T]{}, err
	}
	return b, nil
}

// BoxFromR3 builds a floating point box from its lower and upper corners.
func BoxFromR3(lower, upper r3.Vector) (Box[float64], error) {
	return NewBox(lower.X, lower.Y, lower.Z, upper.X, upper.Y, upper.Z)
}

// Validate returns an error if the region is empty on some axis.
func (b Box[T]) Validate() error {
	if !(b.Min.X < b.Max.X) || !(b.Min.Y < b.Max.Y) || !(b.Min.Z < b.Max.Z) {
		return newInvalidRegionError(b)
	}
	return nil
}

// Contains reports whether other lies entirely inside b.
func (b Box[T]) Contains(other Box[T]) bool {
	return b.Min.X <= other.Min.X && other.Max.X <= b.Max.X &&
		b.Min.Y <= other.Min.Y && other.Max.Y <= b.Max.Y &&
		b.Min.Z <= other.Min.Z && other.Max.Z <= b.Max.Z
}

// Overlaps reports whether b and other share any volume. Boxes that only touch along a face, edge
// or vertex do not overlap.
func (b Box[T]) Overlaps(other Box[T]) bool {
	return b.Min.X < other.Max.X && other.Min.X < b.Max.X &&
		b.Min.Y < other.Max.Y && other.Min.Y < b.Max.Y &&
		b.Min.Z < other.Max.Z && other.Min.Z < b.Max.Z
}

// Width is the extent along X. For integer domains it wraps when the extent exceeds the range of T.
func (b Box[T]) Width() T {
	return b.Max.X - b.Min.X
}

// Height is the extent along Y. For integer domains it wraps when the extent exceeds the range of T.
func (b Box[T]) Height() T {
	return b.Max.Y - b.Min.Y
}

// Depth is the extent along Z. For integer domains it wraps when the extent exceeds the range of T.
func (b Box[T]) Depth() T {
	return b.Max.Z - b.Min.Z
}

// Size returns the extent along every axis.
func (b Box[T]) Size() Vec3[T] {
	return Vec3[T]{b.Width(), b.Height(), b.Depth()}
}

// Lower returns the inclusive lower corner.
func (b Box[T]) Lower() Vec3[T] {
	return b.Min
}

// CanSubdivide reports whether both halves of every axis would be at least minimum wide.
func (b Box[T]) CanSubdivide(minimum Vec3[T]) bool {
	return halvesFit(b.Min.X, b.Max.X, minimum.X) &&
		halvesFit(b.Min.Y, b.Max.Y, minimum.Y) &&
		halvesFit(b.Min.Z, b.Max.Z, minimum.Z)
}

// Subdivide bisects b on every axis and returns the eight octants, X varying slowest and Z
// fastest.
func (b Box[T]) Subdivide() []Box[T] {
	midX := Midpoint(b.Min.X, b.Max.X)
	midY := Midpoint(b.Min.Y, b.Max.Y)
	midZ := Midpoint(b.Min.Z, b.Max.Z)
	xs := [2][2]T{{b.Min.X, midX}, {midX, b.Max.X}}
	ys := [2][2]T{{b.Min.Y, midY}, {midY, b.Max.Y}}
	zs := [2][2]T{{b.Min.Z, midZ}, {midZ, b.Max.Z}}

	octants := make([]Box[T], 0, 8)
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				octants = append(octants, Box[T]{
					Min: Vec3[T]{x[0], y[0], z[0]},
					Max: Vec3[T]{x[1], y[1], z[1]},
				})
			}
		}
	}
	return octants
}

// R3 returns the lower and upper corners as golang/geo vectors.
func (b Box[T]) R3() (lower, upper r3.Vector) {
	lower = r3.Vector{X: float64(b.Min.X), Y: float64(b.Min.Y), Z: float64(b.Min.Z)}
	upper = r3.Vector{X: float64(b.Max.X), Y: float64(b.Max.Y), Z: float64(b.Max.Z)}
	return lower, upper
}

func (b Box[T]) String() string {
	return fmt.Sprintf("[%v, %v) x [%v, %v) x [%v, %v)",
		b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, b.Min.Z, b.Max.Z)
}
