package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Ray2 is a half-line in the plane, tested against regions of domain T. Ray arithmetic is always
// done in float64 regardless of T.
type Ray2[T Scalar] struct {
	Origin    r2.Point
	Direction r2.Point
}

// Ray3 is a half-line in space, tested against regions of domain T.
type Ray3[T Scalar] struct {
	Origin    r3.Vector
	Direction r3.Vector
}

// NewRay2 returns a ray starting at origin and heading along direction. The origin must be finite.
// The direction need not be normalized but must be finite and non-zero.
func NewRay2[T Scalar](origin, direction r2.Point) (Ray2[T], error) {
	if err := validateOrigin(origin.X, origin.Y); err != nil {
		return Ray2[T]{}, err
	}
	if err := validateDirection(direction.X, direction.Y); err != nil {
		return Ray2[T]{}, err
	}
	return Ray2[T]{Origin: origin, Direction: direction}, nil
}

// NewRay3 returns a ray starting at origin and heading along direction. The origin must be finite.
// The direction need not be normalized but must be finite and non-zero.
func NewRay3[T Scalar](origin, direction r3.Vector) (Ray3[T], error) {
	if err := validateOrigin(origin.X, origin.Y, origin.Z); err != nil {
		return Ray3[T]{}, err
	}
	if err := validateDirection(direction.X, direction.Y, direction.Z); err != nil {
		return Ray3[T]{}, err
	}
	return Ray3[T]{Origin: origin, Direction: direction}, nil
}

func validateOrigin(components ...float64) error {
	return errors.Wrap(validateFinite(components), "origin")
}

func validateDirection(components ...float64) error {
	if err := validateFinite(components); err != nil {
		return errors.Wrap(err, "direction")
	}
	if floats.Norm(components, 2) == 0 {
		return errors.Wrap(ErrInvalidRay, "direction must be non-zero")
	}
	return nil
}

func validateFinite(components []float64) error {
	if floats.HasNaN(components) {
		return errors.Wrap(ErrInvalidRay, "NaN component")
	}
	for _, c := range components {
		if math.IsInf(c, 0) {
			return errors.Wrap(ErrInvalidRay, "infinite component")
		}
	}
	return nil
}

// Intersects reports whether the ray passes through or touches region. Unlike containment, the
// test treats both bounds of every axis as closed, so a ray that only grazes the exclusive upper
// face or corner of region still hits it.
func (ray Ray2[T]) Intersects(region Rect[T]) bool {
	tmin, tmax := 0.0, math.Inf(1)
	return slab(ray.Origin.X, ray.Direction.X, float64(region.Min.X), float64(region.Max.X), &tmin, &tmax) &&
		slab(ray.Origin.Y, ray.Direction.Y, float64(region.Min.Y), float64(region.Max.Y), &tmin, &tmax)
}

// Distance is the euclidean distance from the ray origin to the region's lower corner.
func (ray Ray2[T]) Distance(region Rect[T]) float64 {
	return floats.Distance([]float64{ray.Origin.X, ray.Origin.Y}, region.Lower().Float64s(), 2)
}

func (ray Ray2[T]) String() string {
	return fmt.Sprintf("ray from %v along %v", ray.Origin, ray.Direction)
}

// Intersects reports whether the ray passes through or touches region. Both bounds of every axis
// are closed, as for Ray2.
func (ray Ray3[T]) Intersects(region Box[T]) bool {
	tmin, tmax := 0.0, math.Inf(1)
	return slab(ray.Origin.X, ray.Direction.X, float64(region.Min.X), float64(region.Max.X), &tmin, &tmax) &&
		slab(ray.Origin.Y, ray.Direction.Y, float64(region.Min.Y), float64(region.Max.Y), &tmin, &tmax) &&
		slab(ray.Origin.Z, ray.Direction.Z, float64(region.Min.Z), float64(region.Max.Z), &tmin, &tmax)
}

// Distance is the euclidean distance from the ray origin to the region's lower corner.
func (ray Ray3[T]) Distance(region Box[T]) float64 {
	return floats.Distance([]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}, region.Lower().Float64s(), 2)
}

func (ray Ray3[T]) String() string {
	return fmt.Sprintf("ray from %v along %v", ray.Origin, ray.Direction)
}

// slab narrows the ray parameter interval [tmin, tmax] to the part inside the closed interval
// [lo, hi] on one axis and reports whether anything is left.
func slab(origin, direction, lo, hi float64, tmin, tmax *float64) bool {
	if direction == 0 {
		return origin >= lo && origin <= hi
	}
	inv := 1 / direction
	t1 := (lo - origin) * inv
	t2 := (hi - origin) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	*tmin = math.Max(*tmin, t1)
	*tmax = math.Min(*tmax, t2)
	return *tmin <= *tmax
}
