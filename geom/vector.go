package geom

import (
	"fmt"
)

// Vec2 is a two dimensional coordinate or extent.
type Vec2[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Vec3 is a three dimensional coordinate or extent.
type Vec3[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Float64s returns the components as float64s, in axis order.
func (v Vec2[T]) Float64s() []float64 {
	return []float64{float64(v.X), float64(v.Y)}
}

// Float64s returns the components as float64s, in axis order.
func (v Vec3[T]) Float64s() []float64 {
	return []float64{float64(v.X), float64(v.Y), float64(v.Z)}
}

// WithDefaults replaces zero components with the domain's default minimum child size.
func (v Vec2[T]) WithDefaults() Vec2[T] {
	return Vec2[T]{orDefault(v.X), orDefault(v.Y)}
}

// WithDefaults replaces zero components with the domain's default minimum child size.
func (v Vec3[T]) WithDefaults() Vec3[T] {
	return Vec3[T]{orDefault(v.X), orDefault(v.Y), orDefault(v.Z)}
}

// ValidateMinimum returns an error if v cannot be used as a minimum child size.
func (v Vec2[T]) ValidateMinimum() error {
	if !(v.X >= 0) || !(v.Y >= 0) {
		return newNegativeMinimumError(v)
	}
	return nil
}

// ValidateMinimum returns an error if v cannot be used as a minimum child size.
func (v Vec3[T]) ValidateMinimum() error {
	if !(v.X >= 0) || !(v.Y >= 0) || !(v.Z >= 0) {
		return newNegativeMinimumError(v)
	}
	return nil
}
