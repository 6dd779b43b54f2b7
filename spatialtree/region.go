package spatialtree

// Region is the bounding volume a tree is built over. Implementations are axis-aligned with
// half-open bounds; see geom.Rect and geom.Box.
type Region[R any, S any] interface {
	comparable
	// Validate returns an error if the region is empty on some axis.
	Validate() error
	// Contains reports whether other lies entirely inside the region.
	Contains(other R) bool
	// Overlaps reports whether the two regions share any volume.
	Overlaps(other R) bool
	// Subdivide bisects every axis and returns the 2^D children in a fixed order.
	Subdivide() []R
	// CanSubdivide reports whether every child produced by Subdivide would be at least minimum
	// wide on every axis.
	CanSubdivide(minimum S) bool
}

// Extent is the per-axis minimum child size of a tree.
type Extent[S any] interface {
	// WithDefaults replaces unset components with the domain default.
	WithDefaults() S
	// ValidateMinimum returns an error if the extent cannot be used as a minimum child size.
	ValidateMinimum() error
}

// Ray is a half-line tested against regions during a raycast.
type Ray[R any] interface {
	// Intersects reports whether the ray passes through or touches region.
	Intersects(region R) bool
	// Distance returns the distance from the ray origin to the lower corner of region.
	Distance(region R) float64
}
