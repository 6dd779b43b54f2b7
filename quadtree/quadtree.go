// Package quadtree indexes items by axis-aligned rectangles. It is the two dimensional
// instantiation of spatialtree: every node splits into four quadrants, ordered
// (low x, low y), (low x, high y), (high x, low y), (high x, high y).
package quadtree

import (
	"github.com/golang/geo/r2"

	"go.viam.com/spatialindex/geom"
	"go.viam.com/spatialindex/logging"
	"go.viam.com/spatialindex/spatialtree"
)

type (
	// Config describes the rectangle a quadtree covers and its smallest quadrant size.
	Config[T geom.Scalar] = spatialtree.Config[geom.Rect[T], geom.Vec2[T]]
	// Tree is a quadtree of items of type I over coordinates of type T.
	Tree[I comparable, T geom.Scalar] = spatialtree.Tree[I, geom.Rect[T], geom.Vec2[T]]
	// Node is a quadrant of a Tree.
	Node[I comparable, T geom.Scalar] = spatialtree.Node[I, geom.Rect[T], geom.Vec2[T]]
	// Visitor is called by Tree.IterateNodes.
	Visitor[I comparable, T geom.Scalar] = spatialtree.Visitor[I, geom.Rect[T], geom.Vec2[T]]
	// Signal is returned by a Visitor to continue or stop a traversal.
	Signal = spatialtree.Signal
	// Set collects query results.
	Set[I comparable] = spatialtree.Set[I]
	// Hit is a raycast result.
	Hit[I comparable, T geom.Scalar] = spatialtree.Hit[I, geom.Rect[T]]
	// RayHits collects raycast results nearest first.
	RayHits[I comparable, T geom.Scalar] = spatialtree.RayHits[I, geom.Rect[T]]
	// Ray is a half-line cast through a quadtree.
	Ray[T geom.Scalar] = geom.Ray2[T]
)

// Traversal signals.
const (
	Continue  = spatialtree.Continue
	Terminate = spatialtree.Terminate
)

const loggerName = "quadtree"

// New returns an empty quadtree. The tree logs to a "quadtree" sublogger of logger, which may be
// nil.
func New[I comparable, T geom.Scalar](cfg Config[T], logger logging.Logger) (*Tree[I, T], error) {
	if logger == nil {
		logger = logging.NewBlankLogger(loggerName)
	} else {
		logger = logger.Sublogger(loggerName)
	}
	return spatialtree.New[I](cfg, logger)
}

// NewConfig returns a config covering [minX, maxX) x [minY, maxY) with default quadrant sizes.
func NewConfig[T geom.Scalar](minX, minY, maxX, maxY T, trimOnRemove bool) (Config[T], error) {
	region, err := geom.NewRect(minX, minY, maxX, maxY)
	if err != nil {
		return Config[T]{}, err
	}
	return Config[T]{Region: region, TrimOnRemove: trimOnRemove}, nil
}

// ParseConfig decodes and validates a quadtree config from an attribute map such as
//
//	{"region": {"min": {"x": 0, "y": 0}, "max": {"x": 100, "y": 100}}, "trim_on_remove": true}
func ParseConfig[T geom.Scalar](attributes map[string]interface{}) (Config[T], error) {
	return spatialtree.DecodeConfig[geom.Rect[T], geom.Vec2[T]](attributes)
}

// ParseConfigText decodes and validates a quadtree config from a JSON5 document.
func ParseConfigText[T geom.Scalar](data []byte) (Config[T], error) {
	return spatialtree.DecodeConfigText[geom.Rect[T], geom.Vec2[T]](data)
}

// NewRay returns a ray from origin along direction for a quadtree over T.
func NewRay[T geom.Scalar](origin, direction r2.Point) (Ray[T], error) {
	return geom.NewRay2[T](origin, direction)
}

// Map returns a new quadtree holding f(item, region) for every item of tree.
func Map[J, I comparable, T geom.Scalar](tree *Tree[I, T], f func(I, geom.Rect[T]) J) *Tree[J, T] {
	return spatialtree.Map(tree, f)
}
