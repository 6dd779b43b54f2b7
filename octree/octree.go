// Package octree indexes items by axis-aligned boxes. It is the three dimensional instantiation of
// spatialtree: every node splits into eight octants, ordered with x varying slowest and z fastest.
package octree

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/spatialindex/geom"
	"go.viam.com/spatialindex/logging"
	"go.viam.com/spatialindex/spatialtree"
)

type (
	// Config describes the box an octree covers and its smallest octant size.
	Config[T geom.Scalar] = spatialtree.Config[geom.Box[T], geom.Vec3[T]]
	// Tree is an octree of items of type I over coordinates of type T.
	Tree[I comparable, T geom.Scalar] = spatialtree.Tree[I, geom.Box[T], geom.Vec3[T]]
	// Node is an octant of a Tree.
	Node[I comparable, T geom.Scalar] = spatialtree.Node[I, geom.Box[T], geom.Vec3[T]]
	// Visitor is called by Tree.IterateNodes.
	Visitor[I comparable, T geom.Scalar] = spatialtree.Visitor[I, geom.Box[T], geom.Vec3[T]]
	// Signal is returned by a Visitor to continue or stop a traversal.
	Signal = spatialtree.Signal
	// Set collects query results.
	Set[I comparable] = spatialtree.Set[I]
	// Hit is a raycast result.
	Hit[I comparable, T geom.Scalar] = spatialtree.Hit[I, geom.Box[T]]
	// RayHits collects raycast results nearest first.
	RayHits[I comparable, T geom.Scalar] = spatialtree.RayHits[I, geom.Box[T]]
	// Ray is a half-line cast through an octree.
	Ray[T geom.Scalar] = geom.Ray3[T]
)

// Each node in the octree is either an internal node which links to eight octants, an empty leaf
// with no items or further links, or a filled leaf holding items that fit no smaller octant.
const (
	InternalNode = NodeType(iota)
	LeafNodeEmpty
	LeafNodeFilled
)

// NodeType represents the possible types of nodes in an octree.
type NodeType uint8

func (nt NodeType) String() string {
	switch nt {
	case InternalNode:
		return "internal"
	case LeafNodeEmpty:
		return "empty leaf"
	case LeafNodeFilled:
		return "filled leaf"
	default:
		return "unknown"
	}
}

// TypeOf classifies node. Internal nodes may hold items of their own.
func TypeOf[I comparable, T geom.Scalar](node *Node[I, T]) NodeType {
	switch {
	case !node.Leaf():
		return InternalNode
	case node.Len() == 0:
		return LeafNodeEmpty
	default:
		return LeafNodeFilled
	}
}

// Traversal signals.
const (
	Continue  = spatialtree.Continue
	Terminate = spatialtree.Terminate
)

const loggerName = "octree"

// New returns an empty octree. The tree logs to an "octree" sublogger of logger, which may be nil.
func New[I comparable, T geom.Scalar](cfg Config[T], logger logging.Logger) (*Tree[I, T], error) {
	if logger == nil {
		logger = logging.NewBlankLogger(loggerName)
	} else {
		logger = logger.Sublogger(loggerName)
	}
	return spatialtree.New[I](cfg, logger)
}

// NewConfig returns a config covering the box from lower to upper with default octant sizes.
func NewConfig[T geom.Scalar](lower, upper geom.Vec3[T], trimOnRemove bool) (Config[T], error) {
	region, err := geom.NewBox(lower.X, lower.Y, lower.Z, upper.X, upper.Y, upper.Z)
	if err != nil {
		return Config[T]{}, err
	}
	return Config[T]{Region: region, TrimOnRemove: trimOnRemove}, nil
}

// NewCubeConfig returns a config for a cube of the given side length centered on center.
func NewCubeConfig(center r3.Vector, sideLength float64, trimOnRemove bool) (Config[float64], error) {
	if !(sideLength > 0) {
		return Config[float64]{}, errors.Errorf("invalid side length (%.2f) for octree", sideLength)
	}
	half := r3.Vector{X: sideLength / 2, Y: sideLength / 2, Z: sideLength / 2}
	region, err := geom.BoxFromR3(center.Sub(half), center.Add(half))
	if err != nil {
		return Config[float64]{}, err
	}
	return Config[float64]{Region: region, TrimOnRemove: trimOnRemove}, nil
}

// ParseConfig decodes and validates an octree config from an attribute map such as
//
//	{"region": {"min": {"x": 0, "y": 0, "z": 0}, "max": {"x": 8, "y": 8, "z": 8}}}
func ParseConfig[T geom.Scalar](attributes map[string]interface{}) (Config[T], error) {
	return spatialtree.DecodeConfig[geom.Box[T], geom.Vec3[T]](attributes)
}

// ParseConfigText decodes and validates an octree config from a JSON5 document.
func ParseConfigText[T geom.Scalar](data []byte) (Config[T], error) {
	return spatialtree.DecodeConfigText[geom.Box[T], geom.Vec3[T]](data)
}

// NewRay returns a ray from origin along direction for an octree over T.
func NewRay[T geom.Scalar](origin, direction r3.Vector) (Ray[T], error) {
	return geom.NewRay3[T](origin, direction)
}

// Map returns a new octree holding f(item, region) for every item of tree.
func Map[J, I comparable, T geom.Scalar](tree *Tree[I, T], f func(I, geom.Box[T]) J) *Tree[J, T] {
	return spatialtree.Map(tree, f)
}
