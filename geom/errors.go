package geom

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRegion is wrapped by every error reporting a region whose lower bound is not
	// strictly below its upper bound on some axis.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidRay is wrapped by errors reporting a ray without a usable direction.
	ErrInvalidRay = errors.New("invalid ray")
)

func newInvalidRegionError(region interface{}) error {
	return errors.Wrapf(ErrInvalidRegion, "lower bound must be below upper bound on every axis, got %v", region)
}

func newNegativeMinimumError(minimum interface{}) error {
	return errors.Errorf("minimum child size must not be negative, got %v", minimum)
}
