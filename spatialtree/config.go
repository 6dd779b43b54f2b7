package spatialtree

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Config describes the space covered by a tree and how finely it may be split.
type Config[R Region[R, S], S Extent[S]] struct {
	// Region is the bounds of the root node. Items outside it are rejected.
	Region R `json:"region"`
	// MinimumChildSize is the smallest extent, per axis, a split may produce. Zero components use
	// the domain default.
	MinimumChildSize S `json:"minimum_child_size"`
	// TrimOnRemove collapses emptied branches as items are removed instead of waiting for Trim.
	TrimOnRemove bool `json:"trim_on_remove"`
}

// Validate returns every problem with the config combined into one error.
func (cfg Config[R, S]) Validate() error {
	err := multierr.Combine(
		errors.Wrap(cfg.Region.Validate(), "region"),
		errors.Wrap(cfg.MinimumChildSize.ValidateMinimum(), "minimum_child_size"),
	)
	if err != nil {
		return errors.Wrap(err, "invalid tree config")
	}
	return nil
}

// WithDefaults returns a copy of the config with unset minimum child sizes resolved.
func (cfg Config[R, S]) WithDefaults() Config[R, S] {
	cfg.MinimumChildSize = cfg.MinimumChildSize.WithDefaults()
	return cfg
}
