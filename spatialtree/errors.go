package spatialtree

import (
	"github.com/pkg/errors"
)

// ErrItemNotFound is wrapped by errors returned when looking up an item the tree does not hold.
var ErrItemNotFound = errors.New("item not found")

func newItemNotFoundError(item interface{}) error {
	return errors.Wrapf(ErrItemNotFound, "%v", item)
}
