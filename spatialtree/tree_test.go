package spatialtree

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/spatialindex/geom"
	"go.viam.com/spatialindex/logging"
)

func TestNew(t *testing.T) {
	t.Run("invalid region", func(t *testing.T) {
		_, err := New[string](rectConfig[int32]{Region: rect[int32](0, 0, 0, 10)}, nil)
		test.That(t, err, test.ShouldWrap, geom.ErrInvalidRegion)
		test.That(t, err.Error(), test.ShouldContainSubstring, "invalid tree config")
	})

	t.Run("every problem is reported", func(t *testing.T) {
		_, err := New[string](rectConfig[float64]{
			Region:           rect(1.0, 0.0, 0.0, 1.0),
			MinimumChildSize: geom.Vec2[float64]{X: -1},
		}, nil)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "region")
		test.That(t, err.Error(), test.ShouldContainSubstring, "minimum_child_size")
	})

	t.Run("defaults", func(t *testing.T) {
		tree, err := New[string](rectConfig[float64]{Region: rect(0.0, 0.0, 1.0, 1.0)}, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, tree.Config().MinimumChildSize, test.ShouldResemble,
			geom.Vec2[float64]{X: geom.DefaultFloatMinimum, Y: geom.DefaultFloatMinimum})
		test.That(t, tree.Size(), test.ShouldEqual, 0)
		test.That(t, tree.NodeCount(), test.ShouldEqual, 1)
		test.That(t, tree.Bounds(), test.ShouldResemble, rect(0.0, 0.0, 1.0, 1.0))
	})
}

func TestInsertRemove(t *testing.T) {
	tree := newRectTree(t, rect[int32](0, 0, 100, 100), false)

	t.Run("insert then remove is an inverse", func(t *testing.T) {
		test.That(t, tree.Insert("a", rect[int32](10, 10, 20, 20)), test.ShouldBeTrue)
		test.That(t, tree.Contains("a"), test.ShouldBeTrue)
		test.That(t, tree.Size(), test.ShouldEqual, 1)

		test.That(t, tree.Remove("a"), test.ShouldBeTrue)
		test.That(t, tree.Contains("a"), test.ShouldBeFalse)
		test.That(t, tree.Size(), test.ShouldEqual, 0)
		test.That(t, tree.Remove("a"), test.ShouldBeFalse)
		checkInvariants(t, tree)
	})

	t.Run("re-insert is idempotent", func(t *testing.T) {
		test.That(t, tree.Insert("b", rect[int32](1, 1, 5, 5)), test.ShouldBeTrue)
		test.That(t, tree.Insert("b", rect[int32](1, 1, 5, 5)), test.ShouldBeTrue)
		test.That(t, tree.Size(), test.ShouldEqual, 1)
		test.That(t, tree.Contains("b"), test.ShouldBeTrue)
		checkInvariants(t, tree)
	})

	t.Run("re-insert moves the item", func(t *testing.T) {
		test.That(t, tree.Insert("b", rect[int32](60, 60, 70, 70)), test.ShouldBeTrue)
		test.That(t, tree.Size(), test.ShouldEqual, 1)
		region, err := tree.RegionFor("b")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, region, test.ShouldResemble, rect[int32](60, 60, 70, 70))
		test.That(t, anchorOf(tree, "b").Region(), test.ShouldResemble, rect[int32](50, 50, 75, 75))
		checkInvariants(t, tree)
	})

	t.Run("out of bounds is rejected without side effects", func(t *testing.T) {
		before := tree.String()
		test.That(t, tree.Insert("b", rect[int32](90, 90, 101, 95)), test.ShouldBeFalse)
		test.That(t, tree.Insert("c", rect[int32](-1, 0, 5, 5)), test.ShouldBeFalse)
		test.That(t, tree.Insert("c", rect[int32](5, 5, 5, 6)), test.ShouldBeFalse)
		test.That(t, tree.Size(), test.ShouldEqual, 1)
		test.That(t, tree.Contains("c"), test.ShouldBeFalse)
		region, err := tree.RegionFor("b")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, region, test.ShouldResemble, rect[int32](60, 60, 70, 70))
		test.That(t, tree.String(), test.ShouldEqual, before)
	})

	t.Run("region of a missing item", func(t *testing.T) {
		_, err := tree.RegionFor("missing")
		test.That(t, err, test.ShouldWrap, ErrItemNotFound)
		test.That(t, err.Error(), test.ShouldContainSubstring, "missing")
	})

	t.Run("clear", func(t *testing.T) {
		tree.Clear()
		test.That(t, tree.Size(), test.ShouldEqual, 0)
		test.That(t, tree.Contains("b"), test.ShouldBeFalse)
		test.That(t, tree.NodeCount(), test.ShouldEqual, 1)
		checkInvariants(t, tree)
	})
}

func TestBoundsWiderThanCoordinateRange(t *testing.T) {
	const lo, hi = -1_500_000_000, 1_500_000_000
	bounds := rect[int32](lo, lo, hi, hi)
	tree := newRectTree(t, bounds, true)

	test.That(t, tree.Insert("small", rect[int32](10, 10, 20, 20)), test.ShouldBeTrue)
	test.That(t, tree.Insert("straddle", rect[int32](-5, -5, 5, 5)), test.ShouldBeTrue)
	test.That(t, tree.NodeCount(), test.ShouldBeGreaterThan, 1)
	checkInvariants(t, tree)

	test.That(t, anchorOf(tree, "straddle").Region(), test.ShouldResemble, bounds)
	small := anchorOf(tree, "small").Region()
	test.That(t, small.Min.X, test.ShouldBeGreaterThanOrEqualTo, int32(0))
	test.That(t, small.Contains(rect[int32](10, 10, 20, 20)), test.ShouldBeTrue)
	test.That(t, small, test.ShouldNotResemble, bounds)

	overlapped := NewSet[string]()
	tree.OverlappedBy(rect[int32](0, 0, 15, 15), overlapped)
	test.That(t, overlapped.Len(), test.ShouldEqual, 2)

	test.That(t, tree.Remove("small"), test.ShouldBeTrue)
	test.That(t, tree.Remove("straddle"), test.ShouldBeTrue)
	test.That(t, tree.NodeCount(), test.ShouldEqual, 1)
	checkInvariants(t, tree)
}

func TestEqualAndMap(t *testing.T) {
	a := newRectTree(t, rect(0.0, 0.0, 10.0, 10.0), false)
	b := newRectTree(t, rect(-10.0, -10.0, 10.0, 10.0), true)

	regions := map[string]geom.Rect[float64]{
		"one":   rect(0.0, 0.0, 1.0, 1.0),
		"two":   rect(2.5, 2.5, 7.5, 7.5),
		"three": rect(5.0, 0.0, 10.0, 5.0),
	}
	for _, item := range []string{"one", "two", "three"} {
		test.That(t, a.Insert(item, regions[item]), test.ShouldBeTrue)
	}
	for _, item := range []string{"three", "one", "two"} {
		test.That(t, b.Insert(item, regions[item]), test.ShouldBeTrue)
	}

	t.Run("shape is not compared", func(t *testing.T) {
		test.That(t, a.Equal(b), test.ShouldBeTrue)
		test.That(t, b.Equal(a), test.ShouldBeTrue)
		test.That(t, a.Equal(a), test.ShouldBeTrue)
		test.That(t, a.Equal(nil), test.ShouldBeFalse)

		b.Insert("two", rect(2.5, 2.5, 7.5, 8.0))
		test.That(t, a.Equal(b), test.ShouldBeFalse)
		b.Insert("two", regions["two"])
		b.Insert("four", rect(0.0, 0.0, 1.0, 1.0))
		test.That(t, a.Equal(b), test.ShouldBeFalse)
	})

	t.Run("identity", func(t *testing.T) {
		mapped := Map(a, func(item string, _ geom.Rect[float64]) string { return item })
		test.That(t, mapped.Equal(a), test.ShouldBeTrue)
		test.That(t, mapped != a, test.ShouldBeTrue)
		test.That(t, mapped.Config(), test.ShouldResemble, a.Config())
		checkInvariants(t, mapped)
	})

	t.Run("new item type", func(t *testing.T) {
		lengths := Map(a, func(item string, _ geom.Rect[float64]) int { return len(item) })
		// "one" and "two" collide; "two" was inserted later and wins.
		test.That(t, lengths.Size(), test.ShouldEqual, 2)
		region, err := lengths.RegionFor(3)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, region, test.ShouldResemble, regions["two"])
		region, err = lengths.RegionFor(5)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, region, test.ShouldResemble, regions["three"])
		test.That(t, a.Size(), test.ShouldEqual, 3)
		checkInvariants(t, lengths)
	})

	t.Run("items", func(t *testing.T) {
		seen := map[string]geom.Rect[float64]{}
		for item, region := range a.Items() {
			seen[item] = region
		}
		test.That(t, seen, test.ShouldResemble, regions)
	})
}

func TestLogging(t *testing.T) {
	logger, observed := logging.NewObservedTestLogger(t)
	tree, err := New[string](rectConfig[int64]{Region: rect[int64](0, 0, 100, 100)}, logger)
	test.That(t, err, test.ShouldBeNil)

	tree.Insert("outside", rect[int64](50, 50, 150, 150))
	rejected := observed.FilterMessage("rejected insert outside tree bounds").All()
	test.That(t, rejected, test.ShouldHaveLength, 1)
	test.That(t, rejected[0].ContextMap()["item"], test.ShouldEqual, "outside")

	tree.Insert("corner", rect[int64](0, 0, 2, 2))
	tree.Remove("corner")
	tree.Trim()
	trimmed := observed.FilterMessage("trimmed tree").All()
	test.That(t, trimmed, test.ShouldHaveLength, 1)
	test.That(t, trimmed[0].ContextMap()["nodes_removed"], test.ShouldEqual, int64(24))

	tree.Trim()
	test.That(t, observed.FilterMessage("trimmed tree").Len(), test.ShouldEqual, 1)
}
