package nurbsgo

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// occupancy tracks which linear slots hold a control point, so that
// sparse-population workflows can enumerate set points without scanning
// the whole storage sequence.
type occupancy struct {
	rb *roaring.Bitmap
}

func newOccupancy() *occupancy {
	return &occupancy{rb: roaring.New()}
}

func (o *occupancy) add(i int) {
	o.rb.Add(uint32(i))
}

func (o *occupancy) remove(i int) {
	o.rb.Remove(uint32(i))
}

func (o *occupancy) contains(i int) bool {
	if i < 0 {
		return false
	}
	return o.rb.Contains(uint32(i))
}

func (o *occupancy) count() int {
	return int(o.rb.GetCardinality())
}

func (o *occupancy) clear() {
	o.rb.Clear()
}

func (o *occupancy) clone() *occupancy {
	return &occupancy{rb: o.rb.Clone()}
}

// indices yields the occupied linear offsets in ascending order.
func (o *occupancy) indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := o.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
