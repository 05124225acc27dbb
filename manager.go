package nurbsgo

import "iter"

// Manager is the contract shared by all control point managers,
// independent of arity. It exposes the flat storage sequence that
// curve, surface and volume evaluators consume: the linear order is
// authoritative and row-major, with the last parametric dimension
// varying fastest.
//
// Returned slices from Points alias internal memory; callers that need
// an independent copy should Clone the manager instead.
type Manager interface {
	// Arity returns the number of parametric dimensions.
	Arity() int

	// Len returns the total number of slots, the product of the
	// per-dimension sizes.
	Len() int

	// Sizes returns a copy of the per-dimension control point counts.
	Sizes() []int

	// Reset discards all stored control points and refills the storage
	// with empty placeholders. The sizes are unchanged.
	Reset()

	// At returns the point at linear offset i. Accessing an offset
	// outside [0, Len) fails with *ErrIndexOutOfRange.
	At(i int) (Point, error)

	// SetAt stores pt at linear offset i. A nil pt clears the slot back
	// to the empty placeholder. Writing outside [0, Len) fails with
	// *ErrIndexOutOfRange.
	SetAt(i int, pt Point) error

	// Points returns the whole linear sequence as a view of internal
	// storage, for bulk transfer to collaborators.
	Points() []Point

	// SetPoints replaces the whole linear sequence outright, without
	// size or shape validation. The caller is responsible for supplying
	// a sequence of length Len; downstream evaluators misbehave
	// otherwise.
	SetPoints(pts []Point)

	// All yields every slot in ascending linear order, empty
	// placeholders included. The sequence is restartable.
	All() iter.Seq2[int, Point]

	// Backward yields every slot in descending linear order.
	Backward() iter.Seq2[int, Point]

	// Populated yields only the occupied slots in ascending linear
	// order.
	Populated() iter.Seq2[int, Point]

	// Occupied returns the number of slots holding a control point.
	Occupied() int

	// IsOccupied reports whether the slot at linear offset i holds a
	// control point.
	IsOccupied(i int) bool
}

// New creates a manager for the given per-dimension sizes, dispatching
// on the number of sizes supplied: one for a curve, two for a surface,
// three for a volume. Any other count fails with *ErrInvalidArity.
func New(sizes ...int) (Manager, error) {
	switch len(sizes) {
	case 1:
		return NewCurveManager(sizes[0])
	case 2:
		return NewSurfaceManager(sizes[0], sizes[1])
	case 3:
		return NewVolumeManager(sizes[0], sizes[1], sizes[2])
	default:
		return nil, &ErrInvalidArity{Arity: len(sizes)}
	}
}

// manager is the shared storage core embedded by the arity-specific
// managers. It owns the flat slot sequence; the embedding types
// contribute only their multi-index linearization.
type manager struct {
	sizes  []int
	points []Point
	occ    *occupancy
}

func newManager(sizes ...int) (manager, error) {
	for d, s := range sizes {
		if s <= 0 {
			return manager{}, &ErrInvalidSize{Dim: d, Size: s}
		}
	}
	m := manager{
		sizes: append([]int(nil), sizes...),
		occ:   newOccupancy(),
	}
	m.Reset()
	return m, nil
}

func (m *manager) Arity() int {
	return len(m.sizes)
}

func (m *manager) Len() int {
	return len(m.points)
}

func (m *manager) Sizes() []int {
	return append([]int(nil), m.sizes...)
}

func (m *manager) Reset() {
	total := 1
	for _, s := range m.sizes {
		total *= s
	}
	// Clear in place when the length already matches, so that managers
	// sharing this storage through a shallow copy observe the reset.
	if len(m.points) == total {
		clear(m.points)
	} else {
		m.points = make([]Point, total)
	}
	m.occ.clear()
}

func (m *manager) At(i int) (Point, error) {
	if i < 0 || i >= len(m.points) {
		return nil, &ErrIndexOutOfRange{Index: i, Len: len(m.points)}
	}
	return m.points[i], nil
}

func (m *manager) SetAt(i int, pt Point) error {
	if i < 0 || i >= len(m.points) {
		return &ErrIndexOutOfRange{Index: i, Len: len(m.points)}
	}
	m.points[i] = pt
	if len(pt) == 0 {
		m.occ.remove(i)
	} else {
		m.occ.add(i)
	}
	return nil
}

func (m *manager) Points() []Point {
	return m.points
}

func (m *manager) SetPoints(pts []Point) {
	m.points = pts
	m.occ.clear()
	for i, pt := range pts {
		if len(pt) > 0 {
			m.occ.add(i)
		}
	}
}

func (m *manager) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, pt := range m.points {
			if !yield(i, pt) {
				return
			}
		}
	}
}

func (m *manager) Backward() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := len(m.points) - 1; i >= 0; i-- {
			if !yield(i, m.points[i]) {
				return
			}
		}
	}
}

func (m *manager) Populated() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := range m.occ.indices() {
			if i >= len(m.points) {
				return
			}
			if !yield(i, m.points[i]) {
				return
			}
		}
	}
}

func (m *manager) Occupied() int {
	return m.occ.count()
}

func (m *manager) IsOccupied(i int) bool {
	return m.occ.contains(i)
}

// clone returns a deep copy of the core: independent sizes, an
// independently copied slot sequence with cloned coordinate tuples, and
// an independent occupancy bitmap.
func (m *manager) clone() manager {
	c := manager{
		sizes:  append([]int(nil), m.sizes...),
		points: make([]Point, len(m.points)),
		occ:    m.occ.clone(),
	}
	for i, pt := range m.points {
		c.points[i] = pt.Clone()
	}
	return c
}
