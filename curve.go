package nurbsgo

// CurveManager addresses the control points of a B-spline or NURBS
// curve, which is defined in a single parametric dimension. The
// linearization is the identity: the point at parametric index u lives
// at linear offset u.
//
// A struct value copy is a shallow duplicate sharing the same backing
// storage; use Clone for an independent deep copy. Managers sharing
// storage must not be mutated concurrently without external
// synchronization.
type CurveManager struct {
	manager
}

// NewCurveManager creates a curve manager with sizeU control point
// slots, all empty. A non-positive size fails with *ErrInvalidSize.
func NewCurveManager(sizeU int) (*CurveManager, error) {
	core, err := newManager(sizeU)
	if err != nil {
		return nil, err
	}
	return &CurveManager{manager: core}, nil
}

// SizeU returns the number of control points in the parametric u
// direction.
func (m *CurveManager) SizeU() int {
	return m.sizes[0]
}

// ControlPoint returns the point at parametric index u, which may be
// the empty placeholder if the slot has not been set. Reads are
// defensive: an index outside the storage bounds returns (nil, false)
// rather than failing.
func (m *CurveManager) ControlPoint(u int) (Point, bool) {
	if u < 0 || u >= len(m.points) {
		return nil, false
	}
	return m.points[u], true
}

// SetControlPoint stores pt at parametric index u. Unlike reads, writes
// are strict: an index outside the storage bounds fails with
// *ErrIndexOutOfRange, and a nil or empty pt fails with ErrEmptyPoint.
func (m *CurveManager) SetControlPoint(pt Point, u int) error {
	if len(pt) == 0 {
		return ErrEmptyPoint
	}
	return m.SetAt(u, pt)
}

// Clone returns a deep copy with independently copied control points.
// Mutating the clone never affects the original.
func (m *CurveManager) Clone() *CurveManager {
	return &CurveManager{manager: m.manager.clone()}
}
