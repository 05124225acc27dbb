package nurbsgo

// SurfaceManager addresses the control points of a B-spline or NURBS
// surface, which is defined in two parametric dimensions. Storage is
// row-major over v: the point at (u, v) lives at linear offset
// v + u*sizeV, so all points sharing a u value are contiguous. Surface
// evaluators iterate v innermost and consume exactly this layout.
//
// A struct value copy is a shallow duplicate sharing the same backing
// storage; use Clone for an independent deep copy. Managers sharing
// storage must not be mutated concurrently without external
// synchronization.
type SurfaceManager struct {
	manager
}

// NewSurfaceManager creates a surface manager with sizeU*sizeV control
// point slots, all empty. A non-positive size fails with
// *ErrInvalidSize.
func NewSurfaceManager(sizeU, sizeV int) (*SurfaceManager, error) {
	core, err := newManager(sizeU, sizeV)
	if err != nil {
		return nil, err
	}
	return &SurfaceManager{manager: core}, nil
}

// SizeU returns the number of control points in the parametric u
// direction.
func (m *SurfaceManager) SizeU() int {
	return m.sizes[0]
}

// SizeV returns the number of control points in the parametric v
// direction.
func (m *SurfaceManager) SizeV() int {
	return m.sizes[1]
}

func (m *SurfaceManager) offset(u, v int) int {
	return v + u*m.sizes[1]
}

// ControlPoint returns the point at parametric indices (u, v), which
// may be the empty placeholder if the slot has not been set. Reads are
// defensive: indices whose offset falls outside the storage bounds
// return (nil, false) rather than failing.
func (m *SurfaceManager) ControlPoint(u, v int) (Point, bool) {
	idx := m.offset(u, v)
	if idx < 0 || idx >= len(m.points) {
		return nil, false
	}
	return m.points[idx], true
}

// SetControlPoint stores pt at parametric indices (u, v). Unlike reads,
// writes are strict: an offset outside the storage bounds fails with
// *ErrIndexOutOfRange, and a nil or empty pt fails with ErrEmptyPoint.
func (m *SurfaceManager) SetControlPoint(pt Point, u, v int) error {
	if len(pt) == 0 {
		return ErrEmptyPoint
	}
	return m.SetAt(m.offset(u, v), pt)
}

// Clone returns a deep copy with independently copied control points.
// Mutating the clone never affects the original.
func (m *SurfaceManager) Clone() *SurfaceManager {
	return &SurfaceManager{manager: m.manager.clone()}
}
