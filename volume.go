package nurbsgo

// VolumeManager addresses the control points of a B-spline or NURBS
// volume, which is defined in three parametric dimensions. Storage
// stacks w-slices of full u×v surfaces contiguously: the point at
// (u, v, w) lives at linear offset v + u*sizeV + w*sizeU*sizeV.
//
// A struct value copy is a shallow duplicate sharing the same backing
// storage; use Clone for an independent deep copy. Managers sharing
// storage must not be mutated concurrently without external
// synchronization.
type VolumeManager struct {
	manager
}

// NewVolumeManager creates a volume manager with sizeU*sizeV*sizeW
// control point slots, all empty. A non-positive size fails with
// *ErrInvalidSize.
func NewVolumeManager(sizeU, sizeV, sizeW int) (*VolumeManager, error) {
	core, err := newManager(sizeU, sizeV, sizeW)
	if err != nil {
		return nil, err
	}
	return &VolumeManager{manager: core}, nil
}

// SizeU returns the number of control points in the parametric u
// direction.
func (m *VolumeManager) SizeU() int {
	return m.sizes[0]
}

// SizeV returns the number of control points in the parametric v
// direction.
func (m *VolumeManager) SizeV() int {
	return m.sizes[1]
}

// SizeW returns the number of control points in the parametric w
// direction.
func (m *VolumeManager) SizeW() int {
	return m.sizes[2]
}

func (m *VolumeManager) offset(u, v, w int) int {
	return v + u*m.sizes[1] + w*m.sizes[0]*m.sizes[1]
}

// ControlPoint returns the point at parametric indices (u, v, w), which
// may be the empty placeholder if the slot has not been set. Reads are
// defensive: indices whose offset falls outside the storage bounds
// return (nil, false) rather than failing.
func (m *VolumeManager) ControlPoint(u, v, w int) (Point, bool) {
	idx := m.offset(u, v, w)
	if idx < 0 || idx >= len(m.points) {
		return nil, false
	}
	return m.points[idx], true
}

// SetControlPoint stores pt at parametric indices (u, v, w). Unlike
// reads, writes are strict: an offset outside the storage bounds fails
// with *ErrIndexOutOfRange, and a nil or empty pt fails with
// ErrEmptyPoint.
func (m *VolumeManager) SetControlPoint(pt Point, u, v, w int) error {
	if len(pt) == 0 {
		return ErrEmptyPoint
	}
	return m.SetAt(m.offset(u, v, w), pt)
}

// Clone returns a deep copy with independently copied control points.
// Mutating the clone never affects the original.
func (m *VolumeManager) Clone() *VolumeManager {
	return &VolumeManager{manager: m.manager.clone()}
}
