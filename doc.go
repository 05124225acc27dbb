// Package nurbsgo provides control point managers for parametric
// curves, surfaces and volumes.
//
// A manager lets a caller address a control point by its natural
// multi-index — (u), (u, v) or (u, v, w) — without knowing that the
// underlying storage is a single flat sequence. Geometry evaluators
// consume the flat sequence directly; the managers guarantee its linear
// order is row-major with the last parametric dimension varying
// fastest.
//
// # Quick Start
//
// Populate a surface and hand its points to an evaluator:
//
//	mgr, _ := nurbsgo.NewSurfaceManager(5, 3)
//	for u := 0; u < mgr.SizeU(); u++ {
//		for v := 0; v < mgr.SizeV(); v++ {
//			_ = mgr.SetControlPoint(nurbsgo.Point{float64(u), float64(v), 0}, u, v)
//		}
//	}
//	surf.SetCtrlPts(mgr.Points()) // bulk transfer, linear row-major order
//
// Or pull individual points out of an existing flat sequence:
//
//	mgr.SetPoints(surf.CtrlPts())
//	pt, ok := mgr.ControlPoint(2, 1)
//
// The variadic factory dispatches on arity when the dimension count is
// only known at run time:
//
//	mgr, err := nurbsgo.New(5, 3) // *SurfaceManager behind the Manager interface
//
// # Reads and Writes
//
// Reads are defensive and writes are strict: ControlPoint returns
// (nil, false) for an out-of-range index, while SetControlPoint fails
// with *ErrIndexOutOfRange. Unset slots read back as the empty
// placeholder (a nil Point). This asymmetry keeps sparse-population
// loops free of error plumbing while still failing fast on bad writes.
//
// # Concurrency
//
// A manager is a single-owner, single-writer structure. A struct value
// copy is a shallow duplicate aliasing the same storage; shallow
// duplicates must not be mutated concurrently without external
// synchronization. Clone returns a fully independent deep copy.
package nurbsgo
