package nurbsgo

import (
	"fmt"
	"strings"
)

// Point is an ordered tuple of control point coordinates, commonly two to
// four values: spatial coordinates optionally followed by a homogeneous
// weight. The manager does not interpret the coordinate count or meaning;
// it stores and retrieves the tuple as a unit.
//
// A nil or empty Point is the empty placeholder that fills unset slots.
type Point []float64

// Clone returns an independent copy of the point. Cloning a nil point
// returns nil, preserving the empty placeholder.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	return append(Point(nil), p...)
}

// Equal reports whether two points have the same coordinates in the same
// order. Two empty placeholders compare equal.
func (p Point) Equal(o Point) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p Point) String() string {
	if len(p) == 0 {
		return "()"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteByte(')')
	return sb.String()
}
