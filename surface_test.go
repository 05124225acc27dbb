package nurbsgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceManager_Linearization(t *testing.T) {
	m, err := NewSurfaceManager(5, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, m.SizeU())
	assert.Equal(t, 3, m.SizeV())
	assert.Equal(t, 15, m.Len())

	require.NoError(t, m.SetControlPoint(Point{1, 2, 3}, 2, 1))

	// offset = v + u*sizeV = 1 + 2*3 = 7
	assert.True(t, m.Points()[7].Equal(Point{1, 2, 3}))

	got, ok := m.ControlPoint(2, 1)
	require.True(t, ok)
	assert.True(t, got.Equal(Point{1, 2, 3}))

	// Unset in-range slot reads back as the empty placeholder.
	got, ok = m.ControlPoint(0, 0)
	assert.True(t, ok)
	assert.Nil(t, got)
}

func TestSurfaceManager_Injectivity(t *testing.T) {
	m, err := NewSurfaceManager(5, 3)
	require.NoError(t, err)

	seen := make(map[int]bool, m.Len())
	for u := 0; u < m.SizeU(); u++ {
		for v := 0; v < m.SizeV(); v++ {
			idx := m.offset(u, v)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, m.Len())
			assert.False(t, seen[idx], "offset %d reached twice, at (%d, %d)", idx, u, v)
			seen[idx] = true
		}
	}
	// Injective over a domain of Len indices onto [0, Len) is a bijection.
	assert.Len(t, seen, m.Len())
}

func TestSurfaceManager_RoundTrip(t *testing.T) {
	m, err := NewSurfaceManager(4, 6)
	require.NoError(t, err)

	for u := 0; u < m.SizeU(); u++ {
		for v := 0; v < m.SizeV(); v++ {
			require.NoError(t, m.SetControlPoint(Point{float64(u), float64(v), 0, 1}, u, v))
		}
	}
	for u := 0; u < m.SizeU(); u++ {
		for v := 0; v < m.SizeV(); v++ {
			got, ok := m.ControlPoint(u, v)
			require.True(t, ok)
			assert.True(t, got.Equal(Point{float64(u), float64(v), 0, 1}), "ControlPoint(%d, %d) = %v", u, v, got)
		}
	}
	assert.Equal(t, 24, m.Occupied())
}

func TestSurfaceManager_RowMajorContiguity(t *testing.T) {
	// All points sharing a fixed u must be contiguous in the flat
	// sequence, in ascending v order. Surface evaluators rely on this.
	m, err := NewSurfaceManager(3, 4)
	require.NoError(t, err)

	for u := 0; u < m.SizeU(); u++ {
		for v := 0; v < m.SizeV(); v++ {
			require.NoError(t, m.SetControlPoint(Point{float64(10*u + v)}, u, v))
		}
	}

	flat := m.Points()
	i := 0
	for u := 0; u < m.SizeU(); u++ {
		for v := 0; v < m.SizeV(); v++ {
			assert.Equal(t, float64(10*u+v), flat[i][0], "flat[%d]", i)
			i++
		}
	}
}

func TestSurfaceManager_OutOfRange(t *testing.T) {
	m, err := NewSurfaceManager(5, 3)
	require.NoError(t, err)

	pt, ok := m.ControlPoint(5, 0)
	assert.False(t, ok)
	assert.Nil(t, pt)

	var oor *ErrIndexOutOfRange
	err = m.SetControlPoint(Point{1}, 5, 0)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 15, oor.Index)
	assert.Equal(t, 15, oor.Len)
}

func TestSurfaceManager_InvalidSize(t *testing.T) {
	_, err := NewSurfaceManager(5, 0)
	var is *ErrInvalidSize
	require.ErrorAs(t, err, &is)
	assert.Equal(t, 1, is.Dim)
	assert.Equal(t, 0, is.Size)
}

func TestSurfaceManager_Clone(t *testing.T) {
	m, err := NewSurfaceManager(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetControlPoint(Point{1, 1}, 0, 1))

	c := m.Clone()
	require.NoError(t, c.SetControlPoint(Point{2, 2}, 1, 0))

	orig, ok := m.ControlPoint(1, 0)
	require.True(t, ok)
	assert.Nil(t, orig)
	assert.Equal(t, 1, m.Occupied())
	assert.Equal(t, 2, c.Occupied())
}
