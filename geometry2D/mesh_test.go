package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Unit square split down the middle by a labeled divider: two regions, four wall labels
func twoRegionSquare() (cs *CurveSet) {
	cs = NewCurveSet(
		Line(0, 0, 0.5, 0, 2, 2),
		Line(0.5, 0, 1, 0, 2, 2),
		Line(1, 0, 1, 1, 4, 20),
		Line(1, 1, 0.5, 1, 2, 2),
		Line(0.5, 1, 0, 1, 2, 2),
		Line(0, 1, 0, 0, 4, 1),
		Line(0.5, 0, 0.5, 1, 4, 3),
	)
	return
}

func TestDiscretize(t *testing.T) {
	{ // Shared endpoints weld into single vertices
		cs := NewCurveSet(
			Line(0, 0, 1, 0, 1, 2),
			Line(1, 0, 1, 1, 1, 2),
			Line(1, 1, 0, 1, 1, 2),
			Line(0, 1, 0, 0, 1, 2),
		)
		pslg := cs.Discretize(0)
		assert.Equal(t, 4, len(pslg.Points))
		assert.Equal(t, 4, len(pslg.Segments))
		assert.Equal(t, 4, len(pslg.SegLabels))
	}
	{ // Refinement doubles segment counts
		cs := NewCurveSet(Line(0, 0, 1, 0, 3, 5))
		pslg := cs.Discretize(2)
		assert.Equal(t, 12, len(pslg.Segments))
		for _, l := range pslg.SegLabels {
			assert.Equal(t, 5, l)
		}
	}
	{ // Parametric curve endpoints land exactly on the welded wall vertices
		cs := NewCurveSet(
			Line(0, 0, 4, 0, 4, 2),
			BoundaryCurve{
				XY: func(t float64) (x, y float64) {
					x = 4 * t
					y = math.Sin(math.Pi * t)
					return
				},
				N:     4,
				Label: 3,
			},
		)
		pslg := cs.Discretize(0)
		// 5 wall points plus 3 interior curve points; the curve endpoints weld onto the wall
		assert.Equal(t, 8, len(pslg.Points))
	}
	{ // Negative refinement is a configuration error
		cs := NewCurveSet(Line(0, 0, 1, 0, 1, 2))
		assert.Panics(t, func() { cs.Discretize(-1) })
	}
}

func TestMesh(t *testing.T) {
	var (
		msh = twoRegionSquare().Mesh(1)
	)
	{ // The divider produces two distinct regions
		assert.Equal(t, 2, msh.NumRegions)
		left := msh.RegionAt(0.25, 0.5)
		right := msh.RegionAt(0.75, 0.5)
		assert.True(t, left >= 0)
		assert.True(t, right >= 0)
		assert.NotEqual(t, left, right)
		// Outside the mesh
		assert.Equal(t, -1, msh.RegionAt(2, 2))
	}
	{ // Triangle areas are positive and sum to the square's area
		var sum float64
		for k := range msh.Tris {
			area := msh.TriArea(k)
			assert.True(t, area > 0)
			sum += area
		}
		assert.InDelta(t, 1.0, sum, 1.e-10)
	}
	{ // Labeled edges and nodes are recovered on the electrodes
		for _, label := range []int{1, 20, 2, 3} {
			assert.NotEmpty(t, msh.EdgesWithLabel(label))
		}
		for _, vi := range msh.NodesWithLabel(1) {
			assert.InDelta(t, 0.0, msh.Verts[vi][0], 1.e-12)
		}
		for _, vi := range msh.NodesWithLabel(20) {
			assert.InDelta(t, 1.0, msh.Verts[vi][0], 1.e-12)
		}
		// Electrode edge lengths sum to the wall height
		var length float64
		for _, e := range msh.EdgesWithLabel(1) {
			v := e.E.GetVertices()
			length += msh.EdgeLength(v[0], v[1])
		}
		assert.InDelta(t, 1.0, length, 1.e-10)
	}
	{ // Constrained Delaunay should leave few illegal interior edges
		nInterior := len(msh.InteriorEdges())
		assert.True(t, nInterior > 0)
		assert.True(t, msh.CountIllegalEdges() <= nInterior/20)
	}
}

// A minimal closed curve set must mesh on its own: this pins the hole-marker handling in the
// mesher call, which rejects an empty holes argument
func TestMeshMinimalClosedCurveSet(t *testing.T) {
	cs := NewCurveSet(
		Line(0, 0, 1, 0, 1, 2),
		Line(1, 0, 1, 1, 1, 2),
		Line(1, 1, 0, 1, 1, 2),
		Line(0, 1, 0, 0, 1, 2),
	)
	var msh *Mesh
	assert.NotPanics(t, func() { msh = cs.Mesh(0) })
	assert.True(t, len(msh.Tris) > 0)
	assert.Equal(t, 1, msh.NumRegions)
	var sum float64
	for k := range msh.Tris {
		sum += msh.TriArea(k)
	}
	assert.InDelta(t, 1.0, sum, 1.e-10)
}

func TestMeshRefinementScaling(t *testing.T) {
	coarse := twoRegionSquare().Mesh(0)
	fine := twoRegionSquare().Mesh(2)
	assert.True(t, len(fine.Tris) > 4*len(coarse.Tris))
	assert.Equal(t, coarse.NumRegions, fine.NumRegions)
}

func TestBoundingBox(t *testing.T) {
	bb := NewBoundingBox([][2]float64{{0, 1}, {4, 3}, {2, -1}})
	assert.Equal(t, [2]float64{0, -1}, bb.XMin)
	assert.Equal(t, [2]float64{4, 3}, bb.XMax)
	x, y := bb.Centroid()
	assert.InDelta(t, 2.0, x, 1.e-12)
	assert.InDelta(t, 1.0, y, 1.e-12)
	bb2 := bb.Scale(2)
	assert.InDelta(t, -2.0, bb2.XMin[0], 1.e-12)
	assert.InDelta(t, 6.0, bb2.XMax[0], 1.e-12)
}
