package FEM2D

import (
	"fmt"

	"github.com/notargets/gocem/geometry2D"
	"github.com/notargets/gocem/utils"
)

/*
ElementSpace is a piecewise linear (P1) nodal finite element space over a triangulated mesh.

Basis gradients are constant per triangle, so they are precomputed once into K x 3 tables: entry
(k, n) holds the gradient component of the hat function of local node n on triangle k. All
assembly and post-processing loops read these tables instead of touching the geometry again.
*/
type ElementSpace struct {
	Msh          *geometry2D.Mesh
	Np           int // Number of nodes (degrees of freedom)
	K            int // Number of elements
	Area         utils.Vector
	DphiX, DphiY utils.Matrix
}

func NewElementSpace(msh *geometry2D.Mesh) (es *ElementSpace) {
	var (
		K = len(msh.Tris)
	)
	es = &ElementSpace{
		Msh:   msh,
		Np:    len(msh.Verts),
		K:     K,
		Area:  utils.NewVector(K),
		DphiX: utils.NewMatrix(K, 3),
		DphiY: utils.NewMatrix(K, 3),
	}
	for k, tri := range msh.Tris {
		var (
			p1, p2, p3 = msh.Verts[tri[0]], msh.Verts[tri[1]], msh.Verts[tri[2]]
			area       = msh.TriArea(k)
		)
		if area <= 0 {
			panic(fmt.Errorf("degenerate triangle %d with area %v", k, area))
		}
		es.Area.DataP[k] = area
		ooA2 := 1. / (2. * area)
		// Hat function gradients on a CCW triangle
		es.DphiX.Set(k, 0, (p2[1]-p3[1])*ooA2)
		es.DphiX.Set(k, 1, (p3[1]-p1[1])*ooA2)
		es.DphiX.Set(k, 2, (p1[1]-p2[1])*ooA2)
		es.DphiY.Set(k, 0, (p3[0]-p2[0])*ooA2)
		es.DphiY.Set(k, 1, (p1[0]-p3[0])*ooA2)
		es.DphiY.Set(k, 2, (p2[0]-p1[0])*ooA2)
	}
	es.DphiX.SetReadOnly("DphiX")
	es.DphiY.SetReadOnly("DphiY")
	return
}

// TotalArea of the meshed domain
func (es *ElementSpace) TotalArea() (area float64) {
	for _, a := range es.Area.DataP {
		area += a
	}
	return
}
