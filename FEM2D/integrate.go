package FEM2D

import (
	"fmt"
	"math"
)

// AreaIntegral sums f(k) * area(k) over all elements: the quadrature is exact for the
// piecewise constant integrands produced by Gradient and CurrentDensity
func (es *ElementSpace) AreaIntegral(f func(k int) float64) (integral float64) {
	for k := 0; k < es.K; k++ {
		integral += f(k) * es.Area.DataP[k]
	}
	return
}

// FakePower integrates J . E over the domain; with E the test field carrying a unit voltage
// drop between the electrodes this equals the true current in the limit of exact fields
func FakePower(Jx, Jy, Ex, Ey CellField) (power float64) {
	return Jx.ES.AreaIntegral(func(k int) float64 {
		return Jx.V.DataP[k]*Ex.V.DataP[k] + Jy.V.DataP[k]*Ey.V.DataP[k]
	})
}

/*
BoundaryFlux integrates J . n over the edges carrying the given label, with n the outward domain
normal. The current density is constant on the adjacent element, so each edge contributes J . n
times its length. The label must lie on the domain boundary: interior interface edges have no
unambiguous outward direction and produce an error.
*/
func BoundaryFlux(label int, Jx, Jy CellField) (flux float64, err error) {
	var (
		es    = Jx.ES
		msh   = es.Msh
		edges = msh.EdgesWithLabel(label)
	)
	if len(edges) == 0 {
		err = fmt.Errorf("no edges carry label %d", label)
		return
	}
	for _, e := range edges {
		if len(msh.AdjacentTris(e.E.GetKey())) > 1 {
			err = fmt.Errorf("label %d lies on an interior edge, flux needs a label on the domain boundary", label)
			return
		}
		var (
			verts  = e.E.GetVertices()
			p1, p2 = msh.Verts[verts[0]], msh.Verts[verts[1]]
			dx, dy = p2[0] - p1[0], p2[1] - p1[1]
			length = math.Hypot(dx, dy)
			nx, ny = dy / length, -dx / length
		)
		// Orient the normal away from the adjacent element centroid
		cx, cy := msh.TriCentroid(e.Tri)
		mx, my := 0.5*(p1[0]+p2[0]), 0.5*(p1[1]+p2[1])
		if nx*(mx-cx)+ny*(my-cy) < 0 {
			nx, ny = -nx, -ny
		}
		flux += (Jx.V.DataP[e.Tri]*nx + Jy.V.DataP[e.Tri]*ny) * length
	}
	return
}
