package geometry2D

import (
	"math"
)

func IsIllegalEdge(prX, prY, piX, piY, pjX, pjY, pkX, pkY float64) bool {
	/*
		pr is the vertex opposite the shared edge pi-pj from the neighboring triangle of pi-pj-pk.
		If pr lies inside the circle defined by pi-pj-pk, the edge pi-pj violates the Delaunay
		criterion and would be flipped by an edge-legalization pass.
	*/
	inCircle := func(ax, ay, bx, by, cx, cy, dx, dy float64) (inside bool) {
		// Calculate handedness, counter-clockwise is (positive) and clockwise is (negative)
		signBit := math.Signbit((bx-ax)*(cy-ay) - (cx-ax)*(by-ay))
		ax_ := ax - dx
		ay_ := ay - dy
		bx_ := bx - dx
		by_ := by - dy
		cx_ := cx - dx
		cy_ := cy - dy
		det := (ax_*ax_+ay_*ay_)*(bx_*cy_-cx_*by_) -
			(bx_*bx_+by_*by_)*(ax_*cy_-cx_*ay_) +
			(cx_*cx_+cy_*cy_)*(ax_*by_-bx_*ay_)
		if signBit {
			return det < 0
		} else {
			return det > 0
		}
	}
	return inCircle(piX, piY, pjX, pjY, pkX, pkY, prX, prY)
}

/*
CountIllegalEdges reports how many interior edges violate the Delaunay in-circle criterion.
Labeled (constrained) edges are exempt since they are pinned by the boundary description. A
constrained Delaunay triangulation should report zero or very few, so a large count signals a
broken geometry description.
*/
func (msh *Mesh) CountIllegalEdges() (count int) {
	for _, ek := range msh.InteriorEdges() {
		if _, labeled := msh.EdgeLabels[ek]; labeled {
			continue
		}
		var (
			verts  = ek.GetVertices(false)
			tris   = msh.AdjacentTris(ek)
			pi, pj = msh.Verts[verts[0]], msh.Verts[verts[1]]
		)
		pk, ok1 := msh.oppositeVertex(tris[0], verts)
		pr, ok2 := msh.oppositeVertex(tris[1], verts)
		if !ok1 || !ok2 {
			continue
		}
		if IsIllegalEdge(pr[0], pr[1], pi[0], pi[1], pj[0], pj[1], pk[0], pk[1]) {
			count++
		}
	}
	return
}

func (msh *Mesh) oppositeVertex(k int, edgeVerts [2]int) (pt [2]float64, found bool) {
	for _, vi := range msh.Tris[k] {
		if vi != edgeVerts[0] && vi != edgeVerts[1] {
			return msh.Verts[vi], true
		}
	}
	return
}
