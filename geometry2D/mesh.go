package geometry2D

import (
	"fmt"
	"math"

	graphics2D "github.com/notargets/avs/geometry"
	"github.com/pradeep-pyro/triangle"

	"github.com/notargets/gocem/types"
	"github.com/notargets/gocem/utils"
)

/*
Mesh is an immutable conforming triangulation of the domain enclosed by a CurveSet.

Triangles carry a region tag assigned by flood fill over the triangle adjacency graph, where
labeled (constrained) edges act as region walls. Region IDs therefore depend on mesher traversal
order, not on anything the user declared: callers must discover the ID of a named region by
sampling a known interior point with RegionAt after construction. This mirrors how embedded mesh
builders hand out region numbers and is the one deliberately fragile convention in the package.
*/
type Mesh struct {
	Verts      [][2]float64
	Tris       [][3]int
	RegionTag  []int
	NumRegions int
	EdgeLabels map[types.EdgeKey]int
	labelEdges map[int][]BoundaryEdge
	edgeToTris map[types.EdgeKey][]int
}

// BoundaryEdge is a labeled mesh edge together with one adjacent triangle, used to orient
// outward normals in flux integrals. The edge packs its vertices directionally so the
// traversal order of the declaring curve survives meshing.
type BoundaryEdge struct {
	E   types.EdgeInt
	Tri int
}

/*
Mesh triangulates the discretized CurveSet at the given refinement level. Boundary segment counts
and the interior point spacing both scale with 2^refinement. Failure to produce a non-degenerate
mesh with at least one region is a fatal configuration error and panics.
*/
func (cs *CurveSet) Mesh(refinement int) (msh *Mesh) {
	pslg := cs.Discretize(refinement)
	pslg.SeedInterior(refinement)
	// The binding requires at least one hole marker. A marker outside the bounding box tags only
	// the exterior, which the mesher discards anyway.
	bb := pslg.BoundingBox()
	holes := [][2]float64{{bb.XMin[0] - 1, bb.XMin[1] - 1}}
	verts, faces := triangle.ConstrainedDelaunay(pslg.Points, pslg.Segments, holes)
	if len(faces) == 0 {
		panic(fmt.Errorf("triangulation produced no triangles: boundary curves are likely open or self-intersecting"))
	}
	msh = newMesh(verts, faces, pslg)
	if msh.NumRegions == 0 {
		panic(fmt.Errorf("triangulation produced no regions"))
	}
	return
}

func newMesh(verts [][2]float64, faces [][3]int32, pslg *PSLG) (msh *Mesh) {
	msh = &Mesh{
		EdgeLabels: make(map[types.EdgeKey]int),
		labelEdges: make(map[int][]BoundaryEdge),
		edgeToTris: make(map[types.EdgeKey][]int),
	}
	// Compact away vertices not referenced by any triangle, so every mesh node carries a degree
	// of freedom downstream
	remap := make(map[int]int)
	for _, f := range faces {
		for _, vi := range f {
			if _, exists := remap[int(vi)]; !exists {
				remap[int(vi)] = len(msh.Verts)
				msh.Verts = append(msh.Verts, verts[vi])
			}
		}
	}
	msh.Tris = make([][3]int, len(faces))
	for k, f := range faces {
		tri := [3]int{remap[int(f[0])], remap[int(f[1])], remap[int(f[2])]}
		// Normalize to counterclockwise orientation
		if signedArea(msh.Verts[tri[0]], msh.Verts[tri[1]], msh.Verts[tri[2]]) < 0 {
			tri[1], tri[2] = tri[2], tri[1]
		}
		msh.Tris[k] = tri
		for n := 0; n < 3; n++ {
			ek := types.NewEdgeKey([2]int{tri[n], tri[(n+1)%3]})
			msh.edgeToTris[ek] = append(msh.edgeToTris[ek], k)
		}
	}
	msh.attachLabels(verts, pslg)
	msh.floodRegions()
	return
}

/*
attachLabels recovers the labeled boundary segments in the triangulation output. Input vertices
are matched by coordinate, so the labeling survives any reordering the mesher applies. A labeled
segment that is not an edge of the final mesh means the mesher broke a constraint, which is fatal.
*/
func (msh *Mesh) attachLabels(verts [][2]float64, pslg *PSLG) {
	outIndex := make(map[[2]int64]int)
	for i, v := range msh.Verts {
		outIndex[weldKey(v[0], v[1])] = i
	}
	find := func(ind int32) int {
		pt := pslg.Points[ind]
		i, exists := outIndex[weldKey(pt[0], pt[1])]
		if !exists {
			panic(fmt.Errorf("boundary point %v was dropped by the mesher", pt))
		}
		return i
	}
	for i, seg := range pslg.Segments {
		var (
			label  = pslg.SegLabels[i]
			v1, v2 = find(seg[0]), find(seg[1])
			ek     = types.NewEdgeKey([2]int{v1, v2})
		)
		tris, exists := msh.edgeToTris[ek]
		if !exists {
			panic(fmt.Errorf("labeled segment %v-%v (label %d) is not an edge of the triangulation",
				v1, v2, label))
		}
		msh.EdgeLabels[ek] = label
		msh.labelEdges[label] = append(msh.labelEdges[label], BoundaryEdge{
			E:   types.NewEdgeInt([2]int{v1, v2}),
			Tri: tris[0],
		})
	}
}

// floodRegions assigns region tags by breadth first traversal that refuses to cross labeled edges.
// Tag values are discovery-ordered and carry no user meaning.
func (msh *Mesh) floodRegions() {
	msh.RegionTag = make([]int, len(msh.Tris))
	for k := range msh.RegionTag {
		msh.RegionTag[k] = -1
	}
	for seed := range msh.Tris {
		if msh.RegionTag[seed] >= 0 {
			continue
		}
		queue := []int{seed}
		msh.RegionTag[seed] = msh.NumRegions
		for len(queue) > 0 {
			k := queue[0]
			queue = queue[1:]
			tri := msh.Tris[k]
			for n := 0; n < 3; n++ {
				ek := types.NewEdgeKey([2]int{tri[n], tri[(n+1)%3]})
				if _, labeled := msh.EdgeLabels[ek]; labeled {
					continue
				}
				for _, kAdj := range msh.edgeToTris[ek] {
					if msh.RegionTag[kAdj] < 0 {
						msh.RegionTag[kAdj] = msh.NumRegions
						queue = append(queue, kAdj)
					}
				}
			}
		}
		msh.NumRegions++
	}
}

func signedArea(p1, p2, p3 [2]float64) float64 {
	return 0.5 * ((p2[0]-p1[0])*(p3[1]-p1[1]) - (p3[0]-p1[0])*(p2[1]-p1[1]))
}

// TriArea returns the (positive) area of triangle k
func (msh *Mesh) TriArea(k int) float64 {
	tri := msh.Tris[k]
	return signedArea(msh.Verts[tri[0]], msh.Verts[tri[1]], msh.Verts[tri[2]])
}

// TriCentroid returns the centroid of triangle k
func (msh *Mesh) TriCentroid(k int) (x, y float64) {
	tri := msh.Tris[k]
	for _, vi := range tri {
		x += msh.Verts[vi][0]
		y += msh.Verts[vi][1]
	}
	x /= 3
	y /= 3
	return
}

/*
RegionAt returns the mesher-assigned region ID of the triangle containing the point, or -1 when
the point lies outside the mesh. This is the only supported way to tie a named region of the
problem geometry to its runtime ID.
*/
func (msh *Mesh) RegionAt(x, y float64) int {
	var (
		tol = -1.e-12
	)
	for k, tri := range msh.Tris {
		p1, p2, p3 := msh.Verts[tri[0]], msh.Verts[tri[1]], msh.Verts[tri[2]]
		pt := [2]float64{x, y}
		// All three sub-triangles non-negative means the point is inside (triangles are CCW)
		if signedArea(p1, p2, pt) >= tol &&
			signedArea(p2, p3, pt) >= tol &&
			signedArea(p3, p1, pt) >= tol {
			return msh.RegionTag[k]
		}
	}
	return -1
}

// EdgesWithLabel returns the labeled edges carrying the given label, with adjacent triangles
// for normal orientation
func (msh *Mesh) EdgesWithLabel(label int) (edges []BoundaryEdge) {
	return msh.labelEdges[label]
}

// NodesWithLabel returns the unique vertex indices lying on edges with the given label
func (msh *Mesh) NodesWithLabel(label int) (I utils.Index) {
	seen := make(map[int]bool)
	for _, e := range msh.labelEdges[label] {
		for _, vi := range e.E.GetVertices() {
			if !seen[vi] {
				seen[vi] = true
				I = append(I, vi)
			}
		}
	}
	return
}

// EdgeLength returns the length of the edge between the two vertices
func (msh *Mesh) EdgeLength(v1, v2 int) float64 {
	p1, p2 := msh.Verts[v1], msh.Verts[v2]
	return math.Hypot(p2[0]-p1[0], p2[1]-p1[1])
}

// InteriorEdges enumerates edges shared by exactly two triangles, used by quality diagnostics
func (msh *Mesh) InteriorEdges() (edges []types.EdgeKey) {
	for ek, tris := range msh.edgeToTris {
		if len(tris) == 2 {
			edges = append(edges, ek)
		}
	}
	return
}

func (msh *Mesh) AdjacentTris(ek types.EdgeKey) []int {
	return msh.edgeToTris[ek]
}

// ToGraphMesh converts to the avs plotting geometry
func (msh *Mesh) ToGraphMesh() (gm graphics2D.TriMesh) {
	gm = graphics2D.TriMesh{
		XY:       make([]float32, 2*len(msh.Verts)),
		TriVerts: make([][3]int64, len(msh.Tris)),
	}
	for i, v := range msh.Verts {
		gm.XY[2*i] = float32(v[0])
		gm.XY[2*i+1] = float32(v[1])
	}
	for k, tri := range msh.Tris {
		for n := 0; n < 3; n++ {
			gm.TriVerts[k][n] = int64(tri[n])
		}
	}
	return
}
