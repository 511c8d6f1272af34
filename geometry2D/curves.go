package geometry2D

import (
	"fmt"
	"math"
)

/*
BoundaryCurve is a parametric boundary segment in the style of declarative mesh builders: XY maps
t in [0,1] to a point on the curve, N is the segment count at refinement zero, and Label tags the
generated segments for boundary condition selection and flux integrals later on.

Curves that share endpoints are welded together when a CurveSet is discretized, so a closed domain
is declared simply by listing curves whose ends meet.
*/
type BoundaryCurve struct {
	XY    func(t float64) (x, y float64)
	N     int
	Label int
}

// Line is a convenience constructor for straight boundary segments
func Line(x1, y1, x2, y2 float64, n, label int) BoundaryCurve {
	return BoundaryCurve{
		XY: func(t float64) (x, y float64) {
			x = x1 + t*(x2-x1)
			y = y1 + t*(y2-y1)
			return
		},
		N:     n,
		Label: label,
	}
}

type CurveSet struct {
	Curves []BoundaryCurve
}

func NewCurveSet(curves ...BoundaryCurve) (cs *CurveSet) {
	cs = &CurveSet{
		Curves: curves,
	}
	return
}

/*
PSLG is a planar straight line graph: the discretized form of a CurveSet, ready for the mesher.
Points are deduplicated, so segments from different curves that land on the same coordinates share
vertices.
*/
type PSLG struct {
	Points    [][2]float64
	Segments  [][2]int32
	SegLabels []int
}

const weldTolerance = 1.e-9

func weldKey(x, y float64) [2]int64 {
	return [2]int64{
		int64(math.Round(x / weldTolerance)),
		int64(math.Round(y / weldTolerance)),
	}
}

// Discretize samples every curve at 2^refinement times its base segment count and welds
// coincident endpoints into a single PSLG
func (cs *CurveSet) Discretize(refinement int) (p *PSLG) {
	var (
		ptIndex = make(map[[2]int64]int32)
	)
	if refinement < 0 {
		panic(fmt.Errorf("refinement must be non-negative, got %d", refinement))
	}
	p = &PSLG{}
	addPoint := func(x, y float64) (ind int32) {
		var (
			exists bool
			key    = weldKey(x, y)
		)
		if ind, exists = ptIndex[key]; !exists {
			ind = int32(len(p.Points))
			p.Points = append(p.Points, [2]float64{x, y})
			ptIndex[key] = ind
		}
		return
	}
	for _, crv := range cs.Curves {
		if crv.N < 1 {
			panic(fmt.Errorf("boundary curve with label %d has segment count %d", crv.Label, crv.N))
		}
		n := crv.N << refinement
		prev := int32(-1)
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			x, y := crv.XY(t)
			ind := addPoint(x, y)
			if prev >= 0 {
				if prev == ind {
					panic(fmt.Errorf("degenerate segment on curve with label %d at t = %v", crv.Label, t))
				}
				p.Segments = append(p.Segments, [2]int32{prev, ind})
				p.SegLabels = append(p.SegLabels, crv.Label)
			}
			prev = ind
		}
	}
	return
}

// BoundingBox of the discretized boundary
func (p *PSLG) BoundingBox() (bb *BoundingBox) {
	return NewBoundingBox(p.Points)
}

/*
SeedInterior adds a grid of Steiner points inside the bounding box of the PSLG, spaced so that the
interior resolution follows the boundary refinement. Points that fall too close to a boundary
segment are skipped to avoid slivers. The enclosing geometry is expected to be convex; stray
points outside a non-convex boundary would be dropped by the mesher along with the exterior.
*/
func (p *PSLG) SeedInterior(refinement int) {
	var (
		bb           = p.BoundingBox()
		w, h         = bb.XMax[0] - bb.XMin[0], bb.XMax[1] - bb.XMin[1]
		minDim       = math.Min(w, h)
		nCells       = 8 << refinement
		spacing      = minDim / float64(nCells)
		minClearance = 0.4 * spacing
	)
	for x := bb.XMin[0] + spacing; x < bb.XMax[0]-0.5*spacing; x += spacing {
		for y := bb.XMin[1] + spacing; y < bb.XMax[1]-0.5*spacing; y += spacing {
			if p.distanceToSegments(x, y) > minClearance {
				p.Points = append(p.Points, [2]float64{x, y})
			}
		}
	}
}

func (p *PSLG) distanceToSegments(x, y float64) (dist float64) {
	dist = math.Inf(1)
	for _, seg := range p.Segments {
		p1, p2 := p.Points[seg[0]], p.Points[seg[1]]
		d := pointSegmentDistance(x, y, p1[0], p1[1], p2[0], p2[1])
		if d < dist {
			dist = d
		}
	}
	return
}

func pointSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	var (
		dx, dy = x2 - x1, y2 - y1
		len2   = dx*dx + dy*dy
	)
	if len2 == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / len2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
