package FEM2D

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gocem/geometry2D"
	"github.com/notargets/gocem/utils"
)

const (
	hotLabel  = 1
	coldLabel = 20
	wallLabel = 2
)

// Unit square with electrodes on the left (label 1) and right (label 20) walls
func unitSquareSpace(refinement int) (es *ElementSpace) {
	cs := geometry2D.NewCurveSet(
		geometry2D.Line(0, 0, 1, 0, 4, wallLabel),
		geometry2D.Line(1, 0, 1, 1, 4, coldLabel),
		geometry2D.Line(1, 1, 0, 1, 4, wallLabel),
		geometry2D.Line(0, 1, 0, 0, 4, hotLabel),
	)
	es = NewElementSpace(cs.Mesh(refinement))
	return
}

func TestElementSpace(t *testing.T) {
	es := unitSquareSpace(1)
	assert.Equal(t, len(es.Msh.Tris), es.K)
	assert.Equal(t, len(es.Msh.Verts), es.Np)
	assert.InDelta(t, 1.0, es.TotalArea(), 1.e-10)
	// Hat function gradients on each element sum to zero
	for k := 0; k < es.K; k++ {
		var gx, gy float64
		for n := 0; n < 3; n++ {
			gx += es.DphiX.At(k, n)
			gy += es.DphiY.At(k, n)
		}
		assert.InDelta(t, 0., gx, 1.e-12)
		assert.InDelta(t, 0., gy, 1.e-12)
	}
}

func TestConjugateGradient(t *testing.T) {
	A := utils.NewDOK(2, 2)
	A.Set(0, 0, 4)
	A.Set(0, 1, 1)
	A.Set(1, 0, 1)
	A.Set(1, 1, 3)
	b := []float64{1, 2}
	x := make([]float64, 2)
	iters, err := cgSolve(A.ToCSR(), b, x, 1.e-12, 100)
	assert.NoError(t, err)
	assert.True(t, iters <= 2)
	assert.InDelta(t, 1./11., x[0], 1.e-10)
	assert.InDelta(t, 7./11., x[1], 1.e-10)
}

/*
Patch test: uniform conductivity between parallel electrodes admits the exact solution
u = V*(1-x), which P1 elements reproduce to solver tolerance on any mesh. The boundary flux
then recovers I = sigma * V * H / L exactly.
*/
func TestUniformSlab(t *testing.T) {
	var (
		es    = unitSquareSpace(1)
		sigma = NewCellField(es, utils.ConstArray(es.K, 1))
		V     = 5.
	)
	u, err := SolvePotential(sigma, map[int]float64{hotLabel: V, coldLabel: 0}, 1.e-12, 0)
	assert.NoError(t, err)
	for i, vert := range es.Msh.Verts {
		assert.InDelta(t, V*(1-vert[0]), u.U.DataP[i], 1.e-8)
	}

	Ex, Ey := u.Gradient()
	Jx, Jy := CurrentDensity(sigma, Ex, Ey)
	for k := 0; k < es.K; k++ {
		assert.InDelta(t, V, Jx.V.DataP[k], 1.e-7)
		assert.InDelta(t, 0., Jy.V.DataP[k], 1.e-7)
	}

	// Flux out of the domain at the hot electrode is -I, walls carry none
	flux, err := BoundaryFlux(hotLabel, Jx, Jy)
	assert.NoError(t, err)
	assert.InDelta(t, -V, flux, 1.e-7)
	wallFlux, err := BoundaryFlux(wallLabel, Jx, Jy)
	assert.NoError(t, err)
	assert.InDelta(t, 0., wallFlux, 1.e-7)

	// Fake power with a unit-drop test field on the same conductor equals the current
	uTest, err := SolvePotential(sigma, map[int]float64{hotLabel: 1, coldLabel: 0}, 1.e-12, 0)
	assert.NoError(t, err)
	ExT, EyT := uTest.Gradient()
	assert.InDelta(t, V, FakePower(Jx, Jy, ExT, EyT), 1.e-6)
}

func TestVoltageLinearity(t *testing.T) {
	var (
		es    = unitSquareSpace(1)
		rnd   = rand.New(rand.NewSource(42))
		sigma = RandomCellField(es, rnd, 1, 3)
	)
	current := func(V float64) float64 {
		u, err := SolvePotential(sigma, map[int]float64{hotLabel: V, coldLabel: 0}, 1.e-12, 0)
		assert.NoError(t, err)
		Ex, Ey := u.Gradient()
		Jx, Jy := CurrentDensity(sigma, Ex, Ey)
		flux, err := BoundaryFlux(hotLabel, Jx, Jy)
		assert.NoError(t, err)
		return -flux
	}
	i1 := current(1)
	i5 := current(5)
	assert.True(t, i1 > 0)
	assert.InDelta(t, 5*i1, i5, 1.e-6*i5)
}

// Flux integration is defined only on the domain boundary: a label on an interior interface
// has two adjacent elements and no outward direction, so it must be rejected
func TestInteriorLabelFlux(t *testing.T) {
	const ifaceLabel = 3
	cs := geometry2D.NewCurveSet(
		geometry2D.Line(0, 0, 0.5, 0, 2, wallLabel),
		geometry2D.Line(0.5, 0, 1, 0, 2, wallLabel),
		geometry2D.Line(1, 0, 1, 1, 4, coldLabel),
		geometry2D.Line(1, 1, 0.5, 1, 2, wallLabel),
		geometry2D.Line(0.5, 1, 0, 1, 2, wallLabel),
		geometry2D.Line(0, 1, 0, 0, 4, hotLabel),
		geometry2D.Line(0.5, 0, 0.5, 1, 4, ifaceLabel),
	)
	var (
		es    = NewElementSpace(cs.Mesh(0))
		sigma = NewCellField(es, utils.ConstArray(es.K, 1))
	)
	u, err := SolvePotential(sigma, map[int]float64{hotLabel: 1, coldLabel: 0}, 1.e-12, 0)
	assert.NoError(t, err)
	Ex, Ey := u.Gradient()
	Jx, Jy := CurrentDensity(sigma, Ex, Ey)
	_, err = BoundaryFlux(ifaceLabel, Jx, Jy)
	assert.Error(t, err)
	// The true boundary labels still integrate
	flux, err := BoundaryFlux(hotLabel, Jx, Jy)
	assert.NoError(t, err)
	assert.InDelta(t, -1., flux, 1.e-7)
}

func TestSingularSystems(t *testing.T) {
	var (
		es    = unitSquareSpace(0)
		sigma = NewCellField(es, utils.ConstArray(es.K, 1))
	)
	// No Dirichlet constraints at all
	_, err := Assemble(sigma, map[int]float64{})
	assert.Error(t, err)
	// Constraints referencing a label absent from the mesh
	_, err = Assemble(sigma, map[int]float64{99: 1})
	assert.Error(t, err)
}

func TestRegionCellField(t *testing.T) {
	es := unitSquareSpace(0)
	// Single region mesh: region 0 must be covered
	f, err := RegionCellField(es, map[int]float64{0: 7})
	assert.NoError(t, err)
	assert.Equal(t, 7., f.V.DataP[0])
	_, err = RegionCellField(es, map[int]float64{1: 7})
	assert.Error(t, err)
}
