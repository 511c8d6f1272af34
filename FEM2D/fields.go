package FEM2D

import (
	"fmt"
	"math/rand"

	"github.com/notargets/gocem/utils"
)

// ScalarField holds nodal coefficients over an ElementSpace, one value per mesh vertex
type ScalarField struct {
	ES *ElementSpace
	U  utils.Vector
}

func NewScalarField(es *ElementSpace, dataO ...[]float64) (f ScalarField) {
	f = ScalarField{
		ES: es,
		U:  utils.NewVector(es.Np, dataO...),
	}
	return
}

// CellField holds one value per element, used for conductivities and derived fields
type CellField struct {
	ES *ElementSpace
	V  utils.Vector
}

func NewCellField(es *ElementSpace, dataO ...[]float64) (f CellField) {
	f = CellField{
		ES: es,
		V:  utils.NewVector(es.K, dataO...),
	}
	return
}

// RandomCellField draws an independent uniform sample in [lo,hi) per element, the randomized
// conductivity of the test problem
func RandomCellField(es *ElementSpace, rnd *rand.Rand, lo, hi float64) (f CellField) {
	f = NewCellField(es)
	for k := range f.V.DataP {
		f.V.DataP[k] = lo + (hi-lo)*rnd.Float64()
	}
	return
}

// RegionCellField maps mesher-assigned region IDs to constant values, the piecewise constant
// conductivity of the true problem. Every region of the mesh must be covered.
func RegionCellField(es *ElementSpace, byRegion map[int]float64) (f CellField, err error) {
	f = NewCellField(es)
	for k, region := range es.Msh.RegionTag {
		val, exists := byRegion[region]
		if !exists {
			err = fmt.Errorf("no value supplied for mesh region ID %d", region)
			return
		}
		f.V.DataP[k] = val
	}
	return
}

/*
Gradient differentiates the potential per element and negates, yielding the electric field
E = -grad(u), constant on each triangle
*/
func (f ScalarField) Gradient() (Ex, Ey CellField) {
	var (
		es = f.ES
	)
	Ex, Ey = NewCellField(es), NewCellField(es)
	for k, tri := range es.Msh.Tris {
		var gx, gy float64
		for n := 0; n < 3; n++ {
			u := f.U.DataP[tri[n]]
			gx += u * es.DphiX.At(k, n)
			gy += u * es.DphiY.At(k, n)
		}
		Ex.V.DataP[k] = -gx
		Ey.V.DataP[k] = -gy
	}
	return
}

// CurrentDensity scales the electric field by the conductivity, J = sigma * E
func CurrentDensity(sigma, Ex, Ey CellField) (Jx, Jy CellField) {
	var (
		es = sigma.ES
	)
	Jx, Jy = NewCellField(es), NewCellField(es)
	for k := range sigma.V.DataP {
		Jx.V.DataP[k] = sigma.V.DataP[k] * Ex.V.DataP[k]
		Jy.V.DataP[k] = sigma.V.DataP[k] * Ey.V.DataP[k]
	}
	return
}

// InterpolateNodal averages a cell field to mesh vertices for plotting
func (f CellField) InterpolateNodal() (nf ScalarField) {
	var (
		es     = f.ES
		counts = make([]float64, es.Np)
	)
	nf = NewScalarField(es)
	for k, tri := range es.Msh.Tris {
		for _, vi := range tri {
			nf.U.DataP[vi] += f.V.DataP[k]
			counts[vi]++
		}
	}
	for i := range nf.U.DataP {
		if counts[i] > 0 {
			nf.U.DataP[i] /= counts[i]
		}
	}
	return
}
