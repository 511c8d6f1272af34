package FEM2D

import (
	"fmt"

	"github.com/notargets/gocem/utils"
)

/*
System is the assembled linear system for one potential solve: the conductivity weighted
stiffness operator in CSR form, the right hand side carrying the Dirichlet lift, and the
constrained nodes with their fixed voltages.
*/
type System struct {
	ES         *ElementSpace
	A          utils.CSR
	B          []float64
	Fixed      map[int]float64
	Iterations int // filled in by Solve
}

/*
Assemble builds the Galerkin stiffness system for the weak form

	integral( sigma * grad(u) . grad(v) ) = 0

with Dirichlet constraints given as a map from boundary label to fixed voltage. Constraints are
eliminated symmetrically during assembly: constrained rows and columns reduce to the identity,
with their contributions moved to the right hand side, so the remaining operator stays symmetric
positive definite for the CG solve.

A system with no matching Dirichlet constraints is singular and returns an error rather than a
silently arbitrary field, as does a free node with an empty row (a node disconnected from the
domain).
*/
func Assemble(sigma CellField, bcs map[int]float64) (sys *System, err error) {
	var (
		es    = sigma.ES
		msh   = es.Msh
		fixed = make(map[int]float64)
	)
	for label, voltage := range bcs {
		for _, vi := range msh.NodesWithLabel(label) {
			fixed[vi] = voltage
		}
	}
	if len(fixed) == 0 {
		err = fmt.Errorf("singular system: no Dirichlet constraints matched any boundary label in %v", bcs)
		return
	}
	var (
		A = utils.NewDOK(es.Np, es.Np)
		b = make([]float64, es.Np)
	)
	for k, tri := range msh.Tris {
		coef := sigma.V.DataP[k] * es.Area.DataP[k]
		for m := 0; m < 3; m++ {
			row := tri[m]
			if _, isFixed := fixed[row]; isFixed {
				continue
			}
			for n := 0; n < 3; n++ {
				var (
					col        = tri[n]
					kmn        = coef * (es.DphiX.At(k, m)*es.DphiX.At(k, n) + es.DphiY.At(k, m)*es.DphiY.At(k, n))
					g, isFixed = fixed[col]
				)
				if isFixed {
					b[row] -= kmn * g
				} else {
					A.AddAt(row, col, kmn)
				}
			}
		}
	}
	for vi, g := range fixed {
		A.Set(vi, vi, 1)
		b[vi] = g
	}
	sys = &System{
		ES:    es,
		A:     A.ToCSR(),
		B:     b,
		Fixed: fixed,
	}
	for i, d := range sys.A.Diagonal() {
		if d == 0 {
			err = fmt.Errorf("singular system: node %d at %v has no stiffness contributions",
				i, msh.Verts[i])
			sys = nil
			return
		}
	}
	return
}

// SolvePotential assembles and solves in one call, the common path for both the test and true
// field problems
func SolvePotential(sigma CellField, bcs map[int]float64, tol float64, maxIter int) (u ScalarField, err error) {
	var (
		sys *System
	)
	if sys, err = Assemble(sigma, bcs); err != nil {
		return
	}
	u, err = sys.Solve(tol, maxIter)
	return
}
