package FEM2D

import (
	"fmt"
	"math"
)

/*
Solve runs Jacobi preconditioned conjugate gradient on the assembled system. The eliminated
Dirichlet rows are identity rows, so constrained nodes converge to their fixed voltages along
with the free field. Non-convergence within maxIter is an error, never a partial field.
*/
func (sys *System) Solve(tol float64, maxIter int) (u ScalarField, err error) {
	var (
		n = len(sys.B)
		x = make([]float64, n)
	)
	if tol <= 0 {
		tol = 1.e-10
	}
	if maxIter <= 0 {
		maxIter = 10 * n
	}
	// Start from the Dirichlet lift so constrained entries begin at their fixed values
	for vi, g := range sys.Fixed {
		x[vi] = g
	}
	if sys.Iterations, err = cgSolve(sys.A, sys.B, x, tol, maxIter); err != nil {
		return
	}
	u = NewScalarField(sys.ES, x)
	return
}

// cgSolve is a standard preconditioned conjugate gradient with Jacobi (diagonal) scaling,
// operating on the CSR matrix without densifying it
func cgSolve(A interface {
	MulVec(x, y []float64)
	Diagonal() []float64
}, b, x []float64, tol float64, maxIter int) (iter int, err error) {
	var (
		n    = len(b)
		r    = make([]float64, n)
		z    = make([]float64, n)
		p    = make([]float64, n)
		ap   = make([]float64, n)
		diag = A.Diagonal()
	)
	for i, d := range diag {
		if d <= 0 {
			err = fmt.Errorf("matrix is not positive definite: diagonal entry %d = %v", i, d)
			return
		}
	}
	dot := func(a, b []float64) (d float64) {
		for i := range a {
			d += a[i] * b[i]
		}
		return
	}
	A.MulVec(x, ap)
	var bNorm float64
	for i := range r {
		r[i] = b[i] - ap[i]
		bNorm += b[i] * b[i]
	}
	bNorm = math.Sqrt(bNorm)
	if bNorm == 0 {
		bNorm = 1
	}
	for i := range z {
		z[i] = r[i] / diag[i]
	}
	copy(p, z)
	rz := dot(r, z)
	for iter = 0; iter < maxIter; iter++ {
		if math.Sqrt(dot(r, r))/bNorm < tol {
			return
		}
		A.MulVec(p, ap)
		pap := dot(p, ap)
		if pap <= 0 {
			err = fmt.Errorf("conjugate gradient breakdown at iteration %d: p.Ap = %v", iter, pap)
			return
		}
		alpha := rz / pap
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		for i := range z {
			z[i] = r[i] / diag[i]
		}
		rzNew := dot(r, z)
		beta := rzNew / rz
		rz = rzNew
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}
	err = fmt.Errorf("conjugate gradient did not converge in %d iterations, residual = %8.2e",
		maxIter, math.Sqrt(dot(r, r))/bNorm)
	return
}
