package stencil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofdtd/utils"
)

// Coefs is a table of finite difference weights along one axis. Its length
// sets the support radius of the stencil; kernels trust that enough ghost
// cells exist for it.
type Coefs []float64

const MaxStencilOrder = 6

// StaggeredCoefficients returns the order weights w such that
//
//	df/dx(x) ~ sum_m w[m] * (f(x+(m+1/2)dx) - f(x-(m+1/2)dx))
//
// Order 1 is the two point Yee difference {1/dx}.
func StaggeredCoefficients(order int, dx float64) (c Coefs, err error) {
	var (
		h = make([]float64, max(order, 0))
	)
	for m := range h {
		h[m] = float64(m) + 0.5
	}
	if c, err = solveMoments(order, dx, h, 2); err != nil {
		err = fmt.Errorf("staggered stencil: %w", err)
	}
	return
}

// NodalCoefficients returns the order weights w such that
//
//	df/dx(x) ~ 0.5 * sum_m w[m] * (f(x+(m+1)dx) - f(x-(m+1)dx))
//
// Order 1 is the centered difference weight {1/dx}.
func NodalCoefficients(order int, dx float64) (c Coefs, err error) {
	var (
		h = make([]float64, max(order, 0))
	)
	for m := range h {
		h[m] = float64(m + 1)
	}
	if c, err = solveMoments(order, dx, h, 1); err != nil {
		err = fmt.Errorf("nodal stencil: %w", err)
	}
	return
}

// solveMoments matches the odd Taylor moments of an antisymmetric stencil
// with offsets h (in cells): the first derivative is kept, the next
// order-1 odd derivatives are cancelled.
func solveMoments(order int, dx float64, h []float64, lead float64) (c Coefs, err error) {
	if order < 1 || order > MaxStencilOrder {
		err = fmt.Errorf("order %d outside [1, %d]", order, MaxStencilOrder)
		return
	}
	if !(dx > 0) || math.IsInf(dx, 0) {
		err = fmt.Errorf("cell size must be positive and finite, got %v", dx)
		return
	}
	var (
		A = mat.NewDense(order, order, nil)
		b = mat.NewVecDense(order, nil)
		x mat.VecDense
	)
	for n := 0; n < order; n++ {
		A.Set(0, n, lead*h[n])
		for k := 1; k < order; k++ {
			A.Set(k, n, utils.POW(h[n], 2*k+1))
		}
	}
	b.SetVec(0, 1)
	if err = x.SolveVec(A, b); err != nil {
		return
	}
	c = make(Coefs, order)
	for n := range c {
		c[n] = x.AtVec(n) / dx
	}
	return
}

// CKCCoefficients returns, per axis, {1/d, alpha, beta_a, beta_b, gamma}
// for the Cole-Karkkainen stencil. Only entry 0 is used by the downward
// operators; the rest weight the transverse neighbours of the curl.
func CKCCoefficients(cellSize [3]float64) (coefs [3]Coefs, err error) {
	for d := 0; d < 3; d++ {
		if !(cellSize[d] > 0) {
			err = fmt.Errorf("CKC stencil: cell size must be positive, got %v", cellSize)
			return
		}
	}
	var (
		invD  = [3]float64{1 / cellSize[0], 1 / cellSize[1], 1 / cellSize[2]}
		delta = math.Max(invD[0], math.Max(invD[1], invD[2]))
		r     [3]float64
	)
	for d := 0; d < 3; d++ {
		r[d] = (invD[d] / delta) * (invD[d] / delta)
	}
	var (
		rSum    = r[1]*r[2] + r[2]*r[0] + r[0]*r[1]
		beta    = 0.125 * (1 - r[0]*r[1]*r[2]/rSum)
		invRFac = 1 / rSum
	)
	for d := 0; d < 3; d++ {
		var (
			a, b  = (d + 1) % 3, (d + 2) % 3
			betaA = r[a] * beta * invD[d]
			betaB = r[b] * beta * invD[d]
			gamma = r[a] * r[b] * (1./16. - 0.125*r[a]*r[b]*invRFac) * invD[d]
			alpha = invD[d] - 2*betaA - 2*betaB - 4*gamma
		)
		coefs[d] = Coefs{invD[d], alpha, betaA, betaB, gamma}
	}
	return
}
