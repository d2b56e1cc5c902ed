package FieldSolver

import (
	"fmt"

	"github.com/notargets/gofdtd/grid"
	"github.com/notargets/gofdtd/stencil"
	"github.com/notargets/gofdtd/types"
)

// EvolveF advances the Gauss's law correction field F by one step of dt:
//
//	F += dt * (div(E) - rho/eps0)
//
// rhocomp selects the old (0) or new (1) charge density. Every valid cell
// of every patch of Ffield is updated in place. An algorithm that has no
// kernel for the active geometry returns ErrUnknownAlgorithm and leaves F
// untouched.
func (fs *FiniteDifferenceSolver) EvolveF(Ffield *grid.MultiFab, Efield [3]*grid.MultiFab,
	rhofield *grid.MultiFab, rhocomp int, dt float64) error {
	// The algorithm is a runtime option; each family has its own kernel
	// instantiation so nothing is branched on inside the cell loop.
	switch geom := fs.geometry.(type) {
	case Cylindrical:
		if fs.fdtdAlgo == types.AlgoYee {
			evolveFCylindrical[stencil.CylindricalYee](fs, geom, Ffield, Efield, rhofield, rhocomp, dt)
			return nil
		}
	case Cartesian:
		switch {
		case fs.gridType == types.Collocated:
			evolveFCartesian[stencil.CartesianNodal](fs, Ffield, Efield, rhofield, rhocomp, dt)
			return nil
		case fs.fdtdAlgo == types.AlgoYee:
			evolveFCartesian[stencil.CartesianYee](fs, Ffield, Efield, rhofield, rhocomp, dt)
			return nil
		case fs.fdtdAlgo == types.AlgoCKC:
			evolveFCartesian[stencil.CartesianCKC](fs, Ffield, Efield, rhofield, rhocomp, dt)
			return nil
		}
	}
	return fmt.Errorf("EvolveF: %w (%s)", ErrUnknownAlgorithm, fs)
}

func evolveFCartesian[T stencil.CartesianAlgorithm](fs *FiniteDifferenceSolver,
	Ffield *grid.MultiFab, Efield [3]*grid.MultiFab, rhofield *grid.MultiFab, rhocomp int, dt float64) {
	var (
		algo        T
		coefsX      = fs.stencilCoefsX
		coefsY      = fs.stencilCoefsY
		coefsZ      = fs.stencilCoefsZ
		invEpsilon0 = 1. / Epsilon0
	)
	grid.ForEachPatch(Ffield, fs.parallelDegree, func(p int) {
		var (
			F   = Ffield.Array(p)
			Ex  = Efield[0].Array(p)
			Ey  = Efield[1].Array(p)
			Ez  = Efield[2].Array(p)
			rho = rhofield.Array(p)
			tf  = Ffield.ValidBox(p)
		)
		grid.ParallelFor(tf, func(i, j, k int) {
			F.Add(i, j, k, 0, dt*(-rho.At(i, j, k, rhocomp)*invEpsilon0+
				algo.DownwardDx(Ex, coefsX, i, j, k, 0)+
				algo.DownwardDy(Ey, coefsY, i, j, k, 0)+
				algo.DownwardDz(Ez, coefsZ, i, j, k, 0)))
		})
	})
}

// evolveFCylindrical walks (r, z) cells. F is nodal in r, so cell i sits at
// r = rmin + i*dr; the i == 0 point of a domain touching the axis is r == 0.
func evolveFCylindrical[T stencil.CylindricalAlgorithm](fs *FiniteDifferenceSolver, geom Cylindrical,
	Ffield *grid.MultiFab, Efield [3]*grid.MultiFab, rhofield *grid.MultiFab, rhocomp int, dt float64) {
	var (
		algo        T
		coefsR      = fs.stencilCoefsR
		coefsZ      = fs.stencilCoefsZ
		dr          = fs.dr
		rmin        = fs.rmin
		nmodes      = fs.nmodes
		invEpsilon0 = 1. / Epsilon0
		rhoShift    int
	)
	// rho holds two mode sets back to back: old time level first, new second
	if rhocomp == 1 {
		rhoShift = geom.NComps()
	}
	grid.ForEachPatch(Ffield, fs.parallelDegree, func(p int) {
		var (
			F   = Ffield.Array(p)
			Er  = Efield[0].Array(p)
			Et  = Efield[1].Array(p)
			Ez  = Efield[2].Array(p)
			rho = rhofield.Array(p)
			tf  = Ffield.ValidBox(p)
		)
		grid.ParallelFor(tf, func(i, j, _ int) {
			r := rmin + float64(i)*dr
			if r != 0 {
				F.Add(i, j, 0, 0, dt*(-rho.At(i, j, 0, rhoShift)*invEpsilon0+
					algo.DownwardDrrOverR(Er, r, dr, coefsR, i, j, 0, 0)+
					algo.DownwardDz(Ez, coefsZ, i, j, 0, 0)))
				for m := 1; m < nmodes; m++ {
					var (
						re, im = 2*m - 1, 2 * m
						fm     = float64(m)
					)
					// Real part
					F.Add(i, j, 0, re, dt*(-rho.At(i, j, 0, rhoShift+re)*invEpsilon0+
						algo.DownwardDrrOverR(Er, r, dr, coefsR, i, j, 0, re)+
						fm*Et.At(i, j, 0, im)/r+
						algo.DownwardDz(Ez, coefsZ, i, j, 0, re)))
					// Imaginary part
					F.Add(i, j, 0, im, dt*(-rho.At(i, j, 0, rhoShift+re)*invEpsilon0+
						algo.DownwardDrrOverR(Er, r, dr, coefsR, i, j, 0, re)-
						fm*Et.At(i, j, 0, re)/r+
						algo.DownwardDz(Ez, coefsZ, i, j, 0, im)))
				}
				return
			}
			// On axis: Er is linear in r for m = 0, which regularizes (1/r) d(r Er)/dr
			F.Add(i, j, 0, 0, dt*(-rho.At(i, j, 0, rhoShift)*invEpsilon0+
				4*Er.At(i, j, 0, 0)/dr+
				algo.DownwardDz(Ez, coefsZ, i, j, 0, 0)))
			// Higher modes vanish on the axis
			for m := 1; m < nmodes; m++ {
				F.Set(i, j, 0, 2*m-1, 0)
				F.Set(i, j, 0, 2*m, 0)
			}
		})
	})
}
