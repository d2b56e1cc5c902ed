package FieldSolver

import (
	"fmt"

	"github.com/notargets/gofdtd/grid"
	"github.com/notargets/gofdtd/stencil"
	"github.com/notargets/gofdtd/types"
)

// Split components of the PML fields. F carries one component per
// direction; each E component is split into its three directional parts.
const (
	PMLCompX = 0
	PMLCompY = 1
	PMLCompZ = 2

	PMLCompXX = 0
	PMLCompXY = 1
	PMLCompXZ = 2
	PMLCompYX = 0
	PMLCompYY = 1
	PMLCompYZ = 2
	PMLCompZX = 0
	PMLCompZY = 1
	PMLCompZZ = 2
)

// PMLNComps is the component count of both F and each E field in a PML.
const PMLNComps = 3

// EvolveFPML advances the split F field of an absorbing layer by dt. There
// is no charge in a PML, so only the divergence of the split E enters.
// Cylindrical geometry is rejected with ErrPMLNotSupported before any field
// is touched.
func (fs *FiniteDifferenceSolver) EvolveFPML(Ffield *grid.MultiFab, Efield [3]*grid.MultiFab, dt float64) error {
	if _, ok := fs.geometry.(Cylindrical); ok {
		return fmt.Errorf("EvolveFPML: %w", ErrPMLNotSupported)
	}
	switch {
	case fs.gridType == types.Collocated:
		evolveFPMLCartesian[stencil.CartesianNodal](fs, Ffield, Efield, dt)
	case fs.fdtdAlgo == types.AlgoYee:
		evolveFPMLCartesian[stencil.CartesianYee](fs, Ffield, Efield, dt)
	case fs.fdtdAlgo == types.AlgoCKC:
		evolveFPMLCartesian[stencil.CartesianCKC](fs, Ffield, Efield, dt)
	default:
		return fmt.Errorf("EvolveFPML: %w (%s)", ErrUnknownAlgorithm, fs)
	}
	return nil
}

func evolveFPMLCartesian[T stencil.CartesianAlgorithm](fs *FiniteDifferenceSolver,
	Ffield *grid.MultiFab, Efield [3]*grid.MultiFab, dt float64) {
	var (
		algo   T
		coefsX = fs.stencilCoefsX
		coefsY = fs.stencilCoefsY
		coefsZ = fs.stencilCoefsZ
	)
	grid.ForEachPatch(Ffield, fs.parallelDegree, func(p int) {
		var (
			F  = Ffield.Array(p)
			Ex = Efield[0].Array(p)
			Ey = Efield[1].Array(p)
			Ez = Efield[2].Array(p)
			tf = Ffield.ValidBox(p)
		)
		grid.ParallelFor(tf, func(i, j, k int) {
			F.Add(i, j, k, PMLCompX, dt*(algo.DownwardDx(Ex, coefsX, i, j, k, PMLCompXX)+
				algo.DownwardDx(Ex, coefsX, i, j, k, PMLCompXY)+
				algo.DownwardDx(Ex, coefsX, i, j, k, PMLCompXZ)))

			F.Add(i, j, k, PMLCompY, dt*(algo.DownwardDy(Ey, coefsY, i, j, k, PMLCompYX)+
				algo.DownwardDy(Ey, coefsY, i, j, k, PMLCompYY)+
				algo.DownwardDy(Ey, coefsY, i, j, k, PMLCompYZ)))

			F.Add(i, j, k, PMLCompZ, dt*(algo.DownwardDz(Ez, coefsZ, i, j, k, PMLCompZX)+
				algo.DownwardDz(Ez, coefsZ, i, j, k, PMLCompZY)+
				algo.DownwardDz(Ez, coefsZ, i, j, k, PMLCompZZ)))
		})
	})
}
