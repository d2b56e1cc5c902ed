package FieldSolver

import (
	"fmt"

	"github.com/notargets/gofdtd/grid"
	"github.com/notargets/gofdtd/stencil"
	"github.com/notargets/gofdtd/types"
)

// FiniteDifferenceSolver holds the configuration and stencil tables for a
// run. It is immutable after construction and safe to share between
// goroutines; all calls read it only.
type FiniteDifferenceSolver struct {
	fdtdAlgo       types.ElectromagneticSolverAlgo
	gridType       types.GridType
	geometry       Geometry
	stencilOrder   int
	parallelDegree int

	// Cartesian
	stencilCoefsX, stencilCoefsY, stencilCoefsZ stencil.Coefs

	// Cylindrical
	stencilCoefsR stencil.Coefs
	dr, rmin      float64
	nmodes        int
}

func NewFiniteDifferenceSolver(cfg Config) (fs *FiniteDifferenceSolver, err error) {
	if cfg.Geometry == nil {
		err = fmt.Errorf("solver configuration has no geometry")
		return
	}
	if err = cfg.Geometry.validate(); err != nil {
		return
	}
	if cfg.StencilOrder == 0 {
		cfg.StencilOrder = 1
	}
	if cfg.StencilOrder < 1 || cfg.StencilOrder > stencil.MaxStencilOrder {
		err = fmt.Errorf("stencil order %d outside [1, %d]", cfg.StencilOrder, stencil.MaxStencilOrder)
		return
	}
	fs = &FiniteDifferenceSolver{
		fdtdAlgo:       cfg.Algo,
		gridType:       cfg.GridType,
		geometry:       cfg.Geometry,
		stencilOrder:   cfg.StencilOrder,
		parallelDegree: cfg.ParallelDegree,
	}
	switch geom := cfg.Geometry.(type) {
	case Cartesian:
		err = fs.initCartesianCoefficients(geom, cfg.StencilOrder)
	case Cylindrical:
		fs.dr, fs.rmin, fs.nmodes = geom.Dr, geom.RMin, geom.NModes
		if fs.stencilCoefsR, err = stencil.StaggeredCoefficients(cfg.StencilOrder, geom.Dr); err != nil {
			return nil, err
		}
		fs.stencilCoefsZ, err = stencil.StaggeredCoefficients(cfg.StencilOrder, geom.Dz)
	default:
		err = fmt.Errorf("unsupported geometry %T", cfg.Geometry)
	}
	if err != nil {
		return nil, err
	}
	return
}

func (fs *FiniteDifferenceSolver) initCartesianCoefficients(geom Cartesian, order int) (err error) {
	var (
		coefs [3]stencil.Coefs
		build = stencil.StaggeredCoefficients
	)
	switch {
	case fs.gridType == types.Collocated:
		build = stencil.NodalCoefficients
	case fs.fdtdAlgo == types.AlgoCKC:
		if coefs, err = stencil.CKCCoefficients(geom.CellSize); err != nil {
			return
		}
		build = nil
	}
	if build != nil {
		for d := 0; d < 3; d++ {
			if coefs[d], err = build(order, geom.CellSize[d]); err != nil {
				return
			}
		}
	}
	fs.stencilCoefsX, fs.stencilCoefsY, fs.stencilCoefsZ = coefs[0], coefs[1], coefs[2]
	return
}

func (fs *FiniteDifferenceSolver) Geometry() Geometry { return fs.geometry }

func (fs *FiniteDifferenceSolver) StencilCoefficients() (x, y, z stencil.Coefs) {
	return fs.stencilCoefsX, fs.stencilCoefsY, fs.stencilCoefsZ
}

func (fs *FiniteDifferenceSolver) CylindricalCoefficients() (r, z stencil.Coefs) {
	return fs.stencilCoefsR, fs.stencilCoefsZ
}

// NGhost is the ghost depth the active stencil reads along each axis.
func (fs *FiniteDifferenceSolver) NGhost() (ng grid.IntVect) {
	support := func(c stencil.Coefs) int {
		if fs.gridType != types.Collocated && fs.fdtdAlgo == types.AlgoCKC {
			return 1
		}
		return len(c)
	}
	switch fs.geometry.(type) {
	case Cylindrical:
		ng = grid.IntVect{support(fs.stencilCoefsR), support(fs.stencilCoefsZ), 0}
	default:
		ng = grid.IntVect{support(fs.stencilCoefsX), support(fs.stencilCoefsY), support(fs.stencilCoefsZ)}
	}
	return
}

// FieldIndexTypes gives the staggering of F, E and rho for the active
// geometry and grid type. F and rho are nodal; on a staggered grid each E
// component is cell centered along its own direction.
func (fs *FiniteDifferenceSolver) FieldIndexTypes() (F grid.IndexType, E [3]grid.IndexType, rho grid.IndexType) {
	switch fs.geometry.(type) {
	case Cylindrical:
		F = grid.IndexType{true, true, false}
		rho = F
		E = [3]grid.IndexType{
			{false, true, false}, // Er
			{true, true, false},  // Et
			{true, false, false}, // Ez
		}
	default:
		F = grid.NodalType()
		rho = F
		if fs.gridType == types.Collocated {
			E = [3]grid.IndexType{F, F, F}
			return
		}
		E = [3]grid.IndexType{
			{false, true, true},
			{true, false, true},
			{true, true, false},
		}
	}
	return
}

func (fs *FiniteDifferenceSolver) String() string {
	return Config{
		Geometry:     fs.geometry,
		GridType:     fs.gridType,
		Algo:         fs.fdtdAlgo,
		StencilOrder: fs.stencilOrder,
	}.String()
}
