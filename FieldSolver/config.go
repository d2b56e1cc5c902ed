package FieldSolver

import (
	"fmt"

	"github.com/notargets/gofdtd/types"
)

// Epsilon0 is the vacuum permittivity in F/m.
const Epsilon0 = 8.8541878128e-12

// Geometry is either Cartesian or Cylindrical, chosen once per run.
type Geometry interface {
	Type() types.GeometryType
	validate() error
}

type Cartesian struct {
	CellSize [3]float64 // dx, dy, dz
}

func (Cartesian) Type() types.GeometryType { return types.GeomCartesian }

func (g Cartesian) validate() error {
	for d, h := range g.CellSize {
		if !(h > 0) {
			return fmt.Errorf("cartesian cell size along axis %d must be positive, got %v", d, h)
		}
	}
	return nil
}

// Cylindrical is the azimuthal mode expansion on an (r, z) grid.
type Cylindrical struct {
	Dr, Dz float64
	RMin   float64 // radius of the first nodal point, 0 when the axis is in the domain
	NModes int     // azimuthal modes, including m = 0
}

func (Cylindrical) Type() types.GeometryType { return types.GeomCylindrical }

func (g Cylindrical) validate() error {
	switch {
	case !(g.Dr > 0) || !(g.Dz > 0):
		return fmt.Errorf("cylindrical cell size must be positive, got dr=%v dz=%v", g.Dr, g.Dz)
	case g.RMin < 0:
		return fmt.Errorf("cylindrical rmin must be non negative, got %v", g.RMin)
	case g.NModes < 1:
		return fmt.Errorf("cylindrical geometry needs at least one azimuthal mode, got %d", g.NModes)
	}
	return nil
}

// NComps is the number of scalar components per mode set: one for m = 0
// and a real/imaginary pair for each higher mode.
func (g Cylindrical) NComps() int { return 2*g.NModes - 1 }

type Config struct {
	Geometry       Geometry
	GridType       types.GridType
	Algo           types.ElectromagneticSolverAlgo
	StencilOrder   int // number of weights per axis, 0 means 1
	ParallelDegree int // patch workers, 0 means one per CPU
}

func (cfg Config) String() string {
	var geom = "<nil>"
	if cfg.Geometry != nil {
		geom = cfg.Geometry.Type().String()
	}
	return fmt.Sprintf("geometry=%s grid=%s algo=%s order=%d",
		geom, cfg.GridType, cfg.Algo, cfg.StencilOrder)
}
