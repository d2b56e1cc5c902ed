package GaussLaw

import (
	"fmt"

	"github.com/notargets/gofdtd/FieldSolver"
	"github.com/notargets/gofdtd/InputParameters"
	"github.com/notargets/gofdtd/grid"
	"github.com/notargets/gofdtd/utils"
)

// GaussLaw steps the Gauss's law correction field F on fixed E and rho and
// reports how far F drifts from zero.
type GaussLaw struct {
	// Input parameters
	Title     string
	Dt        float64
	Steps     int
	RhoComp   int
	PML       bool
	Case      InitType
	Amplitude float64
	// Solver and fields
	Solver *FieldSolver.FiniteDifferenceSolver
	Domain grid.Box
	F, Rho *grid.MultiFab
	E      [3]*grid.MultiFab
	Time   float64
	// Physical coordinates of index (0, 0, 0) and the cell spacing
	origin, cellSize [3]float64
	LogFrequency     int
}

func NewGaussLaw(ip *InputParameters.InputParametersFDTD, verbose bool) (c *GaussLaw, err error) {
	var (
		cfg FieldSolver.Config
	)
	c = &GaussLaw{
		Title:        ip.Title,
		Dt:           ip.Dt,
		Steps:        ip.Steps,
		RhoComp:      ip.RhoTimeIndex,
		PML:          ip.PML,
		Amplitude:    ip.Amplitude,
		LogFrequency: 10,
	}
	if c.Case, err = NewInitType(ip.InitType); err != nil {
		return
	}
	if cfg, err = ip.SolverConfig(); err != nil {
		return
	}
	if c.Solver, err = FieldSolver.NewFiniteDifferenceSolver(cfg); err != nil {
		return
	}
	var (
		nCell  = ip.NCell
		nCompF = 1
		nCompE = 1
		nRho   = 2
	)
	switch geom := cfg.Geometry.(type) {
	case FieldSolver.Cartesian:
		c.cellSize = geom.CellSize
		for d := 0; d < 3; d++ {
			if nCell[d] < 1 {
				nCell[d] = 1
			}
		}
		if c.PML {
			nCompF, nCompE = FieldSolver.PMLNComps, FieldSolver.PMLNComps
		}
	case FieldSolver.Cylindrical:
		c.origin = [3]float64{geom.RMin, 0, 0}
		c.cellSize = [3]float64{geom.Dr, geom.Dz, 1}
		if nCell[0] < 1 || nCell[1] < 1 {
			err = fmt.Errorf("cylindrical domain needs at least one cell in r and z, have %v", ip.NCell)
			return
		}
		nCell[2] = 1
		nCompF, nCompE, nRho = geom.NComps(), geom.NComps(), 2*geom.NComps()
	}
	c.Domain = grid.NewBox(grid.IntVect{0, 0, 0}, grid.IntVect{nCell[0] - 1, nCell[1] - 1, nCell[2] - 1})
	var (
		ba              = grid.NewBoxArray(c.Domain, grid.IntVect(ip.MaxGridSize))
		ng              = c.Solver.NGhost()
		ixF, ixE, ixRho = c.Solver.FieldIndexTypes()
	)
	c.F = grid.NewMultiFab(ba, ixF, nCompF, ng)
	c.Rho = grid.NewMultiFab(ba, ixRho, nRho, ng)
	for d := 0; d < 3; d++ {
		c.E[d] = grid.NewMultiFab(ba, ixE[d], nCompE, ng)
	}
	c.InitializeSolution()
	if verbose {
		fmt.Printf("Gauss's Law Correction Field\n")
		fmt.Printf("Solver: %s\n", c.Solver)
		fmt.Printf("Solving %s, Amplitude = %g\n", c.Case.Print(), c.Amplitude)
		fmt.Printf("Domain %s in %d patches, PML = %v\n", c.Domain, len(ba), c.PML)
		fmt.Printf("Dt = %g, Steps = %d, charge time level = %d\n\n", c.Dt, c.Steps, c.RhoComp)
	}
	return
}

// Step advances F once. Configuration errors from the solver are returned
// unchanged so the caller can treat them as fatal.
func (c *GaussLaw) Step() (err error) {
	if c.PML {
		err = c.Solver.EvolveFPML(c.F, c.E, c.Dt)
	} else {
		err = c.Solver.EvolveF(c.F, c.E, c.Rho, c.RhoComp, c.Dt)
	}
	if err != nil {
		return
	}
	c.Time += c.Dt
	return
}

func (c *GaussLaw) Run() (err error) {
	for tstep := 0; tstep < c.Steps; tstep++ {
		if err = c.Step(); err != nil {
			return
		}
		if c.hasNan() {
			return fmt.Errorf("NaN found in F at step %d, time %g", tstep, c.Time)
		}
		if tstep%c.LogFrequency == 0 || tstep == c.Steps-1 {
			c.Report(tstep)
		}
	}
	return
}

// Norms returns the L2 norm and the maximum magnitude of each F component
// over the valid points.
func (c *GaussLaw) Norms() (l2, maxAbs []float64) {
	l2 = make([]float64, c.F.NComp)
	maxAbs = make([]float64, c.F.NComp)
	for n := 0; n < c.F.NComp; n++ {
		l2[n], maxAbs[n] = c.F.Norm2(n), c.F.MaxAbs(n)
	}
	return
}

func (c *GaussLaw) Report(tstep int) {
	l2, maxAbs := c.Norms()
	fmt.Printf("Time = %10.4g, step[%d], ||F||_2 = %10.4g, max|F| = %10.4g", c.Time, tstep, l2, maxAbs)
	fmt.Printf(", %s\n", utils.GetMemUsage())
}

func (c *GaussLaw) hasNan() bool {
	vals := make([][]float64, c.F.NComp)
	for n := range vals {
		vals[n] = c.F.ValidValues(n)
	}
	return utils.IsNan(vals)
}

// domainLengths is the physical extent of the cell centered domain.
func (c *GaussLaw) domainLengths() (l [3]float64) {
	for d := 0; d < 3; d++ {
		l[d] = float64(c.Domain.Length(d)) * c.cellSize[d]
	}
	return
}
