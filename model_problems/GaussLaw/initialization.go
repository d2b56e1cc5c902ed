package GaussLaw

import (
	"fmt"
	"strings"

	"github.com/notargets/gofdtd/FieldSolver"
	"github.com/notargets/gofdtd/grid"
	"github.com/notargets/gofdtd/utils"
)

type InitType uint

const (
	UNIFORM InitType = iota
	POLYNOMIAL
	GAUSSIAN
)

var (
	InitNames = map[string]InitType{
		"uniform":    UNIFORM,
		"polynomial": POLYNOMIAL,
		"gaussian":   GAUSSIAN,
	}
	InitPrintNames = []string{"Uniform E, no charge", "Quadratic E with matching charge", "Gaussian E pulse, no charge"}
)

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty init type, must be one of %v", InitNames)
		return
	}
	if it, ok = InitNames[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
	}
	return
}

func (it InitType) Print() (txt string) {
	if int(it) < len(InitPrintNames) {
		txt = InitPrintNames[it]
	}
	return
}

// analytic is a scalar field in physical coordinates: (x, y, z) for
// Cartesian, (r, z, 0) for cylindrical.
type analytic func(x [3]float64) float64

func constant(val float64) analytic {
	return func([3]float64) float64 { return val }
}

// fill sets one component of mf over its grown boxes, so ghost cells hold
// the analytic value as well.
func (c *GaussLaw) fill(mf *grid.MultiFab, comp int, f analytic) {
	mf.Fill(comp, func(i, j, k int) float64 {
		return f(mf.IxType.Position(c.origin, c.cellSize, i, j, k))
	})
}

// InitializeSolution sets F to zero and E, rho from the init type.
func (c *GaussLaw) InitializeSolution() {
	c.F.SetVal(0)
	c.Rho.SetVal(0)
	for d := 0; d < 3; d++ {
		c.E[d].SetVal(0)
	}
	switch c.Solver.Geometry().(type) {
	case FieldSolver.Cartesian:
		c.initCartesian()
	case FieldSolver.Cylindrical:
		c.initCylindrical()
	}
}

func (c *GaussLaw) initCartesian() {
	var (
		A        = c.Amplitude
		E        [3]analytic
		divE     analytic
		center   [3]float64
		sigma    [3]float64
		eps0     = FieldSolver.Epsilon0
		lengths  = c.domainLengths()
		isActive = func(d int) bool { return lengths[d] > c.cellSize[d] }
	)
	for d := 0; d < 3; d++ {
		center[d] = c.origin[d] + 0.5*lengths[d]
		if isActive(d) {
			sigma[d] = lengths[d] / 8
		}
	}
	switch c.Case {
	case UNIFORM:
		E = [3]analytic{constant(A), constant(0.5 * A), constant(-A)}
	case POLYNOMIAL:
		for d := 0; d < 3; d++ {
			d := d
			E[d] = func(x [3]float64) float64 { return A * x[d] * x[d] }
		}
		divE = func(x [3]float64) float64 { return 2 * A * (x[0] + x[1] + x[2]) }
	case GAUSSIAN:
		for d := 0; d < 3; d++ {
			E[d] = func(x [3]float64) float64 { return A * utils.Gaussian(x, center, sigma) }
		}
	}
	if c.PML {
		// No charge in an absorbing layer, E is shared equally by the split parts
		for d := 0; d < 3; d++ {
			for n := 0; n < FieldSolver.PMLNComps; n++ {
				c.fill(c.E[d], n, func(x [3]float64) float64 { return E[d](x) / 3 })
			}
		}
		return
	}
	for d := 0; d < 3; d++ {
		c.fill(c.E[d], 0, E[d])
	}
	if divE != nil {
		for n := 0; n < 2; n++ {
			c.fill(c.Rho, n, func(x [3]float64) float64 { return eps0 * divE(x) })
		}
	}
}

func (c *GaussLaw) initCylindrical() {
	var (
		A       = c.Amplitude
		geom    = c.Solver.Geometry().(FieldSolver.Cylindrical)
		ncomps  = geom.NComps()
		eps0    = FieldSolver.Epsilon0
		lengths = c.domainLengths()
		center  = [3]float64{geom.RMin, c.origin[1] + 0.5*lengths[1], 0}
		sigma   = [3]float64{lengths[0] / 4, lengths[1] / 8, 0}
		g       = func(x [3]float64) float64 { return utils.Gaussian(x, center, sigma) }
	)
	switch c.Case {
	case UNIFORM:
		c.fill(c.E[2], 0, constant(A))
	case POLYNOMIAL:
		// (1/r) d(r A r)/dr + d(A z^2)/dz = 2A (1 + z), exact for the Yee stencil
		c.fill(c.E[0], 0, func(x [3]float64) float64 { return A * x[0] })
		c.fill(c.E[2], 0, func(x [3]float64) float64 { return A * x[1] * x[1] })
		for _, shift := range []int{0, ncomps} {
			c.fill(c.Rho, shift, func(x [3]float64) float64 { return eps0 * 2 * A * (1 + x[1]) })
		}
	case GAUSSIAN:
		c.fill(c.E[0], 0, func(x [3]float64) float64 { return A * x[0] * g(x) })
		c.fill(c.E[2], 0, func(x [3]float64) float64 { return A * g(x) })
		if geom.NModes > 1 {
			// Mode 1 azimuthal field, couples into F through m Et / r
			c.fill(c.E[1], 1, func(x [3]float64) float64 { return A * g(x) })
			c.fill(c.E[1], 2, func(x [3]float64) float64 { return -A * g(x) })
		}
	}
}
