package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gofdtd/FieldSolver"
	"github.com/notargets/gofdtd/types"
)

// Parameters obtained from the YAML input file
type InputParametersFDTD struct {
	Title          string     `yaml:"Title"`
	Geometry       string     `yaml:"Geometry"`  // cartesian, cylindrical
	GridType       string     `yaml:"GridType"`  // staggered, collocated, hybrid
	Algorithm      string     `yaml:"Algorithm"` // yee, ckc, psatd, ect
	StencilOrder   int        `yaml:"StencilOrder"`
	CellSize       [3]float64 `yaml:"CellSize"` // dx, dy, dz or dr, dz
	NCell          [3]int     `yaml:"NCell"`
	MaxGridSize    [3]int     `yaml:"MaxGridSize"`
	RMin           float64    `yaml:"RMin"`
	NModes         int        `yaml:"NModes"`
	Dt             float64    `yaml:"Dt"`
	Steps          int        `yaml:"Steps"`
	ParallelDegree int        `yaml:"ParallelDegree"`
	PML            bool       `yaml:"PML"`
	InitType       string     `yaml:"InitType"` // uniform, polynomial, gaussian
	Amplitude      float64    `yaml:"Amplitude"`
	RhoTimeIndex   int        `yaml:"RhoTimeIndex"` // 0 = old charge, 1 = new
}

func (ip *InputParametersFDTD) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	if ip.Geometry == "" {
		ip.Geometry = "cartesian"
	}
	if ip.GridType == "" {
		ip.GridType = "staggered"
	}
	if ip.Steps < 0 {
		return fmt.Errorf("Steps must be non negative, have %d", ip.Steps)
	}
	if ip.RhoTimeIndex != 0 && ip.RhoTimeIndex != 1 {
		return fmt.Errorf("RhoTimeIndex must be 0 or 1, have %d", ip.RhoTimeIndex)
	}
	return
}

func (ip *InputParametersFDTD) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Geometry\n", ip.Geometry)
	fmt.Printf("[%s]\t\t= Grid Type\n", ip.GridType)
	fmt.Printf("[%s]\t\t\t= Algorithm\n", ip.Algorithm)
	fmt.Printf("[%d]\t\t\t\t= Stencil Order\n", ip.StencilOrder)
	fmt.Printf("%v\t= Cell Size\n", ip.CellSize)
	fmt.Printf("%v\t\t= Cells, Max Grid Size %v\n", ip.NCell, ip.MaxGridSize)
	if g, err := types.NewGeometryType(ip.Geometry); err == nil && g == types.GeomCylindrical {
		fmt.Printf("%8.5f\t\t= RMin\n", ip.RMin)
		fmt.Printf("[%d]\t\t\t\t= Azimuthal Modes\n", ip.NModes)
	}
	fmt.Printf("%8.5g\t\t= Dt\n", ip.Dt)
	fmt.Printf("[%d]\t\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("[%s]\t= InitType, Amplitude = %g\n", ip.InitType, ip.Amplitude)
	fmt.Printf("PML = %v, RhoTimeIndex = %d, ParallelDegree = %d\n", ip.PML, ip.RhoTimeIndex, ip.ParallelDegree)
}

// SolverConfig translates the deck's labels into a solver configuration.
// Any label that does not parse is an error; an algorithm that parses but
// has no kernel for the geometry is left for the solver to reject.
func (ip *InputParametersFDTD) SolverConfig() (cfg FieldSolver.Config, err error) {
	var (
		geom types.GeometryType
	)
	if geom, err = types.NewGeometryType(ip.Geometry); err != nil {
		return
	}
	if cfg.GridType, err = types.NewGridType(ip.GridType); err != nil {
		return
	}
	if cfg.Algo, err = types.NewElectromagneticSolverAlgo(ip.Algorithm); err != nil {
		return
	}
	switch geom {
	case types.GeomCartesian:
		cfg.Geometry = FieldSolver.Cartesian{CellSize: ip.CellSize}
	case types.GeomCylindrical:
		cfg.Geometry = FieldSolver.Cylindrical{
			Dr:     ip.CellSize[0],
			Dz:     ip.CellSize[1],
			RMin:   ip.RMin,
			NModes: ip.NModes,
		}
	}
	cfg.StencilOrder = ip.StencilOrder
	cfg.ParallelDegree = ip.ParallelDegree
	return
}
