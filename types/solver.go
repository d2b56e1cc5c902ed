package types

import (
	"fmt"
	"strings"
)

type GridType uint8

const (
	Staggered GridType = iota
	Collocated
	Hybrid
)

var GridTypeNameMap = map[string]GridType{
	"staggered":  Staggered,
	"yee":        Staggered,
	"collocated": Collocated,
	"nodal":      Collocated,
	"hybrid":     Hybrid,
}

var gridTypeNames = []string{"Staggered", "Collocated", "Hybrid"}

func (gt GridType) String() string {
	if int(gt) < len(gridTypeNames) {
		return gridTypeNames[gt]
	}
	return fmt.Sprintf("GridType(%d)", gt)
}

func NewGridType(label string) (gt GridType, err error) {
	var ok bool
	if gt, ok = GridTypeNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown grid type: %q", label)
	}
	return
}

// ElectromagneticSolverAlgo selects the field solver family. Only Yee and
// CKC have finite difference kernels; the remaining values exist so that an
// input deck naming them is parsed and then rejected by the dispatcher.
type ElectromagneticSolverAlgo uint8

const (
	AlgoNone ElectromagneticSolverAlgo = iota
	AlgoYee
	AlgoCKC
	AlgoPSATD
	AlgoECT
)

var AlgoNameMap = map[string]ElectromagneticSolverAlgo{
	"none":  AlgoNone,
	"yee":   AlgoYee,
	"ckc":   AlgoCKC,
	"psatd": AlgoPSATD,
	"ect":   AlgoECT,
}

var algoNames = []string{"None", "Yee", "CKC", "PSATD", "ECT"}

func (a ElectromagneticSolverAlgo) String() string {
	if int(a) < len(algoNames) {
		return algoNames[a]
	}
	return fmt.Sprintf("ElectromagneticSolverAlgo(%d)", a)
}

func NewElectromagneticSolverAlgo(label string) (a ElectromagneticSolverAlgo, err error) {
	var ok bool
	if a, ok = AlgoNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown electromagnetic solver algorithm: %q", label)
	}
	return
}

type GeometryType uint8

const (
	GeomCartesian GeometryType = iota
	GeomCylindrical
)

var GeometryNameMap = map[string]GeometryType{
	"cartesian":   GeomCartesian,
	"3d":          GeomCartesian,
	"cylindrical": GeomCylindrical,
	"rz":          GeomCylindrical,
}

func (g GeometryType) String() string {
	switch g {
	case GeomCartesian:
		return "Cartesian"
	case GeomCylindrical:
		return "Cylindrical"
	}
	return fmt.Sprintf("GeometryType(%d)", g)
}

func NewGeometryType(label string) (g GeometryType, err error) {
	var ok bool
	if g, ok = GeometryNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown geometry: %q", label)
	}
	return
}
