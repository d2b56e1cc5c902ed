package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// FArrayBox owns the storage of one patch, ghost cells included.
type FArrayBox struct {
	Box   Box // grown box covering ghost cells
	NComp int
	Data  []float64
}

func NewFArrayBox(box Box, ncomp int) *FArrayBox {
	return &FArrayBox{
		Box:   box,
		NComp: ncomp,
		Data:  make([]float64, box.NumPts()*ncomp),
	}
}

func (fab *FArrayBox) Array() Array4 {
	return NewArray4(fab.Data, fab.Box, fab.NComp)
}

// MultiFab is a multi-component field distributed over the patches of a
// BoxArray. The BoxArray is cell centered; IxType converts it to the valid
// region of this field.
type MultiFab struct {
	BA     BoxArray
	IxType IndexType
	NComp  int
	NGhost IntVect
	fabs   []*FArrayBox
}

func NewMultiFab(ba BoxArray, ixType IndexType, ncomp int, ngrow IntVect) (mf *MultiFab) {
	if ncomp < 1 {
		panic(fmt.Sprintf("MultiFab needs at least one component, got %d", ncomp))
	}
	mf = &MultiFab{
		BA:     ba,
		IxType: ixType,
		NComp:  ncomp,
		NGhost: ngrow,
		fabs:   make([]*FArrayBox, len(ba)),
	}
	for p := range ba {
		mf.fabs[p] = NewFArrayBox(mf.GrownBox(p), ncomp)
	}
	return
}

func (mf *MultiFab) NumPatches() int { return len(mf.BA) }

// ValidBox is the region owned by patch p, the "tilebox" of the field.
func (mf *MultiFab) ValidBox(p int) Box {
	return mf.BA[p].Convert(mf.IxType)
}

func (mf *MultiFab) GrownBox(p int) Box {
	return mf.ValidBox(p).Grow(mf.NGhost)
}

func (mf *MultiFab) Fab(p int) *FArrayBox { return mf.fabs[p] }

func (mf *MultiFab) Array(p int) Array4 { return mf.fabs[p].Array() }

func (mf *MultiFab) SetVal(val float64) {
	for _, fab := range mf.fabs {
		for i := range fab.Data {
			fab.Data[i] = val
		}
	}
}

// Fill evaluates fn over every cell of every patch, ghost cells included,
// for component comp.
func (mf *MultiFab) Fill(comp int, fn func(i, j, k int) float64) {
	for p := range mf.fabs {
		var (
			a   = mf.Array(p)
			box = mf.GrownBox(p)
		)
		for k := box.Lo[2]; k <= box.Hi[2]; k++ {
			for j := box.Lo[1]; j <= box.Hi[1]; j++ {
				for i := box.Lo[0]; i <= box.Hi[0]; i++ {
					a.Set(i, j, k, comp, fn(i, j, k))
				}
			}
		}
	}
}

// Clone returns a deep copy with identical layout.
func (mf *MultiFab) Clone() (c *MultiFab) {
	c = NewMultiFab(mf.BA, mf.IxType, mf.NComp, mf.NGhost)
	for p, fab := range mf.fabs {
		copy(c.fabs[p].Data, fab.Data)
	}
	return
}

// ValidValues gathers component comp over the valid region of all patches.
func (mf *MultiFab) ValidValues(comp int) (vals []float64) {
	for p := range mf.fabs {
		var (
			a   = mf.Array(p)
			box = mf.ValidBox(p)
		)
		for k := box.Lo[2]; k <= box.Hi[2]; k++ {
			for j := box.Lo[1]; j <= box.Hi[1]; j++ {
				for i := box.Lo[0]; i <= box.Hi[0]; i++ {
					vals = append(vals, a.At(i, j, k, comp))
				}
			}
		}
	}
	return
}

func (mf *MultiFab) Norm2(comp int) float64 {
	return floats.Norm(mf.ValidValues(comp), 2)
}

func (mf *MultiFab) MaxAbs(comp int) float64 {
	vals := mf.ValidValues(comp)
	if len(vals) == 0 {
		return 0
	}
	return floats.Norm(vals, math.Inf(1))
}

// Equal reports whether both fields hold bitwise identical data, ghosts
// included.
func (mf *MultiFab) Equal(other *MultiFab) bool {
	if len(mf.fabs) != len(other.fabs) {
		return false
	}
	for p, fab := range mf.fabs {
		if !floats.Equal(fab.Data, other.fabs[p].Data) {
			return false
		}
	}
	return true
}
