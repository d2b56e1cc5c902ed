package grid

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox(t *testing.T) {
	{ // Sizes and conversion to nodal index space
		b := NewBox(IntVect{0, 0, 0}, IntVect{3, 4, 0})
		assert.Equal(t, 20, b.NumPts())
		assert.Equal(t, 5, b.Length(1))
		n := b.Convert(IndexType{true, false, false})
		assert.Equal(t, IntVect{4, 4, 0}, n.Hi)
		assert.Equal(t, 25, n.NumPts())
		g := b.Grow(IntVect{2, 1, 0})
		assert.Equal(t, IntVect{-2, -1, 0}, g.Lo)
		assert.Equal(t, IntVect{5, 5, 0}, g.Hi)
		assert.True(t, g.Contains(-2, 5, 0))
		assert.False(t, b.Contains(-1, 0, 0))
		assert.Equal(t, 0, NewBox(IntVect{1, 1, 1}, IntVect{0, 1, 1}).NumPts())
	}
	{ // Chopping a domain into patches covers it exactly once
		domain := NewBox(IntVect{0, 0, 0}, IntVect{9, 6, 3})
		ba := NewBoxArray(domain, IntVect{4, 4, 0})
		assert.Len(t, ba, 6)
		assert.Equal(t, domain.NumPts(), ba.NumPts())
		assert.Equal(t, NewBox(IntVect{8, 4, 0}, IntVect{9, 6, 3}), ba[5])
	}
}

func TestMultiFab(t *testing.T) {
	var (
		domain = NewBox(IntVect{0, 0, 0}, IntVect{3, 3, 3})
		ba     = NewBoxArray(domain, IntVect{2, 2, 2})
	)
	mf := NewMultiFab(ba, NodalType(), 2, IntVect{1, 1, 1})
	assert.Equal(t, 8, mf.NumPatches())
	assert.Equal(t, NewBox(IntVect{2, 2, 2}, IntVect{4, 4, 4}), mf.ValidBox(7))
	assert.Equal(t, NewBox(IntVect{1, 1, 1}, IntVect{5, 5, 5}), mf.GrownBox(7))
	assert.Len(t, mf.Fab(0).Data, 5*5*5*2)

	mf.Fill(1, func(i, j, k int) float64 { return float64(i + 10*j + 100*k) })
	a := mf.Array(7)
	assert.Equal(t, 543., a.At(3, 4, 5, 1))
	assert.Equal(t, 0., a.At(3, 4, 5, 0))
	a.Add(3, 4, 5, 0, 2.5)
	a.Set(3, 4, 5, 1, -1)
	assert.Equal(t, 2.5, mf.Array(7).At(3, 4, 5, 0))
	assert.Equal(t, -1., mf.Array(7).At(3, 4, 5, 1))

	c := mf.Clone()
	assert.True(t, c.Equal(mf))
	c.Array(0).Add(0, 0, 0, 0, 1)
	assert.False(t, c.Equal(mf))

	mf.SetVal(-2)
	// 8 patches of 3^3 nodal points each
	assert.Len(t, mf.ValidValues(0), 8*27)
	assert.Equal(t, 2., mf.MaxAbs(0))
	assert.InDelta(t, 2*math.Sqrt(8*27), mf.Norm2(0), 1.e-12)

	assert.Panics(t, func() { NewMultiFab(ba, CellType(), 0, IntVect{}) })
}

func TestParallelExecution(t *testing.T) {
	{ // Every patch visited once, for any worker count
		ba := NewBoxArray(NewBox(IntVect{0, 0, 0}, IntVect{15, 15, 0}), IntVect{4, 4, 1})
		mf := NewMultiFab(ba, CellType(), 1, IntVect{})
		for _, np := range []int{0, 1, 3, 16, 64} {
			visits := make([]int32, mf.NumPatches())
			ForEachPatch(mf, np, func(p int) { atomic.AddInt32(&visits[p], 1) })
			for p := range visits {
				assert.Equal(t, int32(1), visits[p], "np = %d, patch %d", np, p)
			}
		}
	}
	{ // Every cell visited once, below and above the split threshold
		for _, b := range []Box{
			NewBox(IntVect{-1, 0, 2}, IntVect{6, 3, 4}),
			NewBox(IntVect{0, 0, 0}, IntVect{63, 63, 7}),
			NewBox(IntVect{0, 0, 0}, IntVect{255, 255, 0}),
		} {
			fab := NewFArrayBox(b, 1)
			a := fab.Array()
			var count int64
			ParallelFor(b, func(i, j, k int) {
				a.Add(i, j, k, 0, 1)
				atomic.AddInt64(&count, 1)
			})
			assert.Equal(t, int64(b.NumPts()), count)
			for _, v := range fab.Data {
				assert.Equal(t, 1., v)
			}
		}
		var calls int
		ParallelFor(NewBox(IntVect{1, 0, 0}, IntVect{0, 0, 0}), func(i, j, k int) { calls++ })
		assert.Zero(t, calls)
	}
}

func TestIndexTypePosition(t *testing.T) {
	var (
		origin   = [3]float64{1, 0, -1}
		cellSize = [3]float64{0.5, 0.25, 2}
	)
	assert.Equal(t, [3]float64{2, 0.5, 3}, NodalType().Position(origin, cellSize, 2, 2, 2))
	assert.Equal(t, [3]float64{2.25, 0.625, 4}, CellType().Position(origin, cellSize, 2, 2, 2))
	assert.Equal(t, [3]float64{1.25, 0, -1}, IndexType{false, true, true}.Position(origin, cellSize, 0, 0, 0))
}
