package grid

import "fmt"

type IntVect [3]int

func (iv IntVect) Add(other IntVect) IntVect {
	return IntVect{iv[0] + other[0], iv[1] + other[1], iv[2] + other[2]}
}

// IndexType marks each direction as nodal (true) or cell centered (false).
type IndexType [3]bool

func CellType() IndexType  { return IndexType{false, false, false} }
func NodalType() IndexType { return IndexType{true, true, true} }

func (ix IndexType) ToIntVect() (iv IntVect) {
	for d := 0; d < 3; d++ {
		if ix[d] {
			iv[d] = 1
		}
	}
	return
}

// Position is the physical location of point (i, j, k) of a field with this
// index type: nodal directions sit on cell corners, the others mid cell.
func (ix IndexType) Position(origin, cellSize [3]float64, i, j, k int) (x [3]float64) {
	idx := [3]int{i, j, k}
	for d := 0; d < 3; d++ {
		x[d] = origin[d] + float64(idx[d])*cellSize[d]
		if !ix[d] {
			x[d] += 0.5 * cellSize[d]
		}
	}
	return
}

// Box is an index space with inclusive lower and upper corners.
type Box struct {
	Lo, Hi IntVect
}

func NewBox(lo, hi IntVect) Box {
	return Box{Lo: lo, Hi: hi}
}

func (b Box) Length(dir int) int {
	return b.Hi[dir] - b.Lo[dir] + 1
}

func (b Box) NumPts() int {
	if !b.Ok() {
		return 0
	}
	return b.Length(0) * b.Length(1) * b.Length(2)
}

func (b Box) Ok() bool {
	return b.Hi[0] >= b.Lo[0] && b.Hi[1] >= b.Lo[1] && b.Hi[2] >= b.Lo[2]
}

func (b Box) Contains(i, j, k int) bool {
	return i >= b.Lo[0] && i <= b.Hi[0] &&
		j >= b.Lo[1] && j <= b.Hi[1] &&
		k >= b.Lo[2] && k <= b.Hi[2]
}

func (b Box) Grow(ng IntVect) Box {
	return Box{
		Lo: IntVect{b.Lo[0] - ng[0], b.Lo[1] - ng[1], b.Lo[2] - ng[2]},
		Hi: IntVect{b.Hi[0] + ng[0], b.Hi[1] + ng[1], b.Hi[2] + ng[2]},
	}
}

// Convert turns a cell centered box into the box of the given index type:
// nodal directions gain one point on the high side.
func (b Box) Convert(ix IndexType) Box {
	return Box{Lo: b.Lo, Hi: b.Hi.Add(ix.ToIntVect())}
}

func (b Box) String() string {
	return fmt.Sprintf("[%v, %v]", b.Lo, b.Hi)
}

type BoxArray []Box

// NewBoxArray chops the domain into patches no larger than maxGridSize in
// each direction. A non positive maxGridSize leaves that direction unchopped.
func NewBoxArray(domain Box, maxGridSize IntVect) (ba BoxArray) {
	var (
		starts [3][]int
	)
	for d := 0; d < 3; d++ {
		size := maxGridSize[d]
		if size <= 0 {
			size = domain.Length(d)
		}
		for lo := domain.Lo[d]; lo <= domain.Hi[d]; lo += size {
			starts[d] = append(starts[d], lo)
		}
	}
	hiOf := func(d, lo int) int {
		size := maxGridSize[d]
		if size <= 0 {
			size = domain.Length(d)
		}
		return min(lo+size-1, domain.Hi[d])
	}
	for _, k := range starts[2] {
		for _, j := range starts[1] {
			for _, i := range starts[0] {
				ba = append(ba, Box{
					Lo: IntVect{i, j, k},
					Hi: IntVect{hiOf(0, i), hiOf(1, j), hiOf(2, k)},
				})
			}
		}
	}
	return
}

func (ba BoxArray) NumPts() (n int) {
	for _, b := range ba {
		n += b.NumPts()
	}
	return
}
