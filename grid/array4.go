package grid

// Array4 is a view of one patch of a MultiFab, addressed with absolute
// (i, j, k) cell indices and a component index. Accessors do not check
// bounds beyond what the backing slice enforces.
type Array4 struct {
	data                      []float64
	lo                        IntVect
	jStride, kStride, nStride int
	NComp                     int
}

func NewArray4(data []float64, box Box, ncomp int) Array4 {
	var (
		nx, ny, nz = box.Length(0), box.Length(1), box.Length(2)
	)
	return Array4{
		data:    data,
		lo:      box.Lo,
		jStride: nx,
		kStride: nx * ny,
		nStride: nx * ny * nz,
		NComp:   ncomp,
	}
}

func (a Array4) index(i, j, k, n int) int {
	return (i - a.lo[0]) + a.jStride*(j-a.lo[1]) + a.kStride*(k-a.lo[2]) + a.nStride*n
}

func (a Array4) At(i, j, k, n int) float64 {
	return a.data[a.index(i, j, k, n)]
}

func (a Array4) Set(i, j, k, n int, val float64) {
	a.data[a.index(i, j, k, n)] = val
}

func (a Array4) Add(i, j, k, n int, val float64) {
	a.data[a.index(i, j, k, n)] += val
}
