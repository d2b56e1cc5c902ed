package stencil

import "github.com/notargets/gofdtd/grid"

// CartesianAlgorithm is the set of downward derivatives a Cartesian kernel
// needs. Implementations are stateless, so a zero value is ready to use and
// safe to share between goroutines.
type CartesianAlgorithm interface {
	DownwardDx(F grid.Array4, coefs Coefs, i, j, k, n int) float64
	DownwardDy(F grid.Array4, coefs Coefs, i, j, k, n int) float64
	DownwardDz(F grid.Array4, coefs Coefs, i, j, k, n int) float64
}

// CartesianYee differentiates a field staggered half a cell from the nodal
// output point: F(i) sits at x_i + dx/2.
type CartesianYee struct{}

func (CartesianYee) DownwardDx(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return staggered(F, coefs, i, j, k, n, 1, 0, 0)
}

func (CartesianYee) DownwardDy(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return staggered(F, coefs, i, j, k, n, 0, 1, 0)
}

func (CartesianYee) DownwardDz(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return staggered(F, coefs, i, j, k, n, 0, 0, 1)
}

// CartesianCKC shares the Yee downward operator. The CKC table carries the
// transverse curl weights after entry 0, which are not used here.
type CartesianCKC struct{}

func (CartesianCKC) DownwardDx(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return coefs[0] * (F.At(i, j, k, n) - F.At(i-1, j, k, n))
}

func (CartesianCKC) DownwardDy(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return coefs[0] * (F.At(i, j, k, n) - F.At(i, j-1, k, n))
}

func (CartesianCKC) DownwardDz(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return coefs[0] * (F.At(i, j, k, n) - F.At(i, j, k-1, n))
}

// CartesianNodal is the centered difference used on collocated grids.
type CartesianNodal struct{}

func (CartesianNodal) DownwardDx(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return centered(F, coefs, i, j, k, n, 1, 0, 0)
}

func (CartesianNodal) DownwardDy(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return centered(F, coefs, i, j, k, n, 0, 1, 0)
}

func (CartesianNodal) DownwardDz(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return centered(F, coefs, i, j, k, n, 0, 0, 1)
}

// staggered reads len(coefs) points on each side: i..i+m above and
// i-1..i-1-m below along (di, dj, dk).
func staggered(F grid.Array4, coefs Coefs, i, j, k, n, di, dj, dk int) (d float64) {
	for m, c := range coefs {
		d += c * (F.At(i+m*di, j+m*dj, k+m*dk, n) -
			F.At(i-(m+1)*di, j-(m+1)*dj, k-(m+1)*dk, n))
	}
	return
}

func centered(F grid.Array4, coefs Coefs, i, j, k, n, di, dj, dk int) (d float64) {
	for m, c := range coefs {
		d += c * (F.At(i+(m+1)*di, j+(m+1)*dj, k+(m+1)*dk, n) -
			F.At(i-(m+1)*di, j-(m+1)*dj, k-(m+1)*dk, n))
	}
	return 0.5 * d
}
