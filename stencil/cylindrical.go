package stencil

import "github.com/notargets/gofdtd/grid"

// CylindricalAlgorithm works on (r, z) patches: i is radial, j is axial and
// k is a singleton.
type CylindricalAlgorithm interface {
	// DownwardDrrOverR is (1/r) d(r F)/dr at the nodal radius r of cell i.
	// It is singular at r == 0 and must not be called there.
	DownwardDrrOverR(F grid.Array4, r, dr float64, coefs Coefs, i, j, k, n int) float64
	DownwardDz(F grid.Array4, coefs Coefs, i, j, k, n int) float64
}

type CylindricalYee struct{}

func (CylindricalYee) DownwardDrrOverR(F grid.Array4, r, dr float64, coefs Coefs, i, j, k, n int) float64 {
	var d float64
	for m, c := range coefs {
		h := (float64(m) + 0.5) * dr
		d += c * ((r+h)*F.At(i+m, j, k, n) - (r-h)*F.At(i-m-1, j, k, n))
	}
	return d / r
}

func (CylindricalYee) DownwardDz(F grid.Array4, coefs Coefs, i, j, k, n int) float64 {
	return staggered(F, coefs, i, j, k, n, 0, 1, 0)
}
