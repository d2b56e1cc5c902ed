package utils

import (
	"math"
)

// POW is x^pp; small integer powers are done by repeated squaring.
func POW(x float64, pp int) (y float64) {
	var (
		p = pp
	)
	if pp > 16 || pp < -16 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -p
	}
	y = 1
	for sq := x; p > 0; p >>= 1 {
		if p&1 == 1 {
			y *= sq
		}
		sq *= sq
	}
	if pp < 0 {
		y = 1. / y
	}
	return
}

// Gaussian is exp(-|x-x0|^2 / (2 sigma^2)) over the directions with a
// positive sigma.
func Gaussian(x, x0, sigma [3]float64) (g float64) {
	var (
		arg float64
	)
	for d := 0; d < 3; d++ {
		if sigma[d] > 0 {
			arg += POW((x[d]-x0[d])/sigma[d], 2)
		}
	}
	g = math.Exp(-0.5 * arg)
	return
}
