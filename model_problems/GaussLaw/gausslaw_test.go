package GaussLaw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofdtd/FieldSolver"
	"github.com/notargets/gofdtd/InputParameters"
)

func newDeck(t *testing.T, yml string) *InputParameters.InputParametersFDTD {
	var ip InputParameters.InputParametersFDTD
	require.NoError(t, ip.Parse([]byte(yml)))
	return &ip
}

const cartesianDeck = `
Title: "Cartesian"
Algorithm: yee
CellSize: [0.1, 0.2, 0.25]
NCell: [8, 6, 4]
MaxGridSize: [4, 4, 4]
Dt: 1.e-3
Steps: 5
ParallelDegree: 2
Amplitude: 1.5
`

func TestGaussLawCartesian(t *testing.T) {
	{ // Uniform and polynomial fields satisfy Gauss's law discretely: F stays at zero
		for _, deck := range []string{
			cartesianDeck + "InitType: uniform\n",
			cartesianDeck + "InitType: polynomial\nStencilOrder: 2\n",
			cartesianDeck + "InitType: polynomial\nGridType: collocated\n",
			cartesianDeck + "InitType: Polynomial\nAlgorithm: ckc\nRhoTimeIndex: 1\n",
		} {
			c, err := NewGaussLaw(newDeck(t, deck), false)
			require.NoError(t, err)
			require.NoError(t, c.Run())
			l2, maxAbs := c.Norms()
			assert.Len(t, l2, 1)
			assert.InDelta(t, 0, maxAbs[0], 1.e-9, deck)
			assert.InDelta(t, 5.e-3, c.Time, 1.e-15)
		}
	}
	{ // A Gaussian pulse with no charge makes F grow linearly in time
		c, err := NewGaussLaw(newDeck(t, cartesianDeck+"InitType: gaussian\n"), true)
		require.NoError(t, err)
		require.NoError(t, c.Step())
		_, first := c.Norms()
		require.NoError(t, c.Step())
		_, second := c.Norms()
		assert.Greater(t, first[0], 0.)
		assert.InDelta(t, 2*first[0], second[0], 1.e-12)
	}
	{ // PML splits E over three components and F has one per direction
		c, err := NewGaussLaw(newDeck(t, cartesianDeck+"InitType: gaussian\nPML: true\n"), false)
		require.NoError(t, err)
		assert.Equal(t, FieldSolver.PMLNComps, c.F.NComp)
		require.NoError(t, c.Run())
		l2, maxAbs := c.Norms()
		assert.Len(t, l2, FieldSolver.PMLNComps)
		for n := range maxAbs {
			assert.Greater(t, maxAbs[n], 0.)
		}
	}
	{ // Algorithms without a kernel are reported by the first step
		for _, algo := range []string{"psatd", "ect", "none"} {
			c, err := NewGaussLaw(newDeck(t, cartesianDeck+"InitType: uniform\nAlgorithm: "+algo+"\n"), false)
			require.NoError(t, err)
			err = c.Run()
			assert.True(t, errors.Is(err, FieldSolver.ErrUnknownAlgorithm), algo)
			assert.Zero(t, c.Time)
		}
	}
	{ // Input errors
		_, err := NewGaussLaw(newDeck(t, cartesianDeck+"InitType: vortex\n"), false)
		assert.Error(t, err)
		_, err = NewGaussLaw(newDeck(t, cartesianDeck), false)
		assert.Error(t, err)
		_, err = NewGaussLaw(newDeck(t, "InitType: uniform\nAlgorithm: yee\nCellSize: [0, 1, 1]\n"), false)
		assert.Error(t, err)
	}
}

const cylindricalDeck = `
Title: "RZ"
Geometry: cylindrical
Algorithm: yee
CellSize: [0.05, 0.1]
NCell: [8, 6]
MaxGridSize: [4, 3]
NModes: 2
Dt: 1.e-2
Steps: 3
Amplitude: 2
`

func TestGaussLawCylindrical(t *testing.T) {
	{ // Fields built to satisfy Gauss's law, including on the axis
		for _, init := range []string{"uniform", "polynomial"} {
			c, err := NewGaussLaw(newDeck(t, cylindricalDeck+"InitType: "+init+"\n"), false)
			require.NoError(t, err)
			assert.Equal(t, 3, c.F.NComp)
			assert.Equal(t, 6, c.Rho.NComp)
			require.NoError(t, c.Run())
			_, maxAbs := c.Norms()
			for n := range maxAbs {
				assert.InDelta(t, 0, maxAbs[n], 1.e-9, "%s comp %d", init, n)
			}
		}
	}
	{ // The Gaussian drives mode 0 and, through Et, mode 1
		c, err := NewGaussLaw(newDeck(t, cylindricalDeck+"InitType: gaussian\n"), false)
		require.NoError(t, err)
		require.NoError(t, c.Run())
		_, maxAbs := c.Norms()
		for n := range maxAbs {
			assert.Greater(t, maxAbs[n], 0.)
		}
	}
	{ // Fatal configurations
		c, err := NewGaussLaw(newDeck(t, cylindricalDeck+"InitType: uniform\nPML: true\n"), false)
		require.NoError(t, err)
		assert.True(t, errors.Is(c.Run(), FieldSolver.ErrPMLNotSupported))
		c, err = NewGaussLaw(newDeck(t, cylindricalDeck+"InitType: uniform\nAlgorithm: ckc\n"), false)
		require.NoError(t, err)
		assert.True(t, errors.Is(c.Run(), FieldSolver.ErrUnknownAlgorithm))
		_, err = NewGaussLaw(newDeck(t, "Geometry: rz\nAlgorithm: yee\nInitType: uniform\nCellSize: [1, 1]\nNModes: 1\nNCell: [4, 0]\n"), false)
		assert.Error(t, err)
	}
}

func TestInitType(t *testing.T) {
	it, err := NewInitType("Gaussian")
	require.NoError(t, err)
	assert.Equal(t, GAUSSIAN, it)
	assert.Equal(t, "Gaussian E pulse, no charge", it.Print())
	_, err = NewInitType("")
	assert.Error(t, err)
}
