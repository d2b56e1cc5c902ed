package utils

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Buckets cover the index range with an imbalance of at most one
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 12)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1]))
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Bucket lookup lands within one probe of the guess
		for maxIndex := 10; maxIndex < 500; maxIndex++ {
			pm := NewPartitionMap(5, maxIndex)
			for k := 0; k < maxIndex; k++ {
				tryCount, bn, min, max := pm.getBucketWithTryCount(k)
				mmin, mmax := pm.GetBucketRange(bn)
				assert.True(t, k >= min && k < max && min == mmin && max == mmax && tryCount <= 1)
			}
		}
		pm := NewPartitionMap(4, 10)
		bn, _, _ := pm.GetBucket(10)
		assert.Equal(t, -1, bn)
		bn, _, _ = pm.GetBucket(-1)
		assert.Equal(t, -1, bn)
		assert.Equal(t, 1, NewPartitionMap(0, 10).ParallelDegree)
	}
	{ // Run visits every index once and skips empty buckets
		for _, np := range []int{1, 3, 8, 40} {
			var (
				pm     = NewPartitionMap(np, 17)
				visits = make([]int32, 17)
				calls  int32
			)
			pm.Run(func(bn, kMin, kMax int) {
				atomic.AddInt32(&calls, 1)
				for k := kMin; k < kMax; k++ {
					atomic.AddInt32(&visits[k], 1)
				}
			})
			for k := range visits {
				assert.Equal(t, int32(1), visits[k])
			}
			assert.Equal(t, int32(min(np, 17)), calls)
		}
	}
}

func TestMath(t *testing.T) {
	for p := -20; p <= 20; p++ {
		assert.InDelta(t, math.Pow(1.3, float64(p)), POW(1.3, p), 1.e-9*math.Pow(1.3, math.Abs(float64(p))), "p = %d", p)
	}
	assert.Equal(t, 1., POW(0, 0))
	assert.Equal(t, 1., Gaussian([3]float64{1, 2, 3}, [3]float64{1, 2, 3}, [3]float64{1, 1, 1}))
	assert.InDelta(t, math.Exp(-0.5), Gaussian([3]float64{2, 9, 0}, [3]float64{1, 0, 0}, [3]float64{1, 0, 0}), 1.e-15)
	assert.True(t, IsNan([]float64{0, math.NaN()}))
	assert.True(t, IsNan([][]float64{{1}, {math.NaN()}}))
	assert.False(t, IsNan([]float64{1, math.Inf(1)}))
	assert.False(t, IsNan("NaN"))
	assert.NotEmpty(t, GetMemUsage())
}
