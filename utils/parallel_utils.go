package utils

import "sync"

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// GetBucket finds the partition holding index k, or -1 if k is out of range.
func (pm *PartitionMap) GetBucket(k int) (bucketNum, min, max int) {
	_, bucketNum, min, max = pm.getBucketWithTryCount(k)
	return
}

func (pm *PartitionMap) getBucketWithTryCount(k int) (tryCount, bucketNum, min, max int) {
	if k < 0 || k >= pm.MaxIndex {
		return 0, -1, 0, 0
	}
	// Initial guess
	bucketNum = int(float64(pm.ParallelDegree*k) / float64(pm.MaxIndex))
	for !(pm.Partitions[bucketNum][0] <= k && pm.Partitions[bucketNum][1] > k) {
		if pm.Partitions[bucketNum][0] > k {
			bucketNum--
		} else {
			bucketNum++
		}
		tryCount++
	}
	min, max = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	var (
		k1, k2 = pm.GetBucketRange(bn)
	)
	kMax = k2 - k1
	return
}

// Split1D splits [0, MaxIndex) into ParallelDegree pieces, with a maximum
// imbalance of one item
func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

// Run calls fn on every non empty bucket, one goroutine per bucket, and
// returns when all have finished.
func (pm *PartitionMap) Run(fn func(bn, kMin, kMax int)) {
	var (
		wg sync.WaitGroup
	)
	for bn := 0; bn < pm.ParallelDegree; bn++ {
		bn := bn
		kMin, kMax := pm.GetBucketRange(bn)
		if kMin == kMax {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(bn, kMin, kMax)
		}()
	}
	wg.Wait()
}
