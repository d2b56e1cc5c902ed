package grid

import (
	"runtime"

	"github.com/exascience/pargo/parallel"

	"github.com/notargets/gofdtd/utils"
)

// Patches with at least this many points are split across goroutines by
// ParallelFor.
const ParallelForThreshold = 1 << 14

// ForEachPatch calls fn once per patch of mf. Patches are bucketed over
// parallelDegree workers; zero means one worker per CPU.
func ForEachPatch(mf *MultiFab, parallelDegree int, fn func(p int)) {
	var (
		nPatches = mf.NumPatches()
	)
	if parallelDegree == 0 {
		parallelDegree = runtime.NumCPU()
	}
	if parallelDegree > nPatches {
		parallelDegree = nPatches
	}
	if parallelDegree <= 1 {
		for p := 0; p < nPatches; p++ {
			fn(p)
		}
		return
	}
	utils.NewPartitionMap(parallelDegree, nPatches).Run(func(_, pMin, pMax int) {
		for p := pMin; p < pMax; p++ {
			fn(p)
		}
	})
}

// ParallelFor calls fn for every (i, j, k) of box. The body must be safe to
// run for any subset of cells concurrently and in any order.
func ParallelFor(box Box, fn func(i, j, k int)) {
	if !box.Ok() {
		return
	}
	if box.NumPts() < ParallelForThreshold {
		forRange(box, fn)
		return
	}
	// Split along the outermost direction that is not a singleton
	dir := 2
	for dir > 0 && box.Length(dir) == 1 {
		dir--
	}
	parallel.Range(box.Lo[dir], box.Hi[dir]+1, 0, func(low, high int) {
		sub := box
		sub.Lo[dir], sub.Hi[dir] = low, high-1
		forRange(sub, fn)
	})
}

func forRange(box Box, fn func(i, j, k int)) {
	for k := box.Lo[2]; k <= box.Hi[2]; k++ {
		for j := box.Lo[1]; j <= box.Hi[1]; j++ {
			for i := box.Lo[0]; i <= box.Hi[0]; i++ {
				fn(i, j, k)
			}
		}
	}
}
