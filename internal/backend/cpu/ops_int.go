package cpu

import (
	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

// Integer squared-difference kernels.
//
// Subtraction and squaring use Go's native fixed-width arithmetic, so a large
// difference wraps around two's-complement on squaring. Wraparound is the
// defined behavior, not an error.

func sqdiffInt32(dst, a, b []int32, plan *tensor.BroadcastPlan, cfg parallel.Config) {
	if plan.Identity() {
		sqdiffVectorizedInt32(dst, a, b, cfg)
		return
	}
	sqdiffBroadcastInt32(dst, a, b, plan, cfg)
}

func sqdiffVectorizedInt32(dst, a, b []int32, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			d := a[i] - b[i]
			dst[i] = d * d
		}
	}, cfg)
}

func sqdiffBroadcastInt32(dst, a, b []int32, plan *tensor.BroadcastPlan, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi := plan.SourceIndices(i)
			d := a[ai] - b[bi]
			dst[i] = d * d
		}
	}, cfg)
}

func sqdiffInt64(dst, a, b []int64, plan *tensor.BroadcastPlan, cfg parallel.Config) {
	if plan.Identity() {
		sqdiffVectorizedInt64(dst, a, b, cfg)
		return
	}
	sqdiffBroadcastInt64(dst, a, b, plan, cfg)
}

func sqdiffVectorizedInt64(dst, a, b []int64, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			d := a[i] - b[i]
			dst[i] = d * d
		}
	}, cfg)
}

func sqdiffBroadcastInt64(dst, a, b []int64, plan *tensor.BroadcastPlan, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi := plan.SourceIndices(i)
			d := a[ai] - b[bi]
			dst[i] = d * d
		}
	}, cfg)
}
