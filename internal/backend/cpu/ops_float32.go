package cpu

import (
	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

// Float32 squared-difference kernels.
// Subtraction and squaring follow IEEE 754 arithmetic; NaN and Inf propagate.

func sqdiffFloat32(dst, a, b []float32, plan *tensor.BroadcastPlan, cfg parallel.Config) {
	if plan.Identity() {
		sqdiffVectorizedFloat32(dst, a, b, cfg)
		return
	}
	sqdiffBroadcastFloat32(dst, a, b, plan, cfg)
}

func sqdiffVectorizedFloat32(dst, a, b []float32, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			d := a[i] - b[i]
			dst[i] = d * d
		}
	}, cfg)
}

func sqdiffBroadcastFloat32(dst, a, b []float32, plan *tensor.BroadcastPlan, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi := plan.SourceIndices(i)
			d := a[ai] - b[bi]
			dst[i] = d * d
		}
	}, cfg)
}
