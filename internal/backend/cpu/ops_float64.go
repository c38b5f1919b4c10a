package cpu

import (
	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

// Float64 squared-difference kernels.

func sqdiffFloat64(dst, a, b []float64, plan *tensor.BroadcastPlan, cfg parallel.Config) {
	if plan.Identity() {
		sqdiffVectorizedFloat64(dst, a, b, cfg)
		return
	}
	sqdiffBroadcastFloat64(dst, a, b, plan, cfg)
}

func sqdiffVectorizedFloat64(dst, a, b []float64, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			d := a[i] - b[i]
			dst[i] = d * d
		}
	}, cfg)
}

func sqdiffBroadcastFloat64(dst, a, b []float64, plan *tensor.BroadcastPlan, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi := plan.SourceIndices(i)
			d := a[ai] - b[bi]
			dst[i] = d * d
		}
	}, cfg)
}
