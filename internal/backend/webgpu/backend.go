//go:build windows

// Package webgpu implements the WebGPU backend for GPU-accelerated tensor kernels.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/stride-ml/stride/internal/tensor"
)

// Backend implements tensor operations on GPU using WebGPU.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex
}

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available or initialization fails.
func New() (backend *Backend, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance, instanceErr := wgpu.CreateInstance(nil)
	if instanceErr != nil {
		return nil, fmt.Errorf("webgpu: failed to create instance: %w", instanceErr)
	}
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &Backend{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
	}, nil
}

// IsAvailable checks if WebGPU is available on the current system.
func IsAvailable() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// Release frees all GPU resources held by the backend.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, p := range b.pipelines {
		p.Release()
	}
	for _, s := range b.shaders {
		s.Release()
	}
	b.pipelines = make(map[string]*wgpu.ComputePipeline)
	b.shaders = make(map[string]*wgpu.ShaderModule)

	b.device.Release()
	b.adapter.Release()
	b.instance.Release()
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// SquaredDifference computes (a-b)^2 element-wise on GPU.
// Panics on failure; use SquaredDifferenceGPU for a recoverable error.
func (b *Backend) SquaredDifference(a, other *tensor.RawTensor) *tensor.RawTensor {
	result, err := b.SquaredDifferenceGPU(a, other)
	if err != nil {
		panic(fmt.Sprintf("webgpu: SquaredDifference: %v", err))
	}
	return result
}

// SquaredDifferenceGPU computes (a-b)^2 element-wise on GPU.
//
// The GPU path covers float32 and int32 tensors of identical shapes (the
// no-broadcast fast path); everything else returns an error so callers can
// fall back to the CPU backend.
func (b *Backend) SquaredDifferenceGPU(a, other *tensor.RawTensor) (*tensor.RawTensor, error) {
	switch a.DType() {
	case tensor.Float32:
		return b.runSquaredDifference(a, other, "sqdiff_f32", sqdiffF32Shader)
	case tensor.Int32:
		return b.runSquaredDifference(a, other, "sqdiff_i32", sqdiffI32Shader)
	default:
		return nil, fmt.Errorf("webgpu: only float32 and int32 are supported, got %s", a.DType())
	}
}

// compileShader compiles WGSL shader code into a ShaderModule.
// Results are cached in the Backend's shaders map.
func (b *Backend) compileShader(name, code string) *wgpu.ShaderModule {
	b.mu.RLock()
	if shader, exists := b.shaders[name]; exists {
		b.mu.RUnlock()
		return shader
	}
	b.mu.RUnlock()

	shader := b.device.CreateShaderModuleWGSL(code)

	b.mu.Lock()
	b.shaders[name] = shader
	b.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (b *Backend) getOrCreatePipeline(name string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	b.mu.RLock()
	if pipeline, exists := b.pipelines[name]; exists {
		b.mu.RUnlock()
		return pipeline
	}
	b.mu.RUnlock()

	// Create compute pipeline with auto layout (nil layout)
	pipeline := b.device.CreateComputePipelineSimple(nil, shader, "main")

	b.mu.Lock()
	b.pipelines[name] = pipeline
	b.mu.Unlock()

	return pipeline
}
