//go:build windows

package webgpu

// WGSL compute shaders for the squared-difference kernel.
// Using string constants instead of embed for simplicity.

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// sqdiffF32Shader computes result = (a - b)^2 element-wise for f32.
const sqdiffF32Shader = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> b: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let d = a[idx] - b[idx];
        result[idx] = d * d;
    }
}
`

// sqdiffI32Shader computes result = (a - b)^2 element-wise for i32.
// i32 arithmetic in WGSL wraps around two's-complement, matching the CPU kernel.
const sqdiffI32Shader = `
@group(0) @binding(0) var<storage, read> a: array<i32>;
@group(0) @binding(1) var<storage, read> b: array<i32>;
@group(0) @binding(2) var<storage, read_write> result: array<i32>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let d = a[idx] - b[idx];
        result[idx] = d * d;
    }
}
`
