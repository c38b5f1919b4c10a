// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/stride-ml/stride/internal/tensor"
)

// Backend defines the interface that compute backends must implement.
//
// Implementations:
//   - CPU: Pure Go with an optional parallel strided path (backend/cpu)
//   - WebGPU: Zero-CGO GPU compute, Windows only (backend/webgpu)
//
// Backend methods panic on shape mismatch; callers that need a recoverable
// error use the error-returning functions of the backend packages directly.
type Backend = tensor.Backend
