package gfx

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// ShaderSource is the WGSL source of the mesh shader. Its vertex stage
// reads the attributes described by VertexLayout; its fragment stage
// multiplies the vertex color by a texture sampled at the vertex UV.
//
// Bindings: group 0 binding 0 is a uniform {transform mat4x4, color vec4};
// group 1 holds the texture (binding 0) and sampler (binding 1).
//
//go:embed shaders/mesh.wgsl
var ShaderSource string

// Entry points in ShaderSource.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// CompileShader compiles ShaderSource to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(ShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gfx: compile mesh shader: %w", err)
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirv, nil
}
