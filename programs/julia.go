package programs

import (
	_ "embed"
)

//go:embed shaders/julia.frag
var juliaFragment string

func init() {
	NewProgram(Program{
		Name:           "julia",
		VertexShader:   defaultVertexShader,
		FragmentShader: juliaFragment,
	})
}
