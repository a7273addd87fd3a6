package programs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	assert.Equal(t, []string{"julia", "mandelbrot"}, Names())
	assert.Equal(t, 2, NumPrograms())

	for i := 0; i < NumPrograms(); i++ {
		p := GetProgram(i)
		assert.NotEmpty(t, p.VertexShader, p.Name)
		assert.Contains(t, p.VertexShader, "in vec2 vert;", p.Name)
		assert.Contains(t, p.FragmentShader, "uniform "+UniformBlockName, p.Name)
		assert.Contains(t, p.FragmentShader, "binding = 0", p.Name)
		assert.Contains(t, p.FragmentShader, "out vec4 outputColor;", p.Name)
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup("mandelbrot")
	require.NoError(t, err)
	assert.Equal(t, "mandelbrot", p.Name)

	_, err = Lookup("burning-ship")
	assert.ErrorIs(t, err, ErrUnknownProgram)
}

func TestRegisterTwice(t *testing.T) {
	assert.Error(t, NewProgram(Program{Name: "julia"}))
	assert.Equal(t, 2, NumPrograms())
}

func TestUniformOrder(t *testing.T) {
	u := NewUniforms(mgl32.Vec2{-0.75, 0.75}, mgl32.Vec2{0.25, -0.5})
	assert.Equal(t, [4]float32{-0.75, 0.75, 0.25, -0.5}, u.Block())
	assert.Equal(t, 16, u.Size())
}
