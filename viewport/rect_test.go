package viewport

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSquare(t *testing.T) {
	r := Default(1000, 1000)
	assert.Equal(t, mgl32.Vec2{-0.75, 0.75}, r.UpperLeft)
	assert.Equal(t, mgl32.Vec2{0, 0}, r.LowerRight)
	assert.NoError(t, r.Validate())
}

func TestDefaultKeepsAspect(t *testing.T) {
	r := Default(1600, 800)
	h := r.HalfExtent()

	assert.InDelta(t, 2*h.Y(), h.X(), 1e-6)
	assert.InDelta(t, -0.375, r.Center().X(), 1e-6)
	assert.InDelta(t, 0.375, r.Center().Y(), 1e-6)
}

func TestValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name string
		rect ComplexRect
		ok   bool
	}{
		{"default", start, true},
		{"unordered corners", ComplexRect{mgl32.Vec2{1, -1}, mgl32.Vec2{-1, 1}}, true},
		{"nan", ComplexRect{mgl32.Vec2{nan, 0}, mgl32.Vec2{1, 1}}, false},
		{"inf", ComplexRect{mgl32.Vec2{0, 0}, mgl32.Vec2{inf, 1}}, false},
		{"center overflow", ComplexRect{mgl32.Vec2{math.MaxFloat32, 0}, mgl32.Vec2{math.MaxFloat32, 1}}, false},
		{"same real", ComplexRect{mgl32.Vec2{0.5, 0}, mgl32.Vec2{0.5, 1}}, false},
		{"same imaginary", ComplexRect{mgl32.Vec2{0, 0.5}, mgl32.Vec2{1, 0.5}}, false},
		{"below resolution", ComplexRect{mgl32.Vec2{1, 1}, mgl32.Vec2{math.Nextafter32(1, 2), 2}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rect.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrDegenerate)
			}
		})
	}
}

func TestUnboundedZoomEventuallyDegenerates(t *testing.T) {
	r := start
	steps := 0
	for ; steps < 10000; steps++ {
		next := Navigate(r, 0.5, 0.5, ZoomIn)
		if next.Validate() != nil {
			break
		}
		r = next
	}

	require.Less(t, steps, 10000)
	assert.NoError(t, r.Validate())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[(-0.75+0.75i) (0+0i)]", start.String())
}
