package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrDegenerate = errors.New("degenerate viewport")

// minResolution is the number of float32 steps each half extent must span.
// Below it a zoom step rounds away and the corners stop moving.
const minResolution = 16

var (
	defaultUpperLeft  = mgl32.Vec2{-0.75, 0.75}
	defaultLowerRight = mgl32.Vec2{0, 0}
)

// ComplexRect is the visible region of the complex plane, given by two opposite corners.
// X holds the real part and Y the imaginary part.
type ComplexRect struct {
	UpperLeft  mgl32.Vec2
	LowerRight mgl32.Vec2
}

// Default returns the starting window for a surface of the given size.
// Square surfaces get the classic corners; otherwise the real axis is
// stretched about the same center so a plane unit stays square on screen.
func Default(width, height int) ComplexRect {
	r := ComplexRect{
		UpperLeft:  defaultUpperLeft,
		LowerRight: defaultLowerRight,
	}

	if width <= 0 || height <= 0 || width == height {
		return r
	}

	aspect := float32(width) / float32(height)
	c := r.Center()
	halfRe := (c.X() - r.UpperLeft.X()) * aspect
	r.UpperLeft[0] = c.X() - halfRe
	r.LowerRight[0] = c.X() + halfRe
	return r
}

func (r ComplexRect) Center() mgl32.Vec2 {
	return r.UpperLeft.Add(r.LowerRight).Mul(0.5)
}

// HalfExtent is the absolute distance from the center to a corner along each axis.
func (r ComplexRect) HalfExtent() mgl32.Vec2 {
	d := r.Center().Sub(r.UpperLeft)
	return mgl32.Vec2{abs32(d.X()), abs32(d.Y())}
}

// Validate reports whether the rectangle can still be rendered meaningfully.
// Corners must be finite and each half extent must span at least minResolution
// float32 steps at the magnitude of its corners.
func (r ComplexRect) Validate() error {
	for _, v := range [...]float32{r.UpperLeft.X(), r.UpperLeft.Y(), r.LowerRight.X(), r.LowerRight.Y()} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: non-finite corner in %v", ErrDegenerate, r)
		}
	}

	c := r.Center()
	if math.IsInf(float64(c.X()), 0) || math.IsInf(float64(c.Y()), 0) {
		return fmt.Errorf("%w: center overflows in %v", ErrDegenerate, r)
	}

	h := r.HalfExtent()
	for axis := 0; axis < 2; axis++ {
		span := max(abs32(r.UpperLeft[axis]), abs32(r.LowerRight[axis]))
		if h[axis] < minResolution*ulp32(span) {
			return fmt.Errorf("%w: extent collapsed on axis %d in %v", ErrDegenerate, axis, r)
		}
	}

	return nil
}

func (r ComplexRect) String() string {
	return fmt.Sprintf("[(%g%+gi) (%g%+gi)]",
		r.UpperLeft.X(), r.UpperLeft.Y(),
		r.LowerRight.X(), r.LowerRight.Y(),
	)
}

func ulp32(v float32) float32 {
	v = abs32(v)
	return math.Nextafter32(v, math.MaxFloat32) - v
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
