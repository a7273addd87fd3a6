package viewport

import "github.com/go-gl/mathgl/mgl32"

// Zoom directions accepted by Navigate.
const (
	ZoomOut  float32 = -1
	ZoomNone float32 = 0
	ZoomIn   float32 = 1
)

// paddingDivisor is the fraction of the half extent removed from each side per zoom step.
const paddingDivisor = 8

// Navigate moves the rectangle so that the point at (px, py), given as a fraction
// of the surface width and height, becomes the new center. It then moves each corner
// toward the center (zoom > 0) or away from it (zoom < 0) by an eighth of the half
// extent scaled by zoom.
//
// One zoom in step leaves 7/8 of the extent on each axis; one zoom out step gives 9/8.
func Navigate(current ComplexRect, px, py, zoom float32) ComplexRect {
	ul, lr := current.UpperLeft, current.LowerRight

	c := ul.Add(lr).Mul(0.5)
	m := mgl32.Vec2{
		(1-px)*ul.X() + px*lr.X(),
		(1-py)*ul.Y() + py*lr.Y(),
	}

	shift := m.Sub(c)
	ul = ul.Add(shift)
	lr = lr.Add(shift)

	// Padding is measured from the translated center.
	c = ul.Add(lr).Mul(0.5)
	padding := c.Sub(ul).Mul(1 / float32(paddingDivisor)).Mul(zoom)
	ul = ul.Add(padding)
	lr = lr.Sub(padding)

	return ComplexRect{UpperLeft: ul, LowerRight: lr}
}
