package programs

import "github.com/go-gl/mathgl/mgl32"

// Uniforms mirrors the std140 Viewport block:
//
//	layout(std140, binding = 0) uniform Viewport {
//		float ul_re;
//		float ul_im;
//		float lr_re;
//		float lr_im;
//	};
type Uniforms struct {
	ULRe float32
	ULIm float32
	LRRe float32
	LRIm float32
}

func NewUniforms(upperLeft, lowerRight mgl32.Vec2) Uniforms {
	return Uniforms{
		ULRe: upperLeft.X(),
		ULIm: upperLeft.Y(),
		LRRe: lowerRight.X(),
		LRIm: lowerRight.Y(),
	}
}

// Block returns the uniform values in upload order.
func (u Uniforms) Block() [4]float32 {
	return [4]float32{u.ULRe, u.ULIm, u.LRRe, u.LRIm}
}

// Size of the uniform block in bytes.
func (u Uniforms) Size() int {
	return 4 * 4
}
