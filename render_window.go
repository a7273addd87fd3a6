package main

import (
	"context"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glfractal-nav/config"
	"github.com/stewi1014/glfractal-nav/input"
	"github.com/stewi1014/glfractal-nav/render"
)

const (
	zoomInKey  = glfw.KeyUp
	zoomOutKey = glfw.KeyDown
)

// NewRenderWindow opens a fixed size window and makes its OpenGL context current.
// glfw must be initialised.
func NewRenderWindow(opts config.Options) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if opts.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(
		opts.Width,
		opts.Height,
		"GLFractal Render",
		nil,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &RenderWindow{
		Window: window,
	}

	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	err = gl.Init()
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}

	// Sticky input keeps a press visible until it has been polled, so a click
	// shorter than a frame still shows up as an edge.
	w.SetInputMode(glfw.StickyKeysMode, glfw.True)
	w.SetInputMode(glfw.StickyMouseButtonsMode, glfw.True)

	w.SetKeyCallback(func(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			window.SetShouldClose(true)
		}
	})

	return w, nil
}

type RenderWindow struct {
	*glfw.Window
}

// Sample reads the current state of the navigation inputs.
func (w *RenderWindow) Sample() input.Frame {
	x, y := w.GetCursorPos()

	return input.Frame{
		LeftButton: w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		ZoomInKey:  w.GetKey(zoomInKey) == glfw.Press,
		ZoomOutKey: w.GetKey(zoomOutKey) == glfw.Press,
		Cursor:     mgl32.Vec2{float32(x), float32(y)},
		CursorOK:   w.GetAttrib(glfw.Hovered) == glfw.True,
	}
}

// Run is the frame loop. Input for a frame is routed before the frame is rendered,
// so a frame always shows the result of every navigation triggered by it.
func (w *RenderWindow) Run(ctx context.Context, router *input.Router, bridge *render.Bridge) error {
	for !w.ShouldClose() {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		glfw.PollEvents()
		router.Tick(w.Sample())

		width, height := w.GetFramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := bridge.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		w.SwapBuffers()
	}

	return nil
}
