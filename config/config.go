package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/stewi1014/glfractal-nav/programs"
)

var ErrInvalidOptions = errors.New("invalid options")

const (
	DefaultWidth   = 1000
	DefaultHeight  = 1000
	DefaultProgram = "mandelbrot"

	maxSurface = 16384
)

// Options are fixed for the lifetime of the process. The window is not resizable.
type Options struct {
	Width   int
	Height  int
	Program string
	Debug   bool
	Dialog  bool
}

func Default() Options {
	return Options{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Program: DefaultProgram,
		Dialog:  true,
	}
}

// BindFlags registers the options on fs, using the current values as defaults.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "window width in pixels")
	fs.IntVar(&o.Height, "height", o.Height, "window height in pixels")
	fs.StringVarP(&o.Program, "program", "p", o.Program, fmt.Sprintf("fractal program, one of %v", programs.Names()))
	fs.BoolVar(&o.Debug, "debug", o.Debug, "enable OpenGL debug output")
	fs.BoolVar(&o.Dialog, "dialog", o.Dialog, "show a dialog when a fatal error occurs")
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: window size %vx%v must be positive", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.Width > maxSurface || o.Height > maxSurface {
		return fmt.Errorf("%w: window size %vx%v exceeds %v", ErrInvalidOptions, o.Width, o.Height, maxSurface)
	}
	if _, err := programs.Lookup(o.Program); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}
