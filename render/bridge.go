package render

import (
	"errors"
	"fmt"

	"github.com/stewi1014/glfractal-nav/programs"
	"github.com/stewi1014/glfractal-nav/viewport"
)

var ErrNoDrawable = errors.New("no drawable to render")

// Drawable is the full surface quad together with the GPU resources holding its uniforms.
type Drawable interface {
	Draw()
	// Release frees the GPU resources. The drawable must not be used afterwards.
	Release()
}

type Backend interface {
	NewDrawable(u programs.Uniforms) (Drawable, error)
}

// Bridge publishes the rectangle held by a viewport.Store to the GPU.
// It owns at most one Drawable at a time; once Redraw has succeeded it owns exactly one.
type Bridge struct {
	store   *viewport.Store
	backend Backend

	current Drawable
	pending bool
}

func NewBridge(store *viewport.Store, backend Backend) *Bridge {
	return &Bridge{
		store:   store,
		backend: backend,
		pending: true,
	}
}

// RequestRedraw schedules a Redraw for the next Render.
func (b *Bridge) RequestRedraw() {
	b.pending = true
}

// Redraw retires the current drawable and replaces it with one built from
// a fresh snapshot of the store.
func (b *Bridge) Redraw() error {
	rect := b.store.Get()
	b.retire()

	d, err := b.backend.NewDrawable(programs.NewUniforms(rect.UpperLeft, rect.LowerRight))
	if err != nil {
		return fmt.Errorf("creating drawable for %v: %w", rect, err)
	}

	b.current = d
	b.pending = false
	return nil
}

// Render performs a pending redraw and draws the current drawable.
func (b *Bridge) Render() error {
	if b.pending {
		if err := b.Redraw(); err != nil {
			return err
		}
	}

	if b.current == nil {
		return ErrNoDrawable
	}

	b.current.Draw()
	return nil
}

// Live is the number of drawables owned by the bridge, either 0 or 1.
func (b *Bridge) Live() int {
	if b.current == nil {
		return 0
	}
	return 1
}

func (b *Bridge) Close() {
	b.retire()
}

func (b *Bridge) retire() {
	if b.current != nil {
		b.current.Release()
		b.current = nil
	}
}
