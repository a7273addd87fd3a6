package input

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glfractal-nav/viewport"
)

type Action int

const (
	// Recenter moves the clicked point to the center and zooms in one step.
	Recenter Action = iota
	ZoomIn
	ZoomOut
)

func (a Action) String() string {
	switch a {
	case Recenter:
		return "recenter"
	case ZoomIn:
		return "zoom in"
	case ZoomOut:
		return "zoom out"
	}
	return "unknown"
}

type State int

const (
	Idle State = iota
	Navigating
)

func (s State) String() string {
	if s == Navigating {
		return "navigating"
	}
	return "idle"
}

// Frame is the level state of the navigation inputs sampled once per tick.
type Frame struct {
	LeftButton bool
	ZoomInKey  bool
	ZoomOutKey bool

	// Cursor is in surface pixels with the origin at the top left.
	// CursorOK is false when the pointer is not over the surface.
	Cursor   mgl32.Vec2
	CursorOK bool
}

// Router turns raw input into navigations against a viewport.Store.
type Router struct {
	store  *viewport.Store
	size   mgl32.Vec2
	redraw func()

	state State
	prev  Frame
}

// NewRouter creates a router for a surface of width x height pixels.
// redraw is called after every navigation that changed the store.
func NewRouter(store *viewport.Store, width, height int, redraw func()) *Router {
	return &Router{
		store:  store,
		size:   mgl32.Vec2{float32(width), float32(height)},
		redraw: redraw,
	}
}

func (r *Router) State() State {
	return r.state
}

// Tick compares f with the previous frame and performs one navigation for every
// input that went from released to pressed. Held inputs do nothing.
// It returns the number of navigations applied.
func (r *Router) Tick(f Frame) int {
	prev := r.prev
	r.prev = f

	applied := 0
	if f.LeftButton && !prev.LeftButton && r.Navigate(Recenter, f.Cursor, f.CursorOK) {
		applied++
	}
	if f.ZoomInKey && !prev.ZoomInKey && r.Navigate(ZoomIn, f.Cursor, f.CursorOK) {
		applied++
	}
	if f.ZoomOutKey && !prev.ZoomOutKey && r.Navigate(ZoomOut, f.Cursor, f.CursorOK) {
		applied++
	}
	return applied
}

// Navigate applies a single navigation and reports whether the store changed.
// Keyboard zooms ignore the cursor.
func (r *Router) Navigate(action Action, cursor mgl32.Vec2, cursorOK bool) bool {
	if r.state == Navigating {
		log.Printf("ignoring %v: navigation already in progress", action)
		return false
	}

	px, py, zoom := float32(0.5), float32(0.5), viewport.ZoomIn
	switch action {
	case Recenter:
		if !cursorOK {
			log.Println("ignoring click: no cursor over the surface")
			return false
		}
		px, py = cursor.X()/r.size.X(), cursor.Y()/r.size.Y()
		if px < 0 || px > 1 || py < 0 || py > 1 {
			log.Printf("ignoring click at %v: outside the surface", cursor)
			return false
		}
	case ZoomIn:
	case ZoomOut:
		zoom = viewport.ZoomOut
	default:
		log.Printf("ignoring unknown action %d", action)
		return false
	}

	r.state = Navigating
	changed := false
	func() {
		defer func() { r.state = Idle }()

		r.store.Update(func(rect *viewport.ComplexRect) {
			next := viewport.Navigate(*rect, px, py, zoom)
			if err := next.Validate(); err != nil {
				log.Printf("refusing to %v: %v", action, err)
				return
			}
			*rect = next
			changed = true
		})
	}()

	if changed && r.redraw != nil {
		r.redraw()
	}
	return changed
}
