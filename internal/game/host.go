package game

import "github.com/iburimskiy/constellation/internal/field"

// Host is the front-end side of a Scene: it tracks the surface size and
// the last cursor position the front-end reported and forwards only
// changes. The first surface it sees mounts the scene.
type Host struct {
	scene *Scene

	width, height int
	mounted       bool
	cursor        field.Point
	cursorSeen    bool
}

func NewHost(scene *Scene) *Host {
	return &Host{scene: scene}
}

// Scene returns the scene being driven.
func (h *Host) Scene() *Scene {
	return h.scene
}

// SetSurface mounts the scene on first call and resizes it whenever the
// size changes afterwards.
func (h *Host) SetSurface(width, height int) {
	switch {
	case !h.mounted:
		h.scene.Mount(width, height)
		h.mounted = true
	case width != h.width || height != h.height:
		h.scene.Resize(width, height)
	default:
		return
	}
	h.width, h.height = width, height
}

// SetCursor forwards the cursor to the scene if it moved.
func (h *Host) SetCursor(x, y float64) {
	p := field.Point{X: x, Y: y}
	if h.cursorSeen && p == h.cursor {
		return
	}
	h.cursor = p
	h.cursorSeen = true
	h.scene.MovePointer(x, y)
}
