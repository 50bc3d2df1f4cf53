package game

import (
	"log"
	"math/rand"
	"sync"

	"github.com/iburimskiy/constellation/internal/field"
	"github.com/iburimskiy/constellation/internal/render"
)

// Scene ties the particle field, the shared pointer and a drawing surface
// together. Front-ends feed it pointer moves, resizes and ticks; once
// unmounted every one of those becomes a no-op.
type Scene struct {
	pointer field.Pointer

	mu      sync.Mutex
	rng     *rand.Rand
	field   *field.Field
	mounted bool
	stopped bool
}

// NewScene returns an unmounted scene drawing its randomness from rng.
func NewScene(rng *rand.Rand) *Scene {
	return &Scene{rng: rng}
}

// Mount sizes the scene for its first surface and starts accepting ticks.
func (s *Scene) Mount(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.mounted {
		return
	}
	s.field = field.New(width, height, s.rng)
	s.mounted = true
	log.Printf("scene mounted: %d particles on %dx%d", s.field.Len(), width, height)
}

// Resize discards every particle and repopulates for the new surface.
func (s *Scene) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() {
		return
	}
	s.field.Reset(width, height)
	log.Printf("scene resized: %d particles on %dx%d", s.field.Len(), width, height)
}

// MovePointer records the latest pointer position in surface pixels.
func (s *Scene) MovePointer(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() {
		return
	}
	s.pointer.Set(x, y)
}

// Tick runs one frame onto c. It reports false once the scene is no
// longer mounted and nothing was drawn.
func (s *Scene) Tick(c render.Canvas) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() {
		return false
	}
	render.Frame(c, s.field.Particles(), s.pointer.Snapshot())
	return true
}

// Unmount stops the scene for good. Later calls to any method do nothing.
func (s *Scene) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	s.mounted = false
	log.Printf("scene unmounted")
}

// Size reports the surface the particles were last laid out for.
func (s *Scene) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.field == nil {
		return 0, 0
	}
	return s.field.Size()
}

// Particles returns a copy of the current particle state.
func (s *Scene) Particles() []field.Particle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.field == nil {
		return nil
	}
	return append([]field.Particle(nil), s.field.Particles()...)
}

func (s *Scene) live() bool {
	return s.mounted && !s.stopped
}
