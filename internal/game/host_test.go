package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/constellation/internal/field"
)

func TestHostMountsThenResizes(t *testing.T) {
	h := NewHost(newTestScene())
	s := h.Scene()

	h.SetSurface(900, 900)
	assert.Len(t, s.Particles(), 90)
	first := s.Particles()

	h.SetSurface(900, 900)
	assert.Equal(t, first, s.Particles(), "same size keeps the field")

	h.SetSurface(450, 900)
	assert.Len(t, s.Particles(), 45)

	h.SetSurface(0, 0)
	assert.Empty(t, s.Particles())

	h.SetSurface(900, 900)
	assert.Len(t, s.Particles(), 90, "growing back from an empty surface")
}

func TestHostMountsEmptySurface(t *testing.T) {
	h := NewHost(newTestScene())
	h.SetSurface(0, 0)
	assert.Empty(t, h.Scene().Particles())

	h.SetSurface(900, 900)
	assert.Len(t, h.Scene().Particles(), 90)
}

func TestHostCursorOnlyOnChange(t *testing.T) {
	h := NewHost(newTestScene())
	s := h.Scene()
	h.SetSurface(900, 900)

	h.SetCursor(10, 20)
	assert.Equal(t, field.Point{X: 10, Y: 20}, s.pointer.Snapshot())

	s.pointer.Set(1, 1)
	h.SetCursor(10, 20)
	assert.Equal(t, field.Point{X: 1, Y: 1}, s.pointer.Snapshot(), "stationary cursor is not re-sent")

	h.SetCursor(11, 20)
	assert.Equal(t, field.Point{X: 11, Y: 20}, s.pointer.Snapshot())
}
