package field

import "sync"

// Pointer is the shared cursor position: written by the input source,
// read once per tick by the frame.
type Pointer struct {
	mu  sync.Mutex
	pos Point
}

// Set overwrites the pointer position.
func (p *Pointer) Set(x, y float64) {
	p.mu.Lock()
	p.pos = Point{X: x, Y: y}
	p.mu.Unlock()
}

// Snapshot returns the current position as one consistent pair.
func (p *Pointer) Snapshot() Point {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}
