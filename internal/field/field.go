package field

import (
	"math/rand"

	"github.com/iburimskiy/constellation/internal/config"
)

// Field owns the ordered particle collection for one surface size.
type Field struct {
	width, height int
	particles     []Particle
	rng           *rand.Rand
}

// Count is the number of particles a width x height surface holds.
// Degenerate surfaces hold none.
func Count(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height / config.AreaPerParticle
}

// New builds a field sized for width x height using rng for every random draw.
func New(width, height int, rng *rand.Rand) *Field {
	f := &Field{rng: rng}
	f.Reset(width, height)
	return f
}

// Reset discards every particle and repopulates the field for a new
// surface size.
func (f *Field) Reset(width, height int) {
	f.width, f.height = width, height
	n := Count(width, height)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = newParticle(f.rng, float64(width), float64(height))
	}
}

// Size reports the surface the field was last populated for.
func (f *Field) Size() (int, int) {
	return f.width, f.height
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles exposes the collection in order. Callers may mutate positions
// through it; the slice itself is replaced on Reset.
func (f *Field) Particles() []Particle {
	return f.particles
}
