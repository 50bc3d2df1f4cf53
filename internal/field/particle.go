package field

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/constellation/internal/config"
)

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Particle is a single point of the field. BaseX/BaseY never change after
// construction; X/Y is the only state touched by Update.
type Particle struct {
	X, Y         float64
	BaseX, BaseY float64
	Size         float64
	Density      float64
	Hue          float64
}

// newParticle places a particle uniformly inside a width x height surface,
// resting on its base position.
func newParticle(rng *rand.Rand, width, height float64) Particle {
	x := rng.Float64() * width
	y := rng.Float64() * height
	return Particle{
		X:       x,
		Y:       y,
		BaseX:   x,
		BaseY:   y,
		Size:    rng.Float64()*config.SizeSpread + config.MinSize,
		Density: rng.Float64()*config.DensitySpread + config.MinDensity,
		Hue:     rng.Float64()*config.HueSpread + config.MinHue,
	}
}

// Update advances p by one tick against the pointer position.
//
// Inside MaxDistance the particle is pushed directly away from the pointer,
// scaled by its density and by how close the pointer is. Outside it eases
// back toward its base, closing 1/ReturnDivisor of the offset per axis.
func Update(p *Particle, pointer Point) {
	dx := pointer.X - p.X
	dy := pointer.Y - p.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	if distance < config.MaxDistance {
		// Pointer sits exactly on the particle: no direction to push along.
		if distance == 0 {
			return
		}
		force := (config.MaxDistance - distance) / config.MaxDistance
		p.X -= dx / distance * force * p.Density
		p.Y -= dy / distance * force * p.Density
		return
	}

	if p.X != p.BaseX {
		p.X -= (p.X - p.BaseX) / config.ReturnDivisor
	}
	if p.Y != p.BaseY {
		p.Y -= (p.Y - p.BaseY) / config.ReturnDivisor
	}
}

// Distance returns the Euclidean distance between two particles.
func Distance(a, b *Particle) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
