package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/constellation/internal/config"
	"github.com/iburimskiy/constellation/internal/field"
)

// ParticleColor is hsla(hue, 100%, 70%, 0.8).
func ParticleColor(hue float64) color.NRGBA {
	r, g, b := colorful.Hsl(hue, config.ParticleSaturation, config.ParticleLightness).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(config.ParticleAlpha)}
}

// LinkOpacity returns the stroke opacity for two particles distance apart
// and whether they are close enough to be linked at all.
func LinkOpacity(distance float64) (float64, bool) {
	if distance >= config.LinkDistance {
		return 0, false
	}
	return (1 - distance/config.LinkDistance) * config.LinkMaxOpacity, true
}

// LinkColor is rgba(138, 43, 226, opacity).
func LinkColor(opacity float64) color.NRGBA {
	return color.NRGBA{R: config.LinkR, G: config.LinkG, B: config.LinkB, A: alpha8(opacity)}
}

// DrawParticle fills the particle's circle at its current position.
func DrawParticle(c Canvas, p *field.Particle) {
	c.FillCircle(p.X, p.Y, p.Size, ParticleColor(p.Hue))
}

// ConnectParticles strokes a faded segment between every pair of particles
// closer than LinkDistance. Self pairs are skipped; they would only ever
// produce a zero-length segment.
func ConnectParticles(c Canvas, ps []field.Particle) {
	for a := range ps {
		for b := a + 1; b < len(ps); b++ {
			opacity, ok := LinkOpacity(field.Distance(&ps[a], &ps[b]))
			if !ok {
				continue
			}
			c.StrokeLine(ps[a].X, ps[a].Y, ps[b].X, ps[b].Y, config.LinkWidth, LinkColor(opacity))
		}
	}
}

// Frame produces one frame: clear, then update and draw each particle in
// turn, then the connection pass over the whole set.
func Frame(c Canvas, ps []field.Particle, pointer field.Point) {
	c.Clear()
	for i := range ps {
		field.Update(&ps[i], pointer)
		DrawParticle(c, &ps[i])
	}
	ConnectParticles(c, ps)
}

func alpha8(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a*255 + 0.5)
}
