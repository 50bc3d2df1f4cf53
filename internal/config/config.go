package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Constellation - move the mouse, Esc/Q: Quit"
	TPS          = 60

	// Particle field
	AreaPerParticle = 9000
	MinSize         = 0.5
	SizeSpread      = 2.0
	MinDensity      = 1.0
	DensitySpread   = 30.0
	MinHue          = 200.0
	HueSpread       = 60.0

	// Pointer repulsion radius in surface pixels
	MaxDistance = 150.0
	// Offset toward the base position is divided by this every tick
	ReturnDivisor = 10.0

	// Particle fill, hsla(hue, 100%, 70%, 0.8)
	ParticleSaturation = 1.0
	ParticleLightness  = 0.7
	ParticleAlpha      = 0.8

	// Connections
	LinkDistance   = 100.0
	LinkMaxOpacity = 0.3
	LinkWidth      = 1.0
	LinkR          = 138
	LinkG          = 43
	LinkB          = 226

	// Terminal front-end: one cell covers CellWidth x CellHeight surface pixels
	CellWidth     = 8
	CellHeight    = 16
	FrameInterval = time.Second / 30
)
