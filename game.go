package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/constellation/internal/game"
)

// ebitenGame runs a scene in an ebiten window. The window's outside size is
// the surface size, so a window resize repopulates the field.
type ebitenGame struct {
	host *game.Host
}

func newGame(host *game.Host) *ebitenGame {
	return &ebitenGame{host: host}
}

func (g *ebitenGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return g.quit()
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.host.SetCursor(float64(mouseX), float64(mouseY))
	return nil
}

// quit tears the scene down and asks ebiten to stop.
func (g *ebitenGame) quit() error {
	g.host.Scene().Unmount()
	return ebiten.Termination
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.host.Scene().Tick(imageCanvas{dst: screen})
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.SetSurface(outsideWidth, outsideHeight)
	// ebiten rejects an empty screen; a minimised window still gets one pixel
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// imageCanvas draws onto an ebiten image with antialiased vector paths.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Clear() {
	c.dst.Clear()
}

func (c imageCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c imageCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
