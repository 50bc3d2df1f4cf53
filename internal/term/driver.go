package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/constellation/internal/config"
	"github.com/iburimskiy/constellation/internal/game"
)

// Driver runs a scene on a tcell screen: one goroutine pumps screen events,
// another owns the scene and ticks it at a fixed interval.
type Driver struct {
	screen   tcell.Screen
	host     *game.Host
	canvas   *Canvas
	interval time.Duration
}

func NewDriver(screen tcell.Screen, host *game.Host) *Driver {
	return &Driver{
		screen:   screen,
		host:     host,
		canvas:   NewCanvas(screen),
		interval: config.FrameInterval,
	}
}

// Run blocks until ctx is cancelled or a quit key arrives. On return the
// scene is unmounted and the screen finalised.
func (d *Driver) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d.screen.EnableMouse(tcell.MouseMotionEvents)
	d.host.SetSurface(SurfaceSize(d.screen.Size()))

	events := make(chan tcell.Event, 64)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(d.interval)
		defer func() {
			ticker.Stop()
			d.host.Scene().Unmount()
			cancel()
			// unblocks PollEvent
			d.screen.Fini()
		}()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if d.handle(ev) {
					return nil
				}
			case <-ticker.C:
				if d.host.Scene().Tick(d.canvas) {
					d.screen.Show()
				}
			}
		}
	})

	return g.Wait()
}

// handle applies one event and reports whether it asked to quit.
func (d *Driver) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true
		}
	case *tcell.EventMouse:
		d.host.SetCursor(CellCenter(ev.Position()))
	case *tcell.EventResize:
		d.screen.Sync()
		d.host.SetSurface(SurfaceSize(ev.Size()))
	}
	return false
}
