package main

import (
	"context"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/constellation/internal/game"
	"github.com/iburimskiy/constellation/internal/term"
)

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	// The screen owns the terminal until Run returns.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scene := game.NewScene(rand.New(rand.NewSource(time.Now().UnixNano())))
	return term.NewDriver(screen, game.NewHost(scene)).Run(ctx)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("constellation-term: %v", err)
	}
}
