package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/constellation/internal/config"
	"github.com/iburimskiy/constellation/internal/game"
)

func run() error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	scene := game.NewScene(rand.New(rand.NewSource(time.Now().UnixNano())))
	defer scene.Unmount()

	err := ebiten.RunGame(newGame(game.NewHost(scene)))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Printf("constellation: %v", err)
		if dlgErr := zenity.Error(err.Error(), zenity.Title("Constellation")); dlgErr != nil {
			log.Printf("error dialog: %v", dlgErr)
		}
		log.Fatal(err)
	}
}
