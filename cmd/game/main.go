package main

import (
	"log"
	"path/filepath"

	"github.com/Garsondee/Zombie-Life/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	dir := game.ResolveAssetDir()
	assets, err := game.LoadAssets(dir)
	if err != nil {
		log.Fatal(err)
	}
	music := game.StartMusic(filepath.Join(dir, game.MusicFile), game.MusicVolume)

	ebiten.SetWindowTitle("Zombie Life")
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(game.New(cfg, assets, music)); err != nil {
		log.Fatal(err)
	}
}
