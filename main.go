package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/archer/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $ARCHER_CONFIG)")
	levelPath := flag.String("level", "", "compiled TMAP level (default: embedded map)")
	debug := flag.Bool("debug", false, "show the debug HUD")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *levelPath != "" {
		cfg.Level = *levelPath
	}
	cfg.Debug = cfg.Debug || *debug
	cfg.Mute = cfg.Mute || *mute

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("archer: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
