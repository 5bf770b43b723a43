// Package main implements the gones NES emulator executable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"gones/internal/cartridge"
	"gones/internal/config"
	"gones/internal/console"
	"gones/internal/ppu"
	"gones/internal/version"
)

func main() {
	var (
		romFile    = flag.String("rom", "", "path to an iNES ROM file (runs an empty diagnostic cartridge if omitted)")
		configFile = flag.String("config", config.DefaultPath(), "path to the JSON configuration file")
		debug      = flag.Bool("debug", false, "log window, audio and ROM settings at startup")
		showVer    = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version.GetDetailedVersion())
		return
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("gones: %v", err)
	}

	cart, err := loadCartridge(*romFile)
	if err != nil {
		log.Fatalf("gones: %v", err)
	}

	c := console.New(cart)
	c.SetSampleRate(float64(cfg.Audio.SampleRate))

	if cfg.Audio.Enabled {
		ctx := audio.NewContext(cfg.Audio.SampleRate)
		player, err := ctx.NewPlayer(newPCMStream(c))
		if err != nil {
			log.Fatalf("gones: audio player: %v", err)
		}
		player.Play()
	}

	w, h := ppu.Width*cfg.Window.Scale, ppu.Height*cfg.Window.Scale
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("gones")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if *debug {
		log.Printf("gones: %dx%d window, %d Hz audio, rom=%q", w, h, cfg.Audio.SampleRate, *romFile)
	}

	if err := ebiten.RunGame(NewGame(c, cfg, *debug)); err != nil {
		log.Fatalf("gones: %v", err)
	}
}

// loadCartridge loads romPath, or returns the diagnostic empty cartridge
// when no ROM was given so the window still has something to run.
func loadCartridge(romPath string) (*cartridge.Cartridge, error) {
	if romPath == "" {
		return cartridge.Empty(), nil
	}
	f, err := os.Open(romPath)
	if err != nil {
		return nil, fmt.Errorf("open rom: %w", err)
	}
	defer f.Close()
	return cartridge.LoadFromReader(f)
}
