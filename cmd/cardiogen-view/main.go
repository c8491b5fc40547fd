//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"cardiogen/internal/anim"
	"cardiogen/internal/app"
	"cardiogen/internal/culture"
)

func main() {
	dayMin := flag.Float64("day-min", culture.MinDay, "start of the day range")
	dayMax := flag.Float64("day-max", culture.MaxDay, "end of the day range")
	width := flag.Int("w", 400, "frame width in pixels")
	height := flag.Int("h", 300, "frame height in pixels")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	speed := flag.String("speed", "medium", "sweep speed: slow, medium or fast")
	scale := flag.Int("scale", 2, "window scale factor")
	flag.Parse()

	cfg := culture.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.DayMin = *dayMin
	cfg.DayMax = *dayMax
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.DayMax <= cfg.DayMin {
		log.Fatalf("day range %.2f-%.2f: min must be below max", cfg.DayMin, cfg.DayMax)
	}

	game := app.New(cfg, anim.Speed(*speed), *scale)

	ebiten.SetWindowTitle("cardiogen - culture development")
	ebiten.SetWindowSize(cfg.Width*(*scale), cfg.Height*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
