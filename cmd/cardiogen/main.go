package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"cardiogen/internal/anim"
	"cardiogen/internal/culture"
)

func main() {
	dayMin := flag.Float64("day-min", culture.MinDay, "start of the day range")
	dayMax := flag.Float64("day-max", culture.MaxDay, "end of the day range")
	width := flag.Int("w", 400, "frame width in pixels")
	height := flag.Int("h", 300, "frame height in pixels")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	speed := flag.String("speed", "medium", "playback speed: slow, medium or fast")
	format := flag.String("format", "gif", "output container: "+strings.Join(anim.EncoderNames(), ", "))
	out := flag.String("o", "", "output path (default cardiomyocyte_animation.<ext>)")
	chartPath := flag.String("chart", "", "optionally write a characteristics chart PNG to this path")
	quiet := flag.Bool("q", false, "suppress per-frame progress")
	flag.Parse()

	encoder, err := anim.EncoderFor(*format)
	if err != nil {
		log.Fatal(err)
	}

	cfg := culture.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.DayMin = *dayMin
	cfg.DayMax = *dayMax
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	path := *out
	if path == "" {
		path = "cardiomyocyte_animation" + encoder.Extension()
	}

	progress := func(done, total int) {
		if !*quiet {
			fmt.Printf("\rcomposing frame %d/%d", done, total)
			if done == total {
				fmt.Println()
			}
		}
	}

	start := time.Now()
	art, err := anim.Assemble(cfg, anim.Speed(*speed), progress)
	if err != nil {
		log.Fatal(err)
	}
	if err := encoder.Encode(path, art); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%d frames, %dms/frame, days %.1f-%.1f) in %v\n",
		path, len(art.Frames), art.DelayMS, cfg.DayMin, cfg.DayMax, time.Since(start).Round(time.Millisecond))

	if *chartPath != "" {
		file, err := os.Create(*chartPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := anim.WriteChart(file, cfg); err != nil {
			file.Close()
			log.Fatal(err)
		}
		if err := file.Close(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *chartPath)
	}
}
