package anim

import (
	"fmt"
	"image"
	"image/gif"
	"os"
)

// gifEncoder writes the artifact as an infinitely looping animated GIF.
type gifEncoder struct{}

func (gifEncoder) Name() string      { return "gif" }
func (gifEncoder) Extension() string { return ".gif" }

func (gifEncoder) Encode(path string, art *Artifact) error {
	if err := checkArtifact(art); err != nil {
		return err
	}

	images := make([]*image.Paletted, 0, len(art.Frames))
	delays := make([]int, 0, len(art.Frames))
	for _, f := range art.Frames {
		images = append(images, toPaletted(f.Img))
		delays = append(delays, art.DelayMS/10) // GIF delays are in centiseconds
	}

	loop := -1
	if art.Loop {
		loop = 0 // 0 means repeat forever
	}
	out := &gif.GIF{
		Image:     images,
		Delay:     delays,
		LoopCount: loop,
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := gif.EncodeAll(file, out); err != nil {
		return fmt.Errorf("encoding GIF: %w", err)
	}
	return nil
}

func init() {
	RegisterEncoder("gif", gifEncoder{})
}
