package anim

import (
	"fmt"
	"image"

	"github.com/setanarut/apng"
)

// apngEncoder writes the artifact as a looping animated PNG.
type apngEncoder struct{}

func (apngEncoder) Name() string      { return "apng" }
func (apngEncoder) Extension() string { return ".png" }

func (apngEncoder) Encode(path string, art *Artifact) error {
	if err := checkArtifact(art); err != nil {
		return err
	}

	frames := make([]image.Image, 0, len(art.Frames))
	for _, f := range art.Frames {
		frames = append(frames, f.Img)
	}

	// apng delays share the GIF centisecond unit.
	if err := apng.Save(path, frames, uint16(art.DelayMS/10)); err != nil {
		return fmt.Errorf("encoding APNG: %w", err)
	}
	return nil
}

func init() {
	RegisterEncoder("apng", apngEncoder{})
}
