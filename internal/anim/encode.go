package anim

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"sort"
)

// Encoder serializes a finished artifact to a file. Frame order and the
// uniform per-frame delay must survive exactly as computed.
type Encoder interface {
	Name() string
	Extension() string
	Encode(path string, art *Artifact) error
}

var encoders = map[string]Encoder{}

// RegisterEncoder adds an encoder under the provided name.
func RegisterEncoder(name string, e Encoder) {
	if name == "" || e == nil {
		return
	}
	encoders[name] = e
}

// EncoderFor looks up a registered encoder by format name.
func EncoderFor(name string) (Encoder, error) {
	e, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (have %v)", name, EncoderNames())
	}
	return e, nil
}

// EncoderNames lists the registered format names in sorted order.
func EncoderNames() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkArtifact rejects incomplete artifacts before any container is built.
func checkArtifact(art *Artifact) error {
	if art == nil || len(art.Frames) == 0 {
		return fmt.Errorf("artifact has no frames to encode")
	}
	return nil
}

// toPaletted quantizes an RGBA frame over the Plan9 palette for the
// palette-based containers.
func toPaletted(img *image.RGBA) *image.Paletted {
	bounds := img.Bounds()
	p := image.NewPaletted(bounds, palette.Plan9)
	draw.Draw(p, bounds, img, bounds.Min, draw.Src)
	return p
}
