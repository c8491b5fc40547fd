package anim

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"math"

	"github.com/icza/mjpeg"
)

// aviEncoder writes the artifact as an MJPEG-in-AVI video. AVI has no loop
// flag; players decide. Everything else about the artifact is preserved, the
// per-frame delay becomes the stream frame rate.
type aviEncoder struct{}

func (aviEncoder) Name() string      { return "avi" }
func (aviEncoder) Extension() string { return ".avi" }

func (aviEncoder) Encode(path string, art *Artifact) error {
	if err := checkArtifact(art); err != nil {
		return err
	}

	w, h := art.Frames[0].Size()
	fps := int32(math.Round(1000 / float64(art.DelayMS)))
	if fps < 1 {
		fps = 1
	}

	writer, err := mjpeg.New(path, int32(w), int32(h), fps)
	if err != nil {
		return fmt.Errorf("creating MJPEG writer: %w", err)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: 90}
	for i, f := range art.Frames {
		buf.Reset()
		if err := jpeg.Encode(&buf, f.Img, opts); err != nil {
			writer.Close()
			return fmt.Errorf("encoding frame %d: %w", i, err)
		}
		if err := writer.AddFrame(buf.Bytes()); err != nil {
			writer.Close()
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing MJPEG writer: %w", err)
	}
	return nil
}

func init() {
	RegisterEncoder("avi", aviEncoder{})
}
