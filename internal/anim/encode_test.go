package anim

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"cardiogen/internal/culture"
)

func TestEncoderRegistry(t *testing.T) {
	for _, name := range []string{"gif", "apng", "avi"} {
		e, err := EncoderFor(name)
		if err != nil {
			t.Fatalf("EncoderFor(%q): %v", name, err)
		}
		if e.Name() != name {
			t.Fatalf("encoder %q reports name %q", name, e.Name())
		}
		if e.Extension() == "" {
			t.Fatalf("encoder %q has empty extension", name)
		}
	}

	if _, err := EncoderFor("webm"); err == nil {
		t.Fatal("expected error for unregistered format")
	}
}

func TestEncodersRejectEmptyArtifact(t *testing.T) {
	empty := &Artifact{DelayMS: 250, Loop: true}
	dir := t.TempDir()
	for _, name := range EncoderNames() {
		e, err := EncoderFor(name)
		if err != nil {
			t.Fatalf("EncoderFor(%q): %v", name, err)
		}
		path := filepath.Join(dir, "empty"+e.Extension())
		if err := e.Encode(path, empty); err == nil {
			t.Fatalf("encoder %q accepted an empty artifact", name)
		}
	}
}

func TestGIFRoundTripPreservesOrderAndTiming(t *testing.T) {
	cfg := culture.DefaultConfig()
	cfg.Width = 80
	cfg.Height = 60
	cfg.DayMin = 1
	cfg.DayMax = 3
	cfg.Seed = 7

	art, err := Assemble(cfg, SpeedSlow, nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	enc, err := EncoderFor("gif")
	if err != nil {
		t.Fatalf("EncoderFor: %v", err)
	}
	if err := enc.Encode(path, art); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	decoded, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(decoded.Image) != len(art.Frames) {
		t.Fatalf("decoded %d frames, want %d", len(decoded.Image), len(art.Frames))
	}
	if decoded.LoopCount != 0 {
		t.Fatalf("LoopCount = %d, want 0 (loop forever)", decoded.LoopCount)
	}
	for i, d := range decoded.Delay {
		if d != art.DelayMS/10 {
			t.Fatalf("frame %d delay = %d, want uniform %d", i, d, art.DelayMS/10)
		}
	}
}
