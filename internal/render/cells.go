package render

import (
	"image/color"
	"math"

	"cardiogen/internal/culture"
	"cardiogen/pkg/core"
)

const (
	// maxCellsPerFrame caps the rendered population; density is traded
	// for render cost.
	maxCellsPerFrame = 15

	// cellCountScale reduces the nominal population before capping.
	cellCountScale = 0.8

	// batchSize is the largest run of cells placed around one cluster
	// before moving on.
	batchSize = 5

	baseCellWidth = 15.0

	cellAlpha      = 180
	fragmentAlpha  = 150
	sarcomereAlpha = 150
	nucleusAlpha   = 180
)

// ReducedCellCount returns the capped number of cells drawn per frame.
func ReducedCellCount(c culture.Characteristics) int {
	n := int(math.Round(float64(c.CellCount) * cellCountScale))
	if n > maxCellsPerFrame {
		n = maxCellsPerFrame
	}
	if n < 0 {
		n = 0
	}
	return n
}

// RenderCells draws the cell population onto the frame: batches of cells
// scattered around each cluster center, geometry chosen by the stage shape,
// pulsed by beatPulse, with sarcomere lines and nuclei layered on top.
// Mutates the frame in place.
func RenderCells(rng *core.RNG, f *Frame, c culture.Characteristics, layout ClusterLayout, beatPulse float64) {
	target := ReducedCellCount(c)
	if target == 0 || len(layout.Centers) == 0 {
		return
	}

	beatEffect := 1.0 + beatPulse*c.BeatingStrength*0.3
	clusterRadius := 20 + 15*c.CellClustering

	drawn := 0
	clustersUsed := 0
	for drawn < target {
		var center Point
		if clustersUsed < len(layout.Centers) {
			center = layout.Centers[clustersUsed]
			clustersUsed++
		} else {
			center = layout.Centers[rng.IntN(len(layout.Centers))]
		}

		batch := target - drawn
		if batch > batchSize {
			batch = batchSize
		}
		for i := 0; i < batch; i++ {
			angle := rng.Angle()
			distance := rng.Float64() * clusterRadius
			x := center.X + math.Cos(angle)*distance
			y := center.Y + math.Sin(angle)*distance
			drawCell(rng, f, c, x, y, beatEffect)
			drawn++
		}
	}
}

func drawCell(rng *core.RNG, f *Frame, c culture.Characteristics, x, y, beatEffect float64) {
	var cellW, cellH float64
	switch {
	case c.Shape == culture.ShapeRound:
		cellW = baseCellWidth * beatEffect
		cellH = cellW
	case c.Shape.Elongated():
		cellW = baseCellWidth * beatEffect
		cellH = baseCellWidth * c.Elongation * beatEffect
		// Imperfect directional alignment: some cells lie crosswise.
		if rng.Chance(c.Alignment) {
			cellW, cellH = cellH, cellW
		}
	default: // fragmenting or fragmented
		if rng.Chance(0.6) && c.DebrisLevel > 0.5 {
			drawFragments(rng, f, c, x, y)
			return
		}
		cellW = baseCellWidth * beatEffect * 0.8
		cellH = baseCellWidth * c.Elongation * beatEffect * 0.8
	}

	body := color.RGBA{R: c.ColorBase.R, G: c.ColorBase.G, B: c.ColorBase.B, A: cellAlpha}
	fillEllipse(f.Img, x, y, cellW, cellH, body)

	if c.SarcomereOrganization > 0.3 {
		drawSarcomeres(rng, f, c, x, y, cellW, cellH)
	}

	// Not every cell shows its nucleus in this focal plane.
	if rng.Chance(0.8) {
		nw := cellW * c.NucleusSize
		nh := cellH * c.NucleusSize
		nucleus := color.RGBA{R: 102, G: 102, B: 204, A: nucleusAlpha}
		fillEllipse(f.Img, x+(cellW-nw)/2, y+(cellH-nh)/2, nw, nh, nucleus)
	}
}

// drawFragments replaces a coherent body with three scattered fragments.
func drawFragments(rng *core.RNG, f *Frame, c culture.Characteristics, x, y float64) {
	frag := color.RGBA{R: c.ColorBase.R, G: c.ColorBase.G, B: c.ColorBase.B, A: fragmentAlpha}
	for i := 0; i < 3; i++ {
		fx := x + rng.Float64()*15 - 7
		fy := y + rng.Float64()*15 - 7
		size := 4 + rng.Float64()*4
		fillEllipse(f.Img, fx, fy, size, size, frag)
	}
}

// drawSarcomeres draws three evenly spaced horizontal lines across the cell.
// Below 0.5 organization each line may break into two flickering segments.
func drawSarcomeres(rng *core.RNG, f *Frame, c culture.Characteristics, x, y, cellW, cellH float64) {
	line := color.RGBA{
		R: subChannel(c.ColorBase.R, 50),
		G: subChannel(c.ColorBase.G, 50),
		B: subChannel(c.ColorBase.B, 50),
		A: sarcomereAlpha,
	}
	const numLines = 3
	length := cellW * 0.8
	start := x + (cellW-length)/2
	for i := 0; i < numLines; i++ {
		pos := y + cellH*float64(i+1)/float64(numLines+1)
		if c.SarcomereOrganization < 0.5 && rng.Chance(0.5) {
			const segments = 2
			for s := 0; s < segments; s++ {
				if rng.Chance(0.7) {
					segStart := start + length*float64(s)/segments
					segEnd := start + length*float64(s+1)/segments
					drawLine(f.Img, segStart, pos, segEnd, pos, 1, line)
				}
			}
			continue
		}
		drawLine(f.Img, start, pos, start+length, pos, 1, line)
	}
}

func subChannel(v uint8, d uint8) uint8 {
	if v < d {
		return 0
	}
	return v - d
}
