package render

import (
	"math"

	"cardiogen/internal/culture"
	"cardiogen/pkg/core"
)

// Point is a 2D canvas coordinate.
type Point struct {
	X, Y float64
}

// Edge connects two cluster centers by index.
type Edge struct {
	A, B int
}

// ClusterLayout holds the cluster centers for one frame and the connections
// drawn between them.
type ClusterLayout struct {
	Centers []Point
	Edges   []Edge
}

const (
	// clusterMargin keeps centers far enough from the border that cells
	// placed around them stay on-canvas.
	clusterMargin = 100

	// connectionCutoff is the threshold below which no inter-cluster
	// connections are attempted at all. A step, not a fade.
	connectionCutoff = 0.4
)

// ClusterCount maps a clustering level onto the number of cluster centers.
// Always 2 or 3, including at the extremes.
func ClusterCount(clustering float64) int {
	n := int(math.Round(clustering * 3))
	if n < 2 {
		n = 2
	}
	if n > 3 {
		n = 3
	}
	return n
}

// Layout places cluster centers uniformly inside the margin inset and rolls
// the pairwise connection edges. Stochastic; pass a seeded RNG for
// reproducible structure.
func Layout(rng *core.RNG, c culture.Characteristics, w, h int) ClusterLayout {
	margin := float64(clusterMargin)
	if 2*margin >= float64(w) {
		margin = float64(w) / 4
	}
	if 2*margin >= float64(h) {
		margin = float64(h) / 4
	}

	n := ClusterCount(c.CellClustering)
	layout := ClusterLayout{Centers: make([]Point, 0, n)}
	for i := 0; i < n; i++ {
		layout.Centers = append(layout.Centers, Point{
			X: margin + rng.Float64()*(float64(w)-2*margin),
			Y: margin + rng.Float64()*(float64(h)-2*margin),
		})
	}

	if c.Connection > connectionCutoff {
		for i := 0; i < len(layout.Centers); i++ {
			for j := i + 1; j < len(layout.Centers); j++ {
				if rng.Chance(c.Connection) {
					layout.Edges = append(layout.Edges, Edge{A: i, B: j})
				}
			}
		}
	}
	return layout
}
