package anim

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"cardiogen/internal/culture"
)

// WriteChart renders a PNG panel of the functional curves (beating strength,
// sarcomere organization, debris level) across a day range, sampled at the
// same resolution the assembler would use. Companion artifact to the
// animation, not part of any frame.
func WriteChart(w io.Writer, cfg culture.Config) error {
	if cfg.DayMax <= cfg.DayMin {
		return fmt.Errorf("day range %.2f-%.2f: min must be below max", cfg.DayMin, cfg.DayMax)
	}

	interp := culture.NewInterpolator()
	days := linspace(cfg.DayMin, cfg.DayMax, Keyframes(cfg.DayMin, cfg.DayMax))

	beating := make([]float64, len(days))
	sarcomere := make([]float64, len(days))
	debris := make([]float64, len(days))
	for i, day := range days {
		c := interp.At(day)
		beating[i] = c.BeatingStrength
		sarcomere[i] = c.SarcomereOrganization
		debris[i] = c.DebrisLevel
	}

	graph := chart.Chart{
		Width:  600,
		Height: 300,
		XAxis: chart.XAxis{
			Name:  "Day",
			Range: &chart.ContinuousRange{Min: cfg.DayMin, Max: cfg.DayMax},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Beating Strength",
				XValues: days,
				YValues: beating,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2.0,
				},
			},
			chart.ContinuousSeries{
				Name:    "Sarcomere Organization",
				XValues: days,
				YValues: sarcomere,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2.0,
				},
			},
			chart.ContinuousSeries{
				Name:    "Debris Level",
				XValues: days,
				YValues: debris,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 150, G: 100, B: 60, A: 255},
					StrokeWidth: 2.0,
				},
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
