package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawOverlay paints the label strip in the top-left corner with the current
// day and stage title.
func drawOverlay(f *Frame) {
	fillRect(f.Img, 10, 10, 160, 30, color.RGBA{R: 240, G: 240, B: 240, A: 180})
	label := fmt.Sprintf("Day %.1f  %s", f.Day, f.Title)
	addLabel(f.Img, 14, 24, label, color.RGBA{R: 60, G: 60, B: 60, A: 255})
}

// addLabel draws a text label onto the image at the given baseline position.
func addLabel(img *image.RGBA, x, y int, label string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}
