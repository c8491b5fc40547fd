package render

import (
	"image"
	"image/color"
)

// Frame is one composed raster image. It is mutable while the composer
// builds it and treated as read-only once returned.
type Frame struct {
	Img   *image.RGBA
	Day   float64
	Title string
}

// NewFrame allocates a frame of the given size filled with the background color.
func NewFrame(w, h int, bg color.RGBA) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	f := &Frame{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
	fillBackground(f.Img, bg)
	return f
}

// Size returns the frame dimensions.
func (f *Frame) Size() (int, int) {
	b := f.Img.Bounds()
	return b.Dx(), b.Dy()
}

func fillBackground(img *image.RGBA, bg color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		base := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[base+0] = bg.R
			img.Pix[base+1] = bg.G
			img.Pix[base+2] = bg.B
			img.Pix[base+3] = bg.A
			base += 4
		}
	}
}

// blendPixel composites c over the existing pixel using its alpha. Out of
// bounds coordinates are ignored so shapes may overhang the canvas edge.
func blendPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	if c.A == 0 {
		return
	}
	i := img.PixOffset(x, y)
	a := uint32(c.A)
	inv := 255 - a
	img.Pix[i+0] = uint8((uint32(c.R)*a + uint32(img.Pix[i+0])*inv) / 255)
	img.Pix[i+1] = uint8((uint32(c.G)*a + uint32(img.Pix[i+1])*inv) / 255)
	img.Pix[i+2] = uint8((uint32(c.B)*a + uint32(img.Pix[i+2])*inv) / 255)
	img.Pix[i+3] = 255
}

// fillEllipse alpha-blends an axis-aligned ellipse inscribed in the box
// (x, y)-(x+w, y+h).
func fillEllipse(img *image.RGBA, x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	cx := x + w/2
	cy := y + h/2
	rx := w / 2
	ry := h / 2
	x0 := int(x)
	y0 := int(y)
	x1 := int(x + w + 1)
	y1 := int(y + h + 1)
	for py := y0; py <= y1; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				blendPixel(img, px, py, c)
			}
		}
	}
}

// fillRect alpha-blends an axis-aligned rectangle.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

// drawLine alpha-blends a straight segment of the given width using simple
// per-step stamping. Good enough for the short connection and sarcomere
// strokes this renderer draws.
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, width int, c color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(maxFloat(absFloat(dx), absFloat(dy))) + 1
	if width < 1 {
		width = 1
	}
	half := width / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(x0 + dx*t)
		py := int(y0 + dy*t)
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				blendPixel(img, px+ox, py+oy, c)
			}
		}
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
