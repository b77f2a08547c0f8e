package images

import "math"

// cellAspect is the height of a terminal cell divided by its width.
const cellAspect = 2.0

// Layout is the on-screen footprint of an image in terminal cells.
type Layout struct {
	Width   int
	Height  int
	Rotated bool
}

// Zoom computes the expanded layout of img inside a boxW x boxH cell area.
// Landscape images are turned a quarter turn so their long edge runs down
// the screen, then sized to fill the box width; portrait images keep their
// orientation and also fill the width. Either result is scaled down to fit
// the box. Images without known dimensions fill the box unrotated.
func Zoom(img Image, boxW, boxH int) Layout {
	if boxW <= 0 || boxH <= 0 {
		return Layout{}
	}
	if !img.HasDimensions() {
		return Layout{Width: boxW, Height: boxH}
	}

	rotated := img.Landscape()
	// Height over width of the footprint, in pixels.
	ratio := float64(img.Height) / float64(img.Width)
	if rotated {
		ratio = float64(img.Width) / float64(img.Height)
	}

	width := float64(boxW)
	height := width * ratio / cellAspect
	if height > float64(boxH) {
		height = float64(boxH)
		width = height * cellAspect / ratio
	}

	return Layout{
		Width:   clamp(int(math.Round(width)), 1, boxW),
		Height:  clamp(int(math.Round(height)), 1, boxH),
		Rotated: rotated,
	}
}

// Fit returns a layout that fills the box without rotation. It is used for
// the inline thumbnails on the list and detail screens.
func Fit(boxW, boxH int) Layout {
	if boxW <= 0 || boxH <= 0 {
		return Layout{}
	}
	return Layout{Width: boxW, Height: boxH}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
