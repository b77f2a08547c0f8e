package images

// Image describes a resolved image identifier. Width and Height are pixel
// dimensions and are zero when the identifier could not be resolved.
type Image struct {
	Name   string
	Path   string
	Width  int
	Height int
	Found  bool
}

// HasDimensions reports whether both pixel dimensions are known.
func (i Image) HasDimensions() bool {
	return i.Width > 0 && i.Height > 0
}

// Aspect returns width divided by height, or zero when unknown.
func (i Image) Aspect() float64 {
	if !i.HasDimensions() {
		return 0
	}
	return float64(i.Width) / float64(i.Height)
}

// Landscape reports whether the image is wider than it is tall.
func (i Image) Landscape() bool {
	return i.Aspect() > 1
}
