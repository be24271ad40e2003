package render

import "github.com/matzehuels/laserbox/pkg/puzzle"

const (
	// DefaultScale is the default number of pixels per box unit.
	DefaultScale = 14.0

	// DefaultMargin is the empty border drawn around the box, in box units.
	DefaultMargin = 5.0

	// LabelRoom is the extra space right of the box reserved for the target label.
	LabelRoom = 10.0
)

// Frame maps box coordinates (origin bottom-left, y up) onto an image
// (origin top-left, y down).
type Frame struct {
	Box        puzzle.Box
	Scale      float64 // pixels per box unit
	Margin     float64 // border on every side, in box units
	ExtraRight float64 // additional border on the right, in box units
}

// NewFrame returns a frame for box with the default margin. labels reserves
// room for the target label.
func NewFrame(box puzzle.Box, scale float64, labels bool) Frame {
	if scale <= 0 {
		scale = DefaultScale
	}
	f := Frame{Box: box, Scale: scale, Margin: DefaultMargin}
	if labels {
		f.ExtraRight = LabelRoom
	}
	return f
}

// X converts a box x coordinate to pixels.
func (f Frame) X(x float64) float64 { return (x + f.Margin) * f.Scale }

// Y converts a box y coordinate to pixels.
func (f Frame) Y(y float64) float64 { return (f.Box.Height + f.Margin - y) * f.Scale }

// Len converts a box length to pixels.
func (f Frame) Len(l float64) float64 { return l * f.Scale }

// Width returns the image width in pixels.
func (f Frame) Width() float64 {
	return (f.Box.Width + 2*f.Margin + f.ExtraRight) * f.Scale
}

// Height returns the image height in pixels.
func (f Frame) Height() float64 {
	return (f.Box.Height + 2*f.Margin) * f.Scale
}
