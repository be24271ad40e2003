package styles

// Diagram palette.
const (
	ColorInk        = "#000000" // grid and plain barriers
	ColorCenterLine = "#8b0000" // center line and laser
	ColorMirror     = "#00ffff"
	ColorTick       = "#0000ff"
	ColorTarget     = "#ff0000"
	ColorPaper      = "#ffffff"
)
