package wmctrl

import "fmt"

// Unchanged is wmctrl's sentinel for a geometry field that should keep its
// current value. It must survive formatting exactly; defaulting it to 0
// would move or collapse the window.
const Unchanged = -1

// defaultGravity pins the leading gravity field of the -e argument. This
// wrapper does not expose gravity configuration.
const defaultGravity = 0

// Transformation describes a move/resize request. Any field may be
// Unchanged to leave that dimension alone.
type Transformation struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewTransformation builds a Transformation from explicit geometry.
func NewTransformation(x, y, width, height int) Transformation {
	return Transformation{X: x, Y: y, Width: width, Height: height}
}

// String renders the five-field comma-joined argument wmctrl's -e option
// expects: gravity,x,y,width,height.
func (t Transformation) String() string {
	return fmt.Sprintf("%d,%d,%d,%d,%d", defaultGravity, t.X, t.Y, t.Width, t.Height)
}
