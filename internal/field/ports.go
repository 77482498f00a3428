package field

// Color is an RGB colour with a separate opacity in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns c with its opacity replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Surface is a resizable 2D raster sized to the viewport.
type Surface interface {
	Resize(width, height float64)
	Clear()
	DrawCircle(x, y, r float64, c Color)
	DrawLine(x1, y1, x2, y2 float64, c Color, width float64)
}

// PointerSource delivers pointer moves in surface coordinates.
// Handlers must not block.
type PointerSource interface {
	OnMove(handler func(x, y float64))
}

// Clock schedules one callback for the next display refresh.
// The callback has to re-request to keep animating.
type Clock interface {
	RequestFrame(callback func())
}
