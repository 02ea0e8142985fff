package loupe

import "math"

// WindowToContent converts a window point to content coordinates through
// the controller's transform.
func (v *Viewport) WindowToContent(x, y float64) (float64, float64) {
	r := v.Bounds()
	return v.ctrl.Transform().ToContent(x-r.X, y-r.Y)
}

// ContentToWindow converts a content point to window coordinates.
func (v *Viewport) ContentToWindow(x, y float64) (float64, float64) {
	r := v.Bounds()
	cx, cy := v.ctrl.Transform().ToContainer(x, y)
	return cx + r.X, cy + r.Y
}

// VisibleContent returns the part of the content, in content coordinates,
// that falls inside the viewport. It is the whole viewport rectangle mapped
// back through the transform, so it may extend past the content's edges.
func (v *Viewport) VisibleContent() Rect {
	r := v.Bounds()
	inv := invertAffine(v.ctrl.Transform().Matrix())

	x0, y0 := transformPoint(inv, 0, 0)
	x1, y1 := transformPoint(inv, r.Width, r.Height)

	minX, maxX := math.Min(x0, x1), math.Max(x0, x1)
	minY, maxY := math.Min(y0, y1), math.Max(y0, y1)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
