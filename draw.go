package loupe

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GeoM returns the window-space matrix for drawing content through the
// viewport: scale, then the pan offset, then the viewport origin.
func (v *Viewport) GeoM() ebiten.GeoM {
	t := v.settle.shown
	r := v.Bounds()
	var m ebiten.GeoM
	m.Scale(t.Scale, t.Scale)
	m.Translate(r.X+t.TranslateX, r.Y+t.TranslateY)
	return m
}

// Settling reports whether the displayed transform is still easing toward
// the controller's transform.
func (v *Viewport) Settling() bool {
	return v.settle.settling()
}

// Draw renders content into dst through the viewport, clipped to its
// bounds. Nothing is drawn until the viewport has been laid out.
func (v *Viewport) Draw(dst, content *ebiten.Image) {
	if content == nil {
		return
	}
	r, ok := v.surface.Bounds()
	if !ok {
		return
	}
	clip := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height)).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	target := dst.SubImage(clip).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = v.GeoM()
	if v.settle.shown.Scale != 1 {
		op.Filter = ebiten.FilterLinear
	}
	target.DrawImage(content, op)
}
