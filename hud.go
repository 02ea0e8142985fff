package loupe

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudText returns the overlay text for a viewport: the zoom label (when not
// at native size) and, if requested, FPS and TPS.
func hudText(label string, showFPS bool, fps, tps float64) string {
	var s string
	if label != "" {
		s = "zoom " + label
	}
	if showFPS {
		if s != "" {
			s += "\n"
		}
		s += fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	}
	return s
}

// DrawHUD prints the viewport's zoom label in its top-left corner, with
// FPS/TPS below it when showFPS is set.
func (v *Viewport) DrawHUD(dst *ebiten.Image, showFPS bool) {
	text := hudText(v.ctrl.ZoomLabel(), showFPS, ebiten.ActualFPS(), ebiten.ActualTPS())
	if text == "" {
		return
	}
	r := v.Bounds()
	ebitenutil.DebugPrintAt(dst, text, int(r.X)+4, int(r.Y)+4)
}
