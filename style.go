package loupe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cursor hints.
const (
	CursorDefault  = "default"
	CursorGrab     = "grab"
	CursorGrabbing = "grabbing"
)

// ContainerStyle describes the viewport element.
type ContainerStyle struct {
	Overflow    string
	Cursor      string
	TouchAction string
}

// CSS renders the style as a CSS declaration list.
func (s ContainerStyle) CSS() string {
	return cssDecls("overflow", s.Overflow, "cursor", s.Cursor, "touch-action", s.TouchAction)
}

// ContentStyle describes the transformed content element.
type ContentStyle struct {
	Transform       string
	TransformOrigin string
	Transition      string
}

// CSS renders the style as a CSS declaration list.
func (s ContentStyle) CSS() string {
	return cssDecls("transform", s.Transform, "transform-origin", s.TransformOrigin, "transition", s.Transition)
}

func cssDecls(kv ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv[i])
		b.WriteString(": ")
		b.WriteString(kv[i+1])
		b.WriteByte(';')
	}
	return b.String()
}

// Cursor returns the cursor hint: grabbing during a drag, grab when the view
// can be panned, default otherwise.
func (c *Controller) Cursor() string {
	switch {
	case c.drag.active:
		return CursorGrabbing
	case c.canPan():
		return CursorGrab
	}
	return CursorDefault
}

// ContainerStyle projects the viewport style from the current state.
// Native touch gestures are always disabled on the container; the listeners
// decide per event whether to claim it.
func (c *Controller) ContainerStyle() ContainerStyle {
	return ContainerStyle{
		Overflow:    "hidden",
		Cursor:      c.Cursor(),
		TouchAction: "none",
	}
}

// ContentStyle projects the content transform. The transition is off while
// dragging so the content tracks the pointer exactly.
func (c *Controller) ContentStyle() ContentStyle {
	t := c.state
	transition := "none"
	if sec := c.cfg.transitionSeconds(); sec > 0 && !c.drag.active {
		transition = "transform " + formatNumber(sec) + "s ease-out"
	}
	return ContentStyle{
		Transform:       TransformCSS(t),
		TransformOrigin: "0 0",
		Transition:      transition,
	}
}

// TransformCSS formats t as translate(Tx, Ty) scale(S).
func TransformCSS(t Transform) string {
	return fmt.Sprintf("translate(%spx, %spx) scale(%s)",
		formatNumber(t.TranslateX), formatNumber(t.TranslateY), formatNumber(t.Scale))
}

// ZoomLabel returns "" at exactly native scale, otherwise the rounded
// percentage, e.g. "150%".
func (c *Controller) ZoomLabel() string {
	return ZoomLabel(c.state.Scale)
}

// ZoomLabel formats scale as a rounded percentage, or "" when it is 1.
func ZoomLabel(scale float64) string {
	if scale == 1 {
		return ""
	}
	return strconv.Itoa(int(math.Round(scale*100))) + "%"
}

func formatNumber(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
