package loupe

import (
	"testing"
	"time"
)

func TestTransformCSS(t *testing.T) {
	tests := []struct {
		in   Transform
		want string
	}{
		{IdentityTransform, "translate(0px, 0px) scale(1)"},
		{Transform{Scale: 1.1, TranslateX: -10, TranslateY: -5}, "translate(-10px, -5px) scale(1.1)"},
		{Transform{Scale: 1.15, TranslateX: -30, TranslateY: -22.5}, "translate(-30px, -22.5px) scale(1.15)"},
		{Transform{Scale: 2, TranslateX: -0, TranslateY: 0}, "translate(0px, 0px) scale(2)"},
	}
	for _, tt := range tests {
		if got := TransformCSS(tt.in); got != tt.want {
			t.Errorf("TransformCSS(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestZoomLabel(t *testing.T) {
	tests := []struct {
		scale float64
		want  string
	}{
		{1, ""},
		{1.5, "150%"},
		{0.5, "50%"},
		{1.15, "115%"},
		{1.004, "100%"},
		{2, "200%"},
	}
	for _, tt := range tests {
		if got := ZoomLabel(tt.scale); got != tt.want {
			t.Errorf("ZoomLabel(%v) = %q, want %q", tt.scale, got, tt.want)
		}
	}
}

func TestContainerStyleCursor(t *testing.T) {
	r := newTestRig(t, DefaultConfig(), Rect{Width: 400, Height: 300})

	if got := r.ctrl.ContainerStyle(); got.Cursor != CursorDefault || got.Overflow != "hidden" || got.TouchAction != "none" {
		t.Errorf("native style = %+v", got)
	}
	r.ctrl.SetScale(1.5)
	if got := r.ctrl.ContainerStyle().Cursor; got != CursorGrab {
		t.Errorf("zoomed cursor = %q, want %q", got, CursorGrab)
	}
	r.press(10, 10)
	if got := r.ctrl.ContainerStyle().Cursor; got != CursorGrabbing {
		t.Errorf("dragging cursor = %q, want %q", got, CursorGrabbing)
	}

	cfg := DefaultConfig()
	cfg.DisableDrag = true
	r.ctrl.SetConfig(cfg)
	if got := r.ctrl.ContainerStyle().Cursor; got != CursorDefault {
		t.Errorf("drag disabled cursor = %q, want %q", got, CursorDefault)
	}
}

func TestContentStyleTransition(t *testing.T) {
	r := newTestRig(t, DefaultConfig(), Rect{Width: 400, Height: 300})
	r.ctrl.SetScale(1.5)

	style := r.ctrl.ContentStyle()
	if style.Transition != "transform 0.1s ease-out" {
		t.Errorf("transition = %q", style.Transition)
	}
	if style.TransformOrigin != "0 0" {
		t.Errorf("transform-origin = %q, want %q", style.TransformOrigin, "0 0")
	}

	r.press(10, 10)
	if got := r.ctrl.ContentStyle().Transition; got != "none" {
		t.Errorf("dragging transition = %q, want none", got)
	}
	r.release(10, 10)

	cfg := DefaultConfig()
	cfg.Transition = -time.Millisecond
	r.ctrl.SetConfig(cfg)
	if got := r.ctrl.ContentStyle().Transition; got != "none" {
		t.Errorf("disabled transition = %q, want none", got)
	}
}

func TestStyleCSS(t *testing.T) {
	c := ContainerStyle{Overflow: "hidden", Cursor: "grab", TouchAction: "none"}
	if got, want := c.CSS(), "overflow: hidden; cursor: grab; touch-action: none;"; got != want {
		t.Errorf("ContainerStyle.CSS() = %q, want %q", got, want)
	}
	s := ContentStyle{Transform: "scale(2)", TransformOrigin: "0 0"}
	if got, want := s.CSS(), "transform: scale(2); transform-origin: 0 0;"; got != want {
		t.Errorf("ContentStyle.CSS() = %q, want %q", got, want)
	}
}
