package loupe

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-zoom", "after-zoom"},
		{"frame.01", "frame.01"},
		{"zoom 150%", "zoom_150_"},
		{"path/to/thing", "path_to_thing"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	h := NewHost()
	h.Screenshot("a")
	h.Screenshot("b")
	if h.PendingScreenshots() != 2 {
		t.Fatalf("pending = %d, want 2", h.PendingScreenshots())
	}
	if h.screenshotQueue[0] != "a" || h.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", h.screenshotQueue)
	}
	if h.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", h.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		64, 32, 0, 128, // half transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		127, 63, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}
