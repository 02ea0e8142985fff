package loupe

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run and NewViewer.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Viewport configures the zoom/pan controller.
	Viewport Config

	// Background fills the window behind the content. Nil means dark grey.
	Background color.Color
	// ShowHUD draws the zoom label; ShowFPS adds FPS/TPS to it.
	ShowHUD bool
	ShowFPS bool
	Debug   bool

	// Script, when set, drives the viewer with injected input. With
	// ExitAfterScript the game ends once the script is done.
	Script          *TestRunner
	ExitAfterScript bool
	ScreenshotDir   string
}

var defaultBackground = color.RGBA{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff}

// Viewer is an ebiten.Game that shows one image through a full-window
// viewport.
type Viewer struct {
	cfg     RunConfig
	host    *Host
	view    *Viewport
	content *ebiten.Image
	w, h    int
}

// NewViewer creates a viewer for content. The viewport is sized to the
// window on the first Layout call.
func NewViewer(content *ebiten.Image, cfg RunConfig) (*Viewer, error) {
	if cfg.Background == nil {
		cfg.Background = defaultBackground
	}
	host := NewHost()
	if cfg.ScreenshotDir != "" {
		host.ScreenshotDir = cfg.ScreenshotDir
	}
	host.SetDebugMode(cfg.Debug)

	view, err := host.NewViewport("content", Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}, cfg.Viewport)
	if err != nil {
		return nil, err
	}
	if cfg.Script != nil {
		host.SetTestRunner(cfg.Script)
	}
	return &Viewer{cfg: cfg, host: host, view: view, content: content}, nil
}

// Host returns the input host.
func (v *Viewer) Host() *Host { return v.host }

// Viewport returns the full-window viewport.
func (v *Viewer) Viewport() *Viewport { return v.view }

// SetContent swaps the displayed image. The transform is kept. Call it from
// the game goroutine (Update or Draw).
func (v *Viewer) SetContent(img *ebiten.Image) {
	v.content = img
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	if err := v.host.Update(); err != nil {
		return err
	}
	if v.cfg.ExitAfterScript && v.cfg.Script != nil && v.cfg.Script.Done() &&
		v.host.PendingScreenshots() == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.cfg.Background)
	v.view.Draw(screen, v.content)
	if v.cfg.ShowHUD || v.cfg.ShowFPS {
		v.view.DrawHUD(screen, v.cfg.ShowFPS)
	}
	v.host.FlushScreenshots(screen)
}

// Layout implements ebiten.Game. The viewport follows the window size; the
// transform is not re-anchored on resize.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.w || outsideHeight != v.h {
		v.w, v.h = outsideWidth, outsideHeight
		v.host.SetScreenSize(outsideWidth, outsideHeight)
		v.view.SetBounds(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

// Run opens a window showing content and blocks until it is closed.
func Run(content *ebiten.Image, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	viewer, err := NewViewer(content, cfg)
	if err != nil {
		return err
	}
	defer viewer.host.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(viewer)
}
