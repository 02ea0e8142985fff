package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/loupe"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type viewOptions struct {
	configPath       string
	minScale         float64
	maxScale         float64
	step             float64
	noDrag           bool
	pinchSensitivity float64
	width            int
	height           int
	watch            bool
	scriptPath       string
	screenshotDir    string
	exitAfterScript  bool
	hud              bool
	fps              bool
	debug            bool
}

func newViewCommand() *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "view <image>",
		Short: "Open an image in a zoomable window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML viewport config file")
	f.Float64Var(&opts.minScale, "min-scale", 0, "minimum zoom (default 0.5)")
	f.Float64Var(&opts.maxScale, "max-scale", 0, "maximum zoom (default 2.0)")
	f.Float64Var(&opts.step, "step", 0, "zoom change per wheel notch (default 0.1)")
	f.BoolVar(&opts.noDrag, "no-drag", false, "disable drag panning")
	f.Float64Var(&opts.pinchSensitivity, "pinch-sensitivity", 0, "scale change per pixel of pinch (default 0.005)")
	f.IntVar(&opts.width, "width", 1024, "window width")
	f.IntVar(&opts.height, "height", 768, "window height")
	f.BoolVarP(&opts.watch, "watch", "w", false, "reload the image when the file changes")
	f.StringVar(&opts.scriptPath, "script", "", "JSON input script to replay")
	f.StringVar(&opts.screenshotDir, "screenshot-dir", "screenshots", "directory for script screenshots")
	f.BoolVar(&opts.exitAfterScript, "exit-after-script", false, "quit once the script has finished")
	f.BoolVar(&opts.hud, "hud", true, "show the zoom label")
	f.BoolVar(&opts.fps, "fps", false, "show FPS and TPS")
	f.BoolVar(&opts.debug, "debug", false, "trace input and gestures on stderr")

	return cmd
}

// viewportConfig merges the config file and the flags that were set.
func viewportConfig(cmd *cobra.Command, opts viewOptions) (loupe.Config, error) {
	cfg := loupe.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = loupe.LoadConfig(opts.configPath); err != nil {
			return loupe.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("min-scale") {
		cfg.MinScale = opts.minScale
	}
	if flags.Changed("max-scale") {
		cfg.MaxScale = opts.maxScale
	}
	if flags.Changed("step") {
		cfg.ScaleStep = opts.step
	}
	if flags.Changed("no-drag") {
		cfg.DisableDrag = opts.noDrag
	}
	if flags.Changed("pinch-sensitivity") {
		cfg.PinchSensitivity = opts.pinchSensitivity
	}
	return cfg, nil
}

func runView(cmd *cobra.Command, path string, opts viewOptions) error {
	cfg, err := viewportConfig(cmd, opts)
	if err != nil {
		return err
	}
	if opts.debug {
		cfg.OnUserZoom = func(scale float64) {
			log.Printf("user zoom: %s", loupe.ZoomLabel(scale))
		}
	}

	img, err := decodeImage(path)
	if err != nil {
		return err
	}

	run := loupe.RunConfig{
		Title:           "loupe - " + filepath.Base(path),
		Width:           opts.width,
		Height:          opts.height,
		Viewport:        cfg,
		ShowHUD:         opts.hud,
		ShowFPS:         opts.fps,
		Debug:           opts.debug,
		ExitAfterScript: opts.exitAfterScript,
		ScreenshotDir:   opts.screenshotDir,
	}
	if opts.scriptPath != "" {
		data, err := os.ReadFile(opts.scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if run.Script, err = loupe.LoadTestScript(data); err != nil {
			return err
		}
	}

	viewer, err := loupe.NewViewer(ebiten.NewImageFromImage(img), run)
	if err != nil {
		return err
	}
	defer viewer.Host().Close()

	game := &viewGame{Viewer: viewer}
	if opts.watch {
		w, err := watchImage(path)
		if err != nil {
			return err
		}
		defer w.Close()
		game.reloads = w.images
	}

	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle(run.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}

// viewGame adds hot reload on top of the library viewer.
type viewGame struct {
	*loupe.Viewer
	reloads <-chan image.Image
}

func (g *viewGame) Update() error {
	select {
	case img := <-g.reloads:
		g.SetContent(ebiten.NewImageFromImage(img))
	default:
	}
	return g.Viewer.Update()
}

// decodeImage reads any registered image format.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
