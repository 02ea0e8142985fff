// Package loupe is a zoom and pan controller for inspecting fixed 2D
// content (diagrams, charts, images) at variable magnification.
//
// A [Controller] owns a [Transform] (scale plus translation) and turns input
// events into changes of it:
//
//   - modifier + wheel zooms one step, anchored at the cursor
//   - click-drag pans while zoomed
//   - two-finger pinch zooms, anchored at the midpoint of the fingers
//   - one-finger touch pans while zoomed
//   - double click or double tap resets to native size
//
// # Quick start
//
// The simplest way to look at an image is [Run], which opens a window with a
// single full-window viewport:
//
//	img, _, _ := ebitenutil.NewImageFromFile("diagram.png")
//	loupe.Run(img, loupe.RunConfig{Title: "diagram", Width: 800, Height: 600})
//
// For several viewports or your own game loop, create a [Host], add
// viewports with [Host.NewViewport], call [Host.Update] from your Update and
// [Viewport.Draw] from your Draw.
//
// # Without Ebitengine
//
// The controller only needs event targets. Any host can build a tree of
// [Surface] values (a root for the window, children for viewport
// containers), mount a controller with [Controller.Mount] and call
// [Surface.Dispatch] with [Event] values. Zoom notifications are deferred
// through a [Scheduler]; [TaskQueue] runs them when the host calls
// RunPending after the event has been handled. Views read
// [Controller.ContainerStyle], [Controller.ContentStyle] and
// [Controller.ZoomLabel], or subscribe with [Controller.Subscribe].
//
// # Lifecycle
//
// Mount registers every listener exactly once. The listeners read the
// controller's current configuration and transform on each event, so
// [Controller.SetConfig] and state changes never re-register anything.
// [Controller.Unmount] removes every listener and drops pending
// notifications.
package loupe
