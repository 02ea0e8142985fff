package loupe

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action    string  `json:"action"`
	Label     string  `json:"label,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	FromX     float64 `json:"fromX,omitempty"`
	FromY     float64 `json:"fromY,omitempty"`
	ToX       float64 `json:"toX,omitempty"`
	ToY       float64 `json:"toY,omitempty"`
	Delta     float64 `json:"delta,omitempty"`
	Modifiers string  `json:"modifiers,omitempty"`
	FromDist  float64 `json:"fromDist,omitempty"`
	ToDist    float64 `json:"toDist,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
	Frames    int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// automated visual testing. Attach to a Host via SetTestRunner.
//
// Supported actions: screenshot, click, dblclick, tap, drag, wheel, pinch,
// scale (SetScale on the top viewport), reset and wait.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Host via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "screenshot", "click", "dblclick", "tap", "drag", "pinch", "reset", "wait", "scale":
		return nil
	case "wheel":
		if st.Modifiers != "" {
			if _, err := ParseKeyModifiers(st.Modifiers); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// SetTestRunner attaches a TestRunner to the host. The runner's step method
// is called from Host.Update before input is processed each frame.
func (h *Host) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Host.Update.
func (r *TestRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		h.Screenshot(st.Label)
	case "click":
		h.InjectClick(st.X, st.Y)
	case "dblclick":
		h.InjectDoubleClick(st.X, st.Y)
	case "tap":
		h.InjectTap(st.X, st.Y)
	case "drag":
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		mods := DefaultZoomModifiers
		if st.Modifiers != "" {
			mods, _ = ParseKeyModifiers(st.Modifiers)
		}
		delta := st.Delta
		if delta == 0 {
			delta = 1
		}
		h.InjectWheel(st.X, st.Y, delta, mods)
	case "pinch":
		h.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.Frames)
	case "scale":
		if v := h.topViewport(); v != nil {
			v.ctrl.SetScale(st.Scale)
		}
	case "reset":
		if v := h.topViewport(); v != nil {
			v.ctrl.Reset()
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}

func (h *Host) topViewport() *Viewport {
	if len(h.viewports) == 0 {
		return nil
	}
	return h.viewports[len(h.viewports)-1]
}
