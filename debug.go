package loupe

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives debug output. Tests swap it out.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables gesture tracing on stderr.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugf prints one trace line when debug mode is on.
func (c *Controller) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[loupe] %s: %s\n", c.name, fmt.Sprintf(format, args...))
}

// SetDebugMode enables or disables tracing of dispatched events for the
// host and every viewport it owns.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
	for _, v := range h.viewports {
		v.ctrl.SetDebugMode(enabled)
	}
}

func (h *Host) debugf(format string, args ...any) {
	if !h.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[loupe] host: %s\n", fmt.Sprintf(format, args...))
}
