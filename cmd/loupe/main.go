// Command loupe opens images in a zoomable, pannable window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "loupe",
		Short: "Inspect diagrams and charts with wheel, drag and pinch zoom",
		Long: `loupe shows a fixed image through a zoomable viewport.

Hold Ctrl (or Cmd) and scroll to zoom at the cursor, drag to pan while
zoomed, pinch on touch screens, and double click to reset.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newViewCommand())
	rootCmd.AddCommand(newConfigCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
