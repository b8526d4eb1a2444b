package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"dirstat-tool/internal/cli"
	"dirstat-tool/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil || cfg.Dir == "" {
		screenW, screenH := cli.DefaultScreenWidth, cli.DefaultScreenHeight
		if cfg != nil {
			screenW, screenH = cfg.ScreenWidth, cfg.ScreenHeight
		}
		a := app.NewWithID("com.dirstat-tool.gui")
		win := ui.BuildMainWindow(a, screenW, screenH)
		win.ShowAndRun()
		return
	}

	// CLI mode
	if err := cli.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
