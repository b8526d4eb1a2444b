package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"dirstat-tool/internal/winstate"
)

// BuildMainWindow creates and configures the main application window,
// restoring its geometry from preferences and saving it back on close.
// screenWidth and screenHeight describe the host work area the window
// must fit into.
func BuildMainWindow(app fyne.App, screenWidth, screenHeight int) fyne.Window {
	win := app.NewWindow("Folder Stats")

	store := winstate.NewPreferencesStore(app.Preferences())
	state := winstate.Restore(store, screenWidth, screenHeight)

	win.Resize(fyne.NewSize(float32(state.Width), float32(state.Height)))
	// Fyne cannot place a window at explicit coordinates. The validated
	// position is still persisted for hosts that can; here the window
	// is centered by the toolkit instead.
	win.CenterOnScreen()
	if state.Maximized {
		win.SetFullScreen(true)
	}

	statsView := NewStatsView()
	controls := NewControls(win, statsView)

	content := container.NewBorder(controls.Container(), nil, nil, nil, statsView.Container())
	win.SetContent(content)

	win.SetCloseIntercept(func() {
		size := win.Canvas().Size()
		winstate.Save(store, winstate.State{
			Width:     int(size.Width),
			Height:    int(size.Height),
			X:         state.X,
			Y:         state.Y,
			Maximized: win.FullScreen(),
		})
		win.Close()
	})

	return win
}
