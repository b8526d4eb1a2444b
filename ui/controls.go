package ui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"dirstat-tool/internal/export"
	"dirstat-tool/internal/scan"
)

type scanState int

const (
	stateIdle scanState = iota
	stateRunning
)

// Controls manages the folder picker and scan execution.
type Controls struct {
	mu     sync.Mutex
	state  scanState
	cancel context.CancelFunc
	folder string
	last   *scan.Result

	chooseBtn *widget.Button
	rescanBtn *widget.Button
	stopBtn   *widget.Button
	saveBtn   *widget.Button

	win       fyne.Window
	statsView *StatsView

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given view.
func NewControls(win fyne.Window, sv *StatsView) *Controls {
	c := &Controls{
		win:       win,
		statsView: sv,
	}

	c.chooseBtn = widget.NewButton("Choose Folder...", c.onChoose)
	c.rescanBtn = widget.NewButton("Rescan", c.onRescan)
	c.rescanBtn.Disable()
	c.stopBtn = widget.NewButton("Stop", c.onStop)
	c.stopBtn.Disable()
	c.saveBtn = widget.NewButton("Save Report...", c.onSave)
	c.saveBtn.Disable()

	c.container = container.NewHBox(c.chooseBtn, c.rescanBtn, c.stopBtn, c.saveBtn)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

func (c *Controls) onChoose() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		c.folder = uri.Path()
		c.startScan()
	}, c.win)
}

func (c *Controls) onRescan() {
	if c.folder != "" {
		c.startScan()
	}
}

func (c *Controls) startScan() {
	c.mu.Lock()
	if c.state == stateRunning {
		c.mu.Unlock()
		return
	}
	c.state = stateRunning
	c.mu.Unlock()

	c.chooseBtn.Disable()
	c.rescanBtn.Disable()
	c.saveBtn.Disable()
	c.stopBtn.Enable()

	ctx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	c.statsView.SetScanning(c.folder)

	go func() {
		defer c.resetState()

		result, err := scan.Scan(ctx, c.folder)
		if err != nil {
			c.statsView.ShowError(err)
			return
		}

		c.mu.Lock()
		c.last = &result
		c.mu.Unlock()

		c.statsView.ShowResult(&result)
	}()
}

func (c *Controls) onStop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Controls) onSave() {
	c.mu.Lock()
	result := c.last
	c.mu.Unlock()
	if result == nil {
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if exportErr := export.WriteReport(path, result); exportErr != nil {
			dialog.ShowError(exportErr, c.win)
		}
	}, c.win)
	d.SetFileName(export.BuildPath("folder-stats", ".txt", time.Now()))
	d.Show()
}

func (c *Controls) resetState() {
	c.mu.Lock()
	c.state = stateIdle
	c.cancel = nil
	hasResult := c.last != nil
	c.mu.Unlock()
	fyne.Do(func() {
		c.chooseBtn.Enable()
		c.rescanBtn.Enable()
		c.stopBtn.Disable()
		if hasResult {
			c.saveBtn.Enable()
		}
	})
}
