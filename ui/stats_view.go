package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"dirstat-tool/internal/convert"
	"dirstat-tool/internal/scan"
)

// StatsView displays the statistics of the last scan through bound,
// display-converted labels.
type StatsView struct {
	folder binding.String
	files  binding.Int
	dirs   binding.Int
	bytes  binding.Int
	status binding.Int
	errMsg binding.String

	box *fyne.Container
}

// NewStatsView creates an empty stats view in the Idle state.
func NewStatsView() *StatsView {
	v := &StatsView{
		folder: binding.NewString(),
		files:  binding.NewInt(),
		dirs:   binding.NewInt(),
		bytes:  binding.NewInt(),
		status: binding.NewInt(),
		errMsg: binding.NewString(),
	}

	folderLabel := widget.NewLabelWithData(v.folder)
	folderLabel.TextStyle = fyne.TextStyle{Bold: true}
	folderLabel.Wrapping = fyne.TextWrapBreak

	statusLabel := widget.NewLabelWithData(convert.NewStatusString(v.status))
	sizeLabel := widget.NewLabelWithData(convert.NewByteCountString(v.bytes))
	filesLabel := widget.NewLabelWithData(convert.NewCountString(v.files, "file", "files"))
	dirsLabel := widget.NewLabelWithData(convert.NewCountString(v.dirs, "directory", "directories"))

	errLabel := widget.NewLabelWithData(v.errMsg)
	errLabel.Importance = widget.DangerImportance
	errLabel.Wrapping = fyne.TextWrapWord
	// Only visible while there is an error message.
	convert.BindVisibility(errLabel, convert.NewNonEmpty(v.errMsg), false)

	form := widget.NewForm(
		widget.NewFormItem("Status", statusLabel),
		widget.NewFormItem("Total size", sizeLabel),
		widget.NewFormItem("Files", filesLabel),
		widget.NewFormItem("Directories", dirsLabel),
	)

	v.box = container.NewVBox(folderLabel, form, errLabel)
	return v
}

// Container returns the stats view's container.
func (v *StatsView) Container() *fyne.Container {
	return v.box
}

// SetScanning marks the view as scanning the given folder. Safe to call
// from any goroutine: bindings deliver updates on the UI thread.
func (v *StatsView) SetScanning(folder string) {
	v.folder.Set(folder)
	v.errMsg.Set("")
	v.status.Set(int(scan.StatusScanning))
}

// ShowResult publishes a finished scan result.
func (v *StatsView) ShowResult(r *scan.Result) {
	v.files.Set(r.Files)
	v.dirs.Set(r.Dirs)
	v.bytes.Set(int(r.Bytes))
	v.errMsg.Set("")
	v.status.Set(int(scan.StatusDone))
}

// ShowError publishes a failed scan.
func (v *StatsView) ShowError(err error) {
	v.errMsg.Set(err.Error())
	v.status.Set(int(scan.StatusFailed))
}
