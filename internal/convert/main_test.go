package convert

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

// Fyne data bindings dispatch change notifications through fyne.Do,
// which requires a running app; use the headless test app.
func TestMain(m *testing.M) {
	test.NewApp()
	m.Run()
}
