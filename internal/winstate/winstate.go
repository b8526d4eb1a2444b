// Package winstate persists window geometry across runs through a narrow
// key-value store interface and validates it against the current screen
// on restore.
package winstate

import (
	"fyne.io/fyne/v2"

	"dirstat-tool/internal/geometry"
)

// Preference keys. Each value is stored independently: a partially saved
// state (e.g. size but no position) is still usable.
const (
	keyWidth     = "window.width"
	keyHeight    = "window.height"
	keyX         = "window.x"
	keyY         = "window.y"
	keyMaximized = "window.maximized"
)

// Store is the persistence contract winstate needs: typed get with an
// explicit present-or-absent result, and typed set. fyne.Preferences
// satisfies it through PreferencesStore; tests use an in-memory map.
type Store interface {
	Int(key string) (int, bool)
	SetInt(key string, value int)
	Bool(key string) (bool, bool)
	SetBool(key string, value bool)
}

// State is a window's persisted geometry.
type State struct {
	Width     int
	Height    int
	X         int
	Y         int
	Maximized bool
}

// Save writes the window state to the store.
func Save(s Store, st State) {
	s.SetInt(keyWidth, st.Width)
	s.SetInt(keyHeight, st.Height)
	s.SetInt(keyX, st.X)
	s.SetInt(keyY, st.Y)
	s.SetBool(keyMaximized, st.Maximized)
}

// Restore reads the saved window state and repairs it for the given
// screen. A saved size is validated against the screen; if either
// dimension is absent the default size is computed instead. A saved
// position is validated against the restored size; if either coordinate
// is absent the window is centered.
func Restore(s Store, screenWidth, screenHeight int) State {
	var size geometry.Size
	w, okW := s.Int(keyWidth)
	h, okH := s.Int(keyHeight)
	if okW && okH {
		size = geometry.ValidateSize(w, h, screenWidth, screenHeight)
	} else {
		size = geometry.DefaultSize(screenWidth, screenHeight)
	}

	var pos geometry.Position
	x, okX := s.Int(keyX)
	y, okY := s.Int(keyY)
	if okX && okY {
		pos = geometry.ValidatePosition(x, y, size.Width, size.Height, screenWidth, screenHeight)
	} else {
		pos = geometry.Center(size.Width, size.Height, screenWidth, screenHeight)
	}

	maximized, _ := s.Bool(keyMaximized)

	return State{
		Width:     size.Width,
		Height:    size.Height,
		X:         pos.X,
		Y:         pos.Y,
		Maximized: maximized,
	}
}

// PreferencesStore adapts fyne.Preferences to the Store interface.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps an application's preferences.
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Int reports the stored value for key, if any. fyne.Preferences has no
// existence check, so the key is probed with two distinct fallbacks: a
// stored value answers the same both times, an absent key does not.
func (p *PreferencesStore) Int(key string) (int, bool) {
	a := p.prefs.IntWithFallback(key, 0)
	b := p.prefs.IntWithFallback(key, 1)
	if a != b {
		return 0, false
	}
	return a, true
}

// SetInt stores value under key.
func (p *PreferencesStore) SetInt(key string, value int) {
	p.prefs.SetInt(key, value)
}

// Bool reports the stored value for key, if any, using the same
// two-fallback probe as Int.
func (p *PreferencesStore) Bool(key string) (bool, bool) {
	a := p.prefs.BoolWithFallback(key, false)
	b := p.prefs.BoolWithFallback(key, true)
	if a != b {
		return false, false
	}
	return a, true
}

// SetBool stores value under key.
func (p *PreferencesStore) SetBool(key string, value bool) {
	p.prefs.SetBool(key, value)
}
