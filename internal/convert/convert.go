// Package convert provides display conversions as one-way wrappers over
// data bindings: each wraps a source binding and formats its value on
// Get. Writing through a wrapper is not supported (except for the status
// conversion, which parses best-effort) and fails with ErrOneWay.
package convert

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"github.com/dustin/go-humanize"

	"dirstat-tool/internal/scan"
)

// ErrOneWay is returned by Set on conversions that only run forward.
var ErrOneWay = errors.New("convert: one-way binding")

// NewByteCountString presents an int binding holding a byte count as a
// human-readable size ("1.4 MB").
func NewByteCountString(src binding.Int) binding.String {
	return &byteCountString{src: src}
}

type byteCountString struct {
	src binding.Int
}

func (b *byteCountString) Get() (string, error) {
	v, err := b.src.Get()
	if err != nil {
		return "", err
	}
	if v < 0 {
		v = 0
	}
	return humanize.Bytes(uint64(v)), nil
}

func (b *byteCountString) Set(string) error { return ErrOneWay }

func (b *byteCountString) AddListener(l binding.DataListener)    { b.src.AddListener(l) }
func (b *byteCountString) RemoveListener(l binding.DataListener) { b.src.RemoveListener(l) }

// NewCountString presents an int binding as a labeled count, picking the
// singular or plural noun: "1 file", "7 files".
func NewCountString(src binding.Int, singular, plural string) binding.String {
	return &countString{src: src, singular: singular, plural: plural}
}

type countString struct {
	src              binding.Int
	singular, plural string
}

func (c *countString) Get() (string, error) {
	v, err := c.src.Get()
	if err != nil {
		return "", err
	}
	noun := c.plural
	if v == 1 {
		noun = c.singular
	}
	return fmt.Sprintf("%d %s", v, noun), nil
}

func (c *countString) Set(string) error { return ErrOneWay }

func (c *countString) AddListener(l binding.DataListener)    { c.src.AddListener(l) }
func (c *countString) RemoveListener(l binding.DataListener) { c.src.RemoveListener(l) }

// NewStatusString presents an int binding holding a scan.Status as its
// display name. This conversion runs both ways: Set parses the name
// best-effort, writing StatusIdle for anything unrecognized.
func NewStatusString(src binding.Int) binding.String {
	return &statusString{src: src}
}

type statusString struct {
	src binding.Int
}

func (s *statusString) Get() (string, error) {
	v, err := s.src.Get()
	if err != nil {
		return "", err
	}
	return scan.Status(v).String(), nil
}

func (s *statusString) Set(name string) error {
	return s.src.Set(int(scan.ParseStatus(name)))
}

func (s *statusString) AddListener(l binding.DataListener)    { s.src.AddListener(l) }
func (s *statusString) RemoveListener(l binding.DataListener) { s.src.RemoveListener(l) }

// NewNonEmpty presents a string binding as a flag that is true while the
// string is non-empty.
func NewNonEmpty(src binding.String) binding.Bool {
	return &nonEmpty{src: src}
}

type nonEmpty struct {
	src binding.String
}

func (n *nonEmpty) Get() (bool, error) {
	v, err := n.src.Get()
	if err != nil {
		return false, err
	}
	return v != "", nil
}

func (n *nonEmpty) Set(bool) error { return ErrOneWay }

func (n *nonEmpty) AddListener(l binding.DataListener)    { n.src.AddListener(l) }
func (n *nonEmpty) RemoveListener(l binding.DataListener) { n.src.RemoveListener(l) }

// BindVisibility shows obj while src is true and hides it while src is
// false, or the opposite with invert. The object is set to the current
// value immediately and follows the binding afterwards.
func BindVisibility(obj fyne.CanvasObject, src binding.Bool, invert bool) {
	src.AddListener(binding.NewDataListener(func() {
		visible, err := src.Get()
		if err != nil {
			return
		}
		if invert {
			visible = !visible
		}
		if visible {
			obj.Show()
		} else {
			obj.Hide()
		}
	}))
}
