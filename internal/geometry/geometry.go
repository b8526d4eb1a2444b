// Package geometry computes and validates window sizes and positions
// against the current screen work area. All functions are pure and safe
// for concurrent use.
package geometry

// Sizing policy. A default window covers 70% of the work area and leans
// toward a golden-ratio aspect, within fixed bounds.
const (
	GoldenRatio      = 1.618
	MinWidth         = 750
	MinHeight        = 550
	MaxWidth         = 1600
	MaxHeight        = 1200
	WorkAreaFraction = 0.70
)

// Size is a window size in screen units.
type Size struct {
	Width  int
	Height int
}

// Position is a window's top-left offset in screen units.
type Position struct {
	X int
	Y int
}

// DefaultSize computes the default window size for a screen work area.
// The window targets WorkAreaFraction of the screen at a golden-ratio
// aspect, width taking priority: height is derived from width unless the
// screen is too short for that, in which case width is derived from
// height instead. The result is clamped into
// [MinWidth, MaxWidth] x [MinHeight, MaxHeight].
//
// Non-positive screen dimensions degrade to (MinWidth, MinHeight): the
// intermediate arithmetic goes negative and the clamp pins both axes to
// their minimums.
func DefaultSize(screenWidth, screenHeight int) Size {
	width := int(float64(screenWidth) * WorkAreaFraction)
	height := int(float64(screenHeight) * WorkAreaFraction)

	goldenHeight := int(float64(width) / GoldenRatio)
	if goldenHeight <= height {
		height = goldenHeight
	} else {
		// Screen too short for this width at the golden ratio;
		// derive width from height instead.
		width = int(float64(height) * GoldenRatio)
	}

	width = clamp(width, MinWidth, MaxWidth)
	height = clamp(height, MinHeight, MaxHeight)

	// Restore the aspect after a clamp to a maximum shrank one axis.
	// Clamping to a minimum deliberately does not re-harmonize: small
	// screens get the minimum size as-is. At most one axis is adjusted.
	if width == MaxWidth {
		adjusted := int(float64(width) / GoldenRatio)
		if adjusted >= MinHeight && adjusted <= MaxHeight {
			height = adjusted
		}
	} else if height == MaxHeight {
		adjusted := int(float64(height) * GoldenRatio)
		if adjusted >= MinWidth && adjusted <= MaxWidth {
			width = adjusted
		}
	}

	return Size{Width: width, Height: height}
}

// ValidateSize returns the saved size if it is still usable on the given
// screen: at least the minimum size and no larger than the screen itself.
// A saved size above MaxWidth/MaxHeight is still accepted as long as it
// fits the screen; the maximums only bound computed defaults. An unusable
// saved size is discarded entirely in favor of DefaultSize.
func ValidateSize(savedWidth, savedHeight, screenWidth, screenHeight int) Size {
	if savedWidth >= MinWidth && savedHeight >= MinHeight &&
		savedWidth <= screenWidth && savedHeight <= screenHeight {
		return Size{Width: savedWidth, Height: savedHeight}
	}
	return DefaultSize(screenWidth, screenHeight)
}

// ValidatePosition returns the saved position if the window rectangle at
// that position lies fully on screen, otherwise the centered position.
func ValidatePosition(savedX, savedY, windowWidth, windowHeight, screenWidth, screenHeight int) Position {
	if savedX >= 0 && savedY >= 0 &&
		savedX+windowWidth <= screenWidth && savedY+windowHeight <= screenHeight {
		return Position{X: savedX, Y: savedY}
	}
	return Center(windowWidth, windowHeight, screenWidth, screenHeight)
}

// Center returns the position that centers a window on the screen. A
// window larger than the screen is pinned to the origin on that axis.
func Center(windowWidth, windowHeight, screenWidth, screenHeight int) Position {
	x := (screenWidth - windowWidth) / 2
	y := (screenHeight - windowHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Position{X: x, Y: y}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
