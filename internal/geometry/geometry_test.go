package geometry

import "testing"

func TestDefaultSizeFullHD(t *testing.T) {
	// 1920x1080: 70% target is 1344x756, golden height 830 is too tall,
	// so width is derived from height instead.
	got := DefaultSize(1920, 1080)
	want := Size{Width: 1223, Height: 756}
	if got != want {
		t.Errorf("DefaultSize(1920, 1080) = %+v, want %+v", got, want)
	}
}

func TestDefaultSizeSmallScreen(t *testing.T) {
	// 800x600: 70% target 560x420 is below both minimums.
	got := DefaultSize(800, 600)
	want := Size{Width: MinWidth, Height: MinHeight}
	if got != want {
		t.Errorf("DefaultSize(800, 600) = %+v, want %+v", got, want)
	}
}

func TestDefaultSize4K(t *testing.T) {
	// 3840x2160: width clamps to MaxWidth, then height is re-derived
	// from the clamped width to keep the aspect.
	got := DefaultSize(3840, 2160)
	want := Size{Width: 1600, Height: 988}
	if got != want {
		t.Errorf("DefaultSize(3840, 2160) = %+v, want %+v", got, want)
	}
}

func TestDefaultSizeNarrowLaptop(t *testing.T) {
	// 1366x768: height is pinned to the minimum; the minimum clamp does
	// not re-harmonize, so the aspect is not golden here.
	got := DefaultSize(1366, 768)
	want := Size{Width: 868, Height: 550}
	if got != want {
		t.Errorf("DefaultSize(1366, 768) = %+v, want %+v", got, want)
	}
}

func TestDefaultSizeWithinBounds(t *testing.T) {
	widths := []int{640, 800, 1024, 1280, 1366, 1600, 1920, 2560, 3440, 3840, 5120}
	heights := []int{480, 600, 768, 900, 1080, 1200, 1440, 2160, 2880}

	for _, w := range widths {
		for _, h := range heights {
			got := DefaultSize(w, h)
			if got.Width < MinWidth || got.Width > MaxWidth {
				t.Errorf("DefaultSize(%d, %d).Width = %d, outside [%d, %d]",
					w, h, got.Width, MinWidth, MaxWidth)
			}
			if got.Height < MinHeight || got.Height > MaxHeight {
				t.Errorf("DefaultSize(%d, %d).Height = %d, outside [%d, %d]",
					w, h, got.Height, MinHeight, MaxHeight)
			}
		}
	}
}

func TestDefaultSizeDegenerateScreen(t *testing.T) {
	// Zero or negative screen dimensions degrade to the minimum size.
	for _, s := range [][2]int{{0, 0}, {-100, -100}, {0, 1080}, {1920, 0}} {
		got := DefaultSize(s[0], s[1])
		want := Size{Width: MinWidth, Height: MinHeight}
		if got != want {
			t.Errorf("DefaultSize(%d, %d) = %+v, want %+v", s[0], s[1], got, want)
		}
	}
}

func TestValidateSizeAccepted(t *testing.T) {
	got := ValidateSize(1000, 700, 1920, 1080)
	want := Size{Width: 1000, Height: 700}
	if got != want {
		t.Errorf("ValidateSize(1000, 700, 1920, 1080) = %+v, want %+v", got, want)
	}
}

func TestValidateSizeLargerThanMaxStillAccepted(t *testing.T) {
	// The saved size is bounded by the screen, not MaxWidth/MaxHeight:
	// a user who resized beyond the default maximum keeps that size.
	got := ValidateSize(1800, 1150, 1920, 1200)
	want := Size{Width: 1800, Height: 1150}
	if got != want {
		t.Errorf("ValidateSize(1800, 1150, 1920, 1200) = %+v, want %+v", got, want)
	}
}

func TestValidateSizeBelowMinimum(t *testing.T) {
	got := ValidateSize(500, 400, 1920, 1080)
	want := DefaultSize(1920, 1080)
	if got != want {
		t.Errorf("ValidateSize(500, 400, 1920, 1080) = %+v, want %+v", got, want)
	}
}

func TestValidateSizeExceedsScreen(t *testing.T) {
	// Saved on a larger monitor, restored on a smaller one: discarded
	// entirely, no partial repair.
	got := ValidateSize(2500, 1400, 1920, 1080)
	want := DefaultSize(1920, 1080)
	if got != want {
		t.Errorf("ValidateSize(2500, 1400, 1920, 1080) = %+v, want %+v", got, want)
	}
}

// A computed default always passes its own validation.
func TestValidateSizeDefaultIsStable(t *testing.T) {
	widths := []int{750, 800, 1024, 1366, 1600, 1920, 2560, 3840, 5120}
	heights := []int{550, 600, 768, 900, 1080, 1440, 2160}

	for _, w := range widths {
		for _, h := range heights {
			def := DefaultSize(w, h)
			got := ValidateSize(def.Width, def.Height, w, h)
			if got != def {
				t.Errorf("ValidateSize(DefaultSize(%d, %d)) = %+v, want %+v", w, h, got, def)
			}
		}
	}
}

func TestValidatePositionAccepted(t *testing.T) {
	got := ValidatePosition(100, 50, 800, 600, 1920, 1080)
	want := Position{X: 100, Y: 50}
	if got != want {
		t.Errorf("ValidatePosition(100, 50, ...) = %+v, want %+v", got, want)
	}
}

func TestValidatePositionOffScreen(t *testing.T) {
	// Negative x: the window is partly off screen, fall back to centering.
	got := ValidatePosition(-10, 50, 800, 600, 1920, 1080)
	want := Position{X: 560, Y: 240}
	if got != want {
		t.Errorf("ValidatePosition(-10, 50, 800, 600, 1920, 1080) = %+v, want %+v", got, want)
	}
}

func TestValidatePositionOverhangsEdge(t *testing.T) {
	// x + width > screenWidth.
	got := ValidatePosition(1200, 100, 800, 600, 1920, 1080)
	want := Center(800, 600, 1920, 1080)
	if got != want {
		t.Errorf("ValidatePosition(1200, 100, 800, 600, 1920, 1080) = %+v, want %+v", got, want)
	}
}

func TestValidatePositionExactFit(t *testing.T) {
	// The rectangle touching the screen edge is still fully on screen.
	got := ValidatePosition(1120, 480, 800, 600, 1920, 1080)
	want := Position{X: 1120, Y: 480}
	if got != want {
		t.Errorf("ValidatePosition(1120, 480, 800, 600, 1920, 1080) = %+v, want %+v", got, want)
	}
}

func TestCenter(t *testing.T) {
	got := Center(800, 600, 1920, 1080)
	want := Position{X: 560, Y: 240}
	if got != want {
		t.Errorf("Center(800, 600, 1920, 1080) = %+v, want %+v", got, want)
	}
}

func TestCenterWindowLargerThanScreen(t *testing.T) {
	got := Center(2000, 2000, 1920, 1080)
	want := Position{X: 0, Y: 0}
	if got != want {
		t.Errorf("Center(2000, 2000, 1920, 1080) = %+v, want %+v", got, want)
	}
}

func TestCenterOneAxisPinned(t *testing.T) {
	// Only the oversized axis pins to zero.
	got := Center(800, 1200, 1920, 1080)
	want := Position{X: 560, Y: 0}
	if got != want {
		t.Errorf("Center(800, 1200, 1920, 1080) = %+v, want %+v", got, want)
	}
}
