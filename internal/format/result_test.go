package format

import (
	"strings"
	"testing"

	"dirstat-tool/internal/scan"
)

func TestLine(t *testing.T) {
	r := &scan.Result{Root: "/data/photos", Files: 120, Dirs: 8, Bytes: 2_500_000_000}

	got := Line(r)
	want := "/data/photos: 120 files, 8 dirs, 2.5 GB"
	if got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestResult(t *testing.T) {
	r := &scan.Result{Root: "/data/photos", Files: 120, Dirs: 8, Bytes: 2_500_000_000}

	out := Result(r)

	if !strings.Contains(out, "=== Folder Statistics ===") {
		t.Error("missing header")
	}
	if !strings.Contains(out, "/data/photos") {
		t.Error("missing folder path")
	}
	if !strings.Contains(out, "Files:           120") {
		t.Error("missing file count")
	}
	if !strings.Contains(out, "Directories:     8") {
		t.Error("missing directory count")
	}
	if !strings.Contains(out, "2.5 GB") {
		t.Error("missing human-readable size")
	}
	if !strings.Contains(out, "(2500000000 bytes)") {
		t.Error("missing exact byte count")
	}
	if strings.Contains(out, "Skipped") {
		t.Error("should not show skipped line when nothing was skipped")
	}
}

func TestResultWithSkipped(t *testing.T) {
	r := &scan.Result{Root: "/root", Files: 2, Dirs: 1, Bytes: 100, Skipped: 3}

	out := Result(r)

	if !strings.Contains(out, "Skipped:         3 unreadable entries") {
		t.Error("missing skipped line")
	}
}
