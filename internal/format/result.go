package format

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"dirstat-tool/internal/scan"
)

// Line produces a single-line summary of a scan result.
func Line(r *scan.Result) string {
	return fmt.Sprintf("%s: %d files, %d dirs, %s",
		r.Root, r.Files, r.Dirs, humanize.Bytes(uint64(r.Bytes)))
}

// Result produces a human-readable formatted report of a scan result.
func Result(r *scan.Result) string {
	var b strings.Builder

	b.WriteString("=== Folder Statistics ===\n")
	b.WriteString(fmt.Sprintf("Folder:          %s\n", r.Root))
	b.WriteString(fmt.Sprintf("Files:           %d\n", r.Files))
	b.WriteString(fmt.Sprintf("Directories:     %d\n", r.Dirs))
	b.WriteString(fmt.Sprintf("Total size:      %s (%d bytes)\n", humanize.Bytes(uint64(r.Bytes)), r.Bytes))

	if r.Skipped > 0 {
		b.WriteString(fmt.Sprintf("Skipped:         %d unreadable entries\n", r.Skipped))
	}

	b.WriteString("=========================")
	return b.String()
}
