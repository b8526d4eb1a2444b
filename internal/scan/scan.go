// Package scan walks a directory tree and accumulates file statistics.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Status describes where a scan currently is.
type Status int

const (
	StatusIdle Status = iota
	StatusScanning
	StatusDone
	StatusFailed
)

var statusNames = [...]string{"Idle", "Scanning", "Done", "Failed"}

// String returns the display name of the status.
func (s Status) String() string {
	if s < StatusIdle || s > StatusFailed {
		return "Idle"
	}
	return statusNames[s]
}

// ParseStatus parses a display name back into a Status, ignoring case.
// Unrecognized input falls back to StatusIdle.
func ParseStatus(name string) Status {
	for i, n := range statusNames {
		if strings.EqualFold(name, n) {
			return Status(i)
		}
	}
	return StatusIdle
}

// Result holds the accumulated statistics of one scan.
type Result struct {
	Root    string
	Files   int
	Dirs    int
	Bytes   int64 // total size of regular files
	Skipped int   // entries that could not be read
}

// Scan walks the tree rooted at root and returns its statistics. The
// root directory itself is not counted. Unreadable entries are counted
// in Skipped rather than aborting the walk; only a missing or unreadable
// root, or context cancellation, is an error.
func Scan(ctx context.Context, root string) (Result, error) {
	res := Result{Root: root}

	info, err := os.Stat(root)
	if err != nil {
		return res, fmt.Errorf("scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("scan %s: not a directory", root)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			res.Skipped++
			return nil
		}
		if path == root {
			return nil
		}
		switch {
		case d.IsDir():
			res.Dirs++
		case d.Type().IsRegular():
			fi, statErr := d.Info()
			if statErr != nil {
				res.Skipped++
				return nil
			}
			res.Files++
			res.Bytes += fi.Size()
		default:
			// Symlinks, sockets etc. count as files with no size.
			res.Files++
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("scan %s: %w", root, err)
	}

	return res, nil
}
