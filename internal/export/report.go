package export

import (
	"fmt"
	"os"

	"dirstat-tool/internal/format"
	"dirstat-tool/internal/scan"
)

// WriteReport writes a formatted scan report to a text file, creating
// parent directories as needed.
func WriteReport(path string, r *scan.Result) error {
	if err := EnsureDir(path); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(format.Result(r)+"\n"), 0644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}
