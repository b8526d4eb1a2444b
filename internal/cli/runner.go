package cli

import (
	"context"
	"fmt"

	"dirstat-tool/internal/export"
	"dirstat-tool/internal/format"
	"dirstat-tool/internal/scan"
)

// Run scans the configured directory, prints the result and optionally
// writes a report file.
func Run(cfg *RunnerConfig) error {
	if cfg.Dir == "" {
		return fmt.Errorf("directory is required (-d)")
	}

	if cfg.Verbose {
		fmt.Printf("Scanning %s ...\n", cfg.Dir)
	}

	result, err := scan.Scan(context.Background(), cfg.Dir)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Println(format.Result(&result))
	} else {
		fmt.Println(format.Line(&result))
	}

	if cfg.OutputPath != "" {
		if err := export.WriteReport(cfg.OutputPath, &result); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		if cfg.Verbose {
			fmt.Printf("Report saved to: %s\n", cfg.OutputPath)
		}
	}

	return nil
}
