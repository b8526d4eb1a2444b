package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default assumed work area when the host cannot report one. Fyne does
// not expose monitor geometry, so the GUI uses this unless overridden
// with --screen.
const (
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
)

// RunnerConfig holds all CLI options for a scan run.
type RunnerConfig struct {
	Dir        string
	OutputPath string
	Verbose    bool

	// Work area used for window geometry in GUI mode.
	ScreenWidth  int
	ScreenHeight int
}

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	return parseArgs(os.Args[1:])
}

func parseArgs(args []string) (*RunnerConfig, error) {
	cfg := &RunnerConfig{
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
	}

	fs := flag.NewFlagSet("dirstat-tool", flag.ContinueOnError)

	fs.StringVar(&cfg.Dir, "d", "", "Directory to scan (required)")
	fs.StringVar(&cfg.Dir, "dir", "", "Directory to scan (required)")
	fs.StringVar(&cfg.OutputPath, "o", "", "Output report file")
	fs.StringVar(&cfg.OutputPath, "output", "", "Output report file")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	screen := fs.String("screen", "", "Work area as WIDTHxHEIGHT (GUI mode, default 1920x1080)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *screen != "" {
		w, h, err := ParseScreen(*screen)
		if err != nil {
			return nil, err
		}
		cfg.ScreenWidth = w
		cfg.ScreenHeight = h
	}

	return cfg, nil
}

// ParseScreen parses a "WIDTHxHEIGHT" string into positive dimensions.
func ParseScreen(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid screen size %q, expected WIDTHxHEIGHT", s)
	}
	w, errW := strconv.Atoi(parts[0])
	h, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid screen size %q, expected positive WIDTHxHEIGHT", s)
	}
	return w, h, nil
}

// PrintUsage prints CLI usage information.
func PrintUsage() {
	fmt.Println(`dirstat-tool - folder statistics viewer

Usage:
  dirstat-tool                    Launch GUI
  dirstat-tool -d <dir> [options] Scan a directory and print statistics

Options:
  -d, --dir <path>     Directory to scan
  -o, --output <path>  Write a text report to this file
  -v, --verbose        Verbose output
      --screen WxH     Work area for GUI window placement (default 1920x1080)
  -h, --help           Show this help`)
}
