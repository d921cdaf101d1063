package grid

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// timestampLayout formats the output filename timestamp as YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

// unsafeNameRuns matches character runs that are stripped from filename
// prefixes.
var unsafeNameRuns = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// resolveOutputPath determines where the grid is written and ensures the
// target directory exists.
//
// Precedence: an explicit outputPath wins verbatim (gaining a ".png"
// extension if missing). Otherwise the file lands in outputDir, or the
// directory of the first item with a non-empty path, or the current working
// directory, under a sanitized prefix plus timestamp name. Directory
// creation failures are fatal for the build and surface as errors.
func resolveOutputPath(s Settings, items []Item, now time.Time) (string, error) {
	if s.OutputPath != "" {
		path := s.OutputPath
		if !strings.EqualFold(filepath.Ext(path), ".png") {
			path += ".png"
		}
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("create output directory %s: %w", dir, err)
			}
		}
		return path, nil
	}

	dir := s.OutputDir
	if dir == "" {
		for _, item := range items {
			if item.Path != "" {
				dir = filepath.Dir(item.Path)
				break
			}
		}
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.png", sanitizeName(s.OutputNamePrefix), now.Format(timestampLayout))
	return filepath.Join(dir, name), nil
}

// sanitizeName reduces a filename prefix to [A-Za-z0-9._-]: every run of
// other characters collapses to a single underscore, and leading or trailing
// underscores are stripped. An empty result falls back to the default
// prefix.
func sanitizeName(name string) string {
	cleaned := unsafeNameRuns.ReplaceAllString(name, "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return DefaultNamePrefix
	}
	return cleaned
}
