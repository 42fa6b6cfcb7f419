package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all resolved file system paths used by a run.
// It is constructed explicitly from configuration and passed down;
// nothing in the application reads paths from process-wide state.
//
// Directory structure relative to the base directory:
//
//	base/
//	  ├── input/    (season stats files, CSV or Excel)
//	  ├── output/   (generated reports)
//	  └── logs/     (application logs)
type Paths struct {
	BaseDir    string
	InputDir   string
	ReportsDir string
	LogsDir    string

	// Well-known report files
	ReportJSON string
	SummaryCSV string
}

// NewPaths resolves the configured directories against the base directory.
func NewPaths(cfg PathsConfig) *Paths {
	base := cfg.BaseDir
	if base == "" {
		base = "."
	}

	resolve := func(dir, fallback string) string {
		if dir == "" {
			dir = fallback
		}
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(base, dir)
	}

	reportsDir := resolve(cfg.ReportsDir, "output")

	return &Paths{
		BaseDir:    base,
		InputDir:   resolve(cfg.InputDir, "input"),
		ReportsDir: reportsDir,
		LogsDir:    resolve(cfg.LogsDir, "logs"),

		ReportJSON: filepath.Join(reportsDir, "season_report.json"),
		SummaryCSV: filepath.Join(reportsDir, "season_summary.csv"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.InputDir,
		p.ReportsDir,
		p.LogsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetLogPath returns the path for a log file with the given name
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// GetReportPath returns the path for a report file with the given name
func (p *Paths) GetReportPath(name string) string {
	return filepath.Join(p.ReportsDir, name)
}
