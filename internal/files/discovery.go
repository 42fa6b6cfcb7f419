package files

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
	logger   *slog.Logger
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string, logger *slog.Logger) *Discovery {
	if logger == nil {
		logger = slog.Default()
	}
	return &Discovery{basePath: basePath, logger: logger}
}

// statsExtensions lists supported stats file extensions, in the order
// they are preferred when a directory holds several candidates.
var statsExtensions = []string{".csv", ".xlsx"}

// FindStatsFiles finds all season stats files in the specified directory,
// CSV files first, each group sorted by name.
func (d *Discovery) FindStatsFiles(dir string) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	byExt := make(map[string][]FileInfo)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		supported := false
		for _, candidate := range statsExtensions {
			if ext == candidate {
				supported = true
				break
			}
		}
		if !supported {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		byExt[ext] = append(byExt[ext], FileInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	var files []FileInfo
	for _, ext := range statsExtensions {
		group := byExt[ext]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Name < group[j].Name
		})
		files = append(files, group...)
	}

	return files, nil
}

// ResolveStatsFile turns a path into a single stats file. A directory is
// searched for candidates; merging several files is out of scope, so
// only the preferred match is used and the rest are reported in a warning.
func (d *Discovery) ResolveStatsFile(path string) (string, error) {
	fullPath := d.resolve(path)

	info, err := os.Stat(fullPath)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return fullPath, nil
	}

	candidates, err := d.FindStatsFiles(fullPath)
	if err != nil {
		return "", err
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no stats files found in %s", fullPath)
	}
	if len(candidates) > 1 {
		d.logger.Warn("Multiple stats files found, using first",
			slog.String("dir", fullPath),
			slog.String("selected", candidates[0].Name),
			slog.Int("candidates", len(candidates)))
	}

	return candidates[0].Path, nil
}

// resolve joins relative paths with the base path
func (d *Discovery) resolve(path string) string {
	if filepath.IsAbs(path) || d.basePath == "" {
		return path
	}
	return filepath.Join(d.basePath, path)
}
