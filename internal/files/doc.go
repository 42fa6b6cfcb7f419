// Package files provides file system discovery utilities for locating
// season stats files. Discovery operations are relative to a base path
// to maintain portability.
//
// Example usage:
//
//	discovery := files.NewDiscovery("/path/to/base", logger)
//	statsFile, err := discovery.ResolveStatsFile("input")
package files
