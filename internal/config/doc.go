// Package config provides layered configuration for the season analytics
// tools. Values are loaded from environment variables (GRIDSTATS_ prefix),
// optionally merged with a config.yaml file, validated, and resolved into
// an explicit Paths value that callers pass down to the loader, exporter,
// and logger.
package config
