// Package exporter writes season analytics output files. The JSON report
// is the primary artifact; a flat one-row CSV headline export is available
// for spreadsheet consumers. Writers create parent directories as needed
// and never modify the report values they are handed.
package exporter
