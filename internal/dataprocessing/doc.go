// Package dataprocessing provides the loading and aggregation pipeline for
// season game statistics.
//
// # Architecture
//
// The package is organized into two components:
//
// 1. Loader: reads a season stats file (CSV or Excel) and extracts validated game records
// 2. Analyzer: reduces the game collection into the season analytics report
//
// # Data Flow
//
// The typical data flow through this package:
//
//	Stats File → Loader → []domain.Game → Analyzer → domain.Report
//
// The Loader owns all input validation: rows that are missing required
// fields, fail numeric parsing, or carry unknown home/away or result values
// are skipped with a warning. The Analyzer assumes validated input and is
// total: any finite game collection, including the empty one, produces a
// report without error.
package dataprocessing
