// Package cli implements the command-line interface for hindsight.
//
// The cli package provides the Cobra-based CLI with three subcommands:
// extract pulls schedule rows out of a PDF into CSV, analyze cleans a CSV
// and runs the what-if sensitivity report, and games lists cleaned games
// with filtering, sorting, text or JSON output, and ICS calendar export.
// Sentinel exit codes let scripts distinguish a PDF with no text layer (2)
// from a text layer with no recognizable schedule rows (3).
package cli
