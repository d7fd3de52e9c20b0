// Package game defines season game records and the shared cleaning pass
// that turns noisy candidate rows into a validated, deduplicated set.
//
// Candidates arrive from two sources, the PDF extractor and already tabular
// CSV files, and both go through the same pipeline: date parsing, season
// window filtering, result and goal bounds, opponent fixup, deduplication,
// and a final sort by date. Rows that fail a check are dropped and counted,
// never raised as errors; only an inverted season window is fatal.
package game
