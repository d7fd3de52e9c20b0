// Package pdftext extracts per-page text from PDF schedules.
//
// Extraction prefers row-ordered text so each schedule entry stays on its
// own line, falling back to the flat text stream when row grouping fails.
// Scanned PDFs with no embedded text can be run through ocrmypdf first,
// and extracted pages are cached by file fingerprint so repeat runs skip
// the PDF entirely.
package pdftext
