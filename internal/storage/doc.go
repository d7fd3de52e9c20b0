// Package storage handles the files hindsight reads and writes.
//
// Game rows travel as CSV with a small set of recognized header aliases,
// summaries are plain text, and extracted page text can be dumped one
// file per page for debugging. Paths starting with ~/ are expanded to
// the user's home directory.
package storage
