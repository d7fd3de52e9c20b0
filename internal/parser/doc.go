// Package parser turns raw PDF page text into candidate game records.
//
// The extractor scans each page line by line, and again over adjacent line
// pairs because printed schedules wrap long entries. A line (or pair)
// counts as a schedule entry only when it carries a result letter, a score
// pair and a recognizable date at the same time. Over-generation is
// expected: the same game often matches both alone and as part of a pair,
// and the cleaning pass collapses the duplicates afterwards.
package parser
