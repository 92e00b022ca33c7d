// Package report aggregates hashtag occurrences into a frequency table and
// renders it, both as a ranked console listing and as a delimited export
// file.
//
// The frequency table (Counter) is accumulated additively over the run and
// read out once at the end. Ranking is by count descending with ties broken
// alphabetically, so equal counts order deterministically across runs.
//
// The export writer supports a small set of charsets chosen for spreadsheet
// compatibility: BOM-prefixed UTF-8 (Excel's preference), plain UTF-8, and
// the Windows-1252 and ISO-8859-15 single-byte encodings. Tokens that cannot
// be represented in a single-byte charset surface as ErrEncoding.
package report
