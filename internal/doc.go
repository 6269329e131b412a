// Package internal implements the substring extraction engine: it scans
// source text for bracket-delimited literals following a variable name,
// parses each candidate region as a list literal, and concatenates the
// elements in file order.
package internal
