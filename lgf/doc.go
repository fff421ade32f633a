// Package lgf reads and writes flow networks in the LEMON Graph Format and
// reads DIMACS max-flow problems.
//
// An LGF file is a sequence of sections introduced by a line that starts with
// '@'. This package understands:
//
//	@nodes        header of column names, then one row per node
//	@arcs         header of map names, then "source target value..." rows
//	              (@edges is accepted as a synonym)
//	@attributes   "name value" pairs, typically "source" and "target"
//
// Tokens are separated by blanks; a token containing blanks is written as a
// Go-style double-quoted string. Lines starting with '#' are comments.
// Unknown sections are skipped.
//
// Read keeps every column as text in a Document; the generic ArcMap and
// NodeMap functions parse a column into any tolerance.Value type, mapping
// "inf" to tolerance.Infinity. Write is the inverse of Read.
//
// Example:
//
//	doc, err := lgf.ReadFile("network.lgf")
//	capacity, err := lgf.ArcMap[int64](doc, "capacity")
//	s, err := doc.Node("source")
//	t, err := doc.Node("target")
package lgf
