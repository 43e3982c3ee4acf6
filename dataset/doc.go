// Package dataset loads TSP distance matrices from CSV files.
//
// The on-disk dialect is semicolon-separated rows with a comma as the decimal
// separator ("12,5;0;3,25"), the format the laboratory's benchmark files ship
// in. Loading normalizes the decimal separator, parses every field as a
// float64, and hands the rows to tsp.NewMatrix, so a loaded matrix always
// satisfies the distance-oracle contract (square, symmetric, zero diagonal,
// non-negative).
//
// The three benchmark instances (48, 76, and 127 cities) are addressable
// through the Dataset enum, which knows each instance's conventional file
// name, size, and display label.
package dataset
