// Package models defines the data types shared across the fortune pipeline.
package models

// Fortune is a single snippet parsed from a fortune file.
// Fortunes are created by the parser and never mutated afterwards.
type Fortune struct {
	Source string // base name of the file the fortune came from, used for display grouping
	Text   string // fortune body, may span multiple lines
}
