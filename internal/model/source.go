// Package model defines the data structures shared by the scanner layers.
package model

// Path represents a file system path.
type Path string

// Enumeration is the result of walking a scan root.
type Enumeration struct {
	Root Path
	// Candidates are the files selected for verification, in walk order.
	Candidates []Path
	// Total counts every regular file traversed, matching or not.
	Total int
	// Skipped lists directories and entries that could not be read.
	Skipped []Path
}

// NonMatching returns the number of traversed files that were not selected.
func (e Enumeration) NonMatching() int {
	return e.Total - len(e.Candidates)
}
