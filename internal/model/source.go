// Package model defines the data structures shared by the documentation coverage tool.
package model

// Path represents a file system path.
type Path string

// File represents a source file selected for analysis.
type File struct {
	ShortPath Path // path relative to the audited root
	FullPath  Path
}
