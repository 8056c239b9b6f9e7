// Package model holds the value types shared by the loggerfix layers.
package model

// Path represents a file system path.
type Path string

// File is a source file loaded into memory for a single processing step.
type File struct {
	Path    Path
	Content string
}

// Repair is the outcome of repairing the text of one file.
type Repair struct {
	// Text is the corrected content.
	Text string
	// Removed counts the misplaced logger imports that were deleted.
	Removed int
	// Inserted reports whether a standalone logger import was added
	// before the first type-only import block.
	Inserted bool
}

// Finding describes a malformed file discovered by a read-only check.
type Finding struct {
	Path     Path   `yaml:"path"`
	Removed  int    `yaml:"removed"`
	Inserted bool   `yaml:"inserted"`
	Diff     string `yaml:"diff,omitempty"`
}
