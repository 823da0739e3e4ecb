package recovery

import (
	"file-restorer/domain/suffix"
	"path/filepath"
)

// OutputPrefix is prepended to the derived filename of every rebuilt file.
const OutputPrefix = "CORRUPT__"

// Candidate is a file whose name matched the ransomware suffix pattern.
type Candidate struct {
	Path     string
	Suffix   string
	Filename string
	FileType string
}

func NewCandidate(path string, match suffix.Match) Candidate {
	return Candidate{
		Path:     path,
		Suffix:   match.Suffix,
		Filename: match.Filename,
		FileType: match.FileType,
	}
}

// OutputPath is where the rebuilt copy is written: same directory as the
// source, named CORRUPT__<derived filename>.
func (c Candidate) OutputPath() string {
	return filepath.Join(filepath.Dir(c.Path), OutputPrefix+c.Filename)
}
