// Package suffix recognises filenames renamed by the ransomware and derives the
// original filename and file type from them.
package suffix

import (
	"file-restorer/errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultPattern covers the known BandarChor naming variants:
// ".id-<10 digits>_<fu|fudx|europay>@<lycos|india>.com" at the end of the name.
const DefaultPattern = `\.id-\d{10}_(?:fu|fudx|europay)@(?:lycos|india)\.com`

// Match is the result of a successful filename match.
type Match struct {
	// Suffix is the literal substring appended by the ransomware.
	Suffix string
	// Filename is the input name with the first occurrence of Suffix removed.
	Filename string
	// FileType is the upper-cased extension of Filename, without the dot.
	// Empty when Filename has no extension.
	FileType string
}

type Matcher struct {
	pattern *regexp.Regexp
}

// NewMatcher compiles pattern and anchors it to the end of the filename if it
// is not already anchored.
func NewMatcher(pattern string) (*Matcher, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", errors.ErrInvalidPattern)
	}
	if !strings.HasSuffix(pattern, "$") {
		pattern = "(?:" + pattern + ")$"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidPattern, err)
	}
	return &Matcher{pattern: re}, nil
}

func MustDefault() *Matcher {
	m, err := NewMatcher(DefaultPattern)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Matcher) String() string {
	return m.pattern.String()
}

// Match tests a bare filename (never a path) against the pattern.
func (m *Matcher) Match(filename string) (Match, bool) {
	loc := m.pattern.FindStringIndex(filename)
	if loc == nil || loc[0] == loc[1] {
		return Match{}, false
	}
	matched := filename[loc[0]:loc[1]]
	derived := strings.Replace(filename, matched, "", 1)
	return Match{
		Suffix:   matched,
		Filename: derived,
		FileType: strings.ToUpper(Extension(derived)),
	}, true
}

// Extension returns the text after the last dot of name, without the dot.
// Leading dots do not start an extension, so ".profile" has none.
func Extension(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndex(trimmed, ".")
	if i < 0 {
		return ""
	}
	return trimmed[i+1:]
}
