// Package signature holds the table of file-type magic bytes used to rebuild
// the leading header of a partially encrypted file.
package signature

import (
	"bytes"
	"strings"

	"github.com/samber/lo"
)

var (
	zipBytes    = []byte{0x50, 0x4B, 0x03, 0x04, 0x50, 0x4B, 0x05, 0x06}
	officeBytes = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	jpegBytes   = []byte{0xFF, 0xD8, 0xFF, 0xE0}
	pdfBytes    = []byte{
		0x25, 0x50, 0x44, 0x46, 0x2D, 0x31, 0x2E, 0x33,
		0x0A, 0x25, 0xC4, 0xE5, 0xF2, 0xE5, 0xEB, 0xA7,
	}
)

// Registry maps an upper-cased file type to the bytes expected at offset 0
// of a valid file of that type. A zero-length signature means the type has no
// fixed header but is still recoverable.
//
// A Registry is never mutated after construction: Merge and Restrict return
// new registries, and Lookup returns a copy of the stored bytes.
type Registry struct {
	signatures map[string][]byte
}

// New builds a registry from the given table. Keys are normalised to upper
// case; when two keys collide after normalisation the last one in iteration
// order wins, so callers should not rely on case to distinguish types.
func New(table map[string][]byte) Registry {
	signatures := make(map[string][]byte, len(table))
	for fileType, header := range table {
		signatures[Normalize(fileType)] = bytes.Clone(orEmpty(header))
	}
	return Registry{signatures: signatures}
}

// Default returns the built-in table of BandarChor-targeted office formats.
func Default() Registry {
	return New(map[string][]byte{
		"PDF":  pdfBytes,
		"XLS":  officeBytes,
		"DOC":  officeBytes,
		"PPT":  officeBytes,
		"ZIP":  zipBytes,
		"XLSX": zipBytes,
		"DOCX": zipBytes,
		"PPTX": zipBytes,
		"JPEG": jpegBytes,
		"JPG":  jpegBytes,
		"TXT":  {},
	})
}

// Lookup returns the expected header for fileType, case-insensitively.
func (r Registry) Lookup(fileType string) ([]byte, bool) {
	header, ok := r.signatures[Normalize(fileType)]
	if !ok {
		return nil, false
	}
	return bytes.Clone(orEmpty(header)), true
}

// Merge returns a registry holding r's entries overridden by overlay's.
func (r Registry) Merge(overlay Registry) Registry {
	merged := make(map[string][]byte, len(r.signatures)+len(overlay.signatures))
	for k, v := range r.signatures {
		merged[k] = v
	}
	for k, v := range overlay.signatures {
		merged[k] = v
	}
	return Registry{signatures: merged}
}

// Restrict keeps only the listed types. An empty list keeps everything.
// Listed types that are not registered are ignored: they stay unsupported.
func (r Registry) Restrict(fileTypes []string) Registry {
	allowed := NormalizeAll(fileTypes)
	if len(allowed) == 0 {
		return r
	}
	return Registry{signatures: lo.PickByKeys(r.signatures, allowed)}
}

// Types lists the registered types in no particular order.
func (r Registry) Types() []string {
	return lo.Keys(r.signatures)
}

func (r Registry) Len() int {
	return len(r.signatures)
}

// Normalize upper-cases a type identifier and drops a leading dot.
func Normalize(fileType string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(fileType), "."))
}

// NormalizeAll normalises a user-supplied type list, dropping blanks and duplicates.
func NormalizeAll(fileTypes []string) []string {
	return lo.Uniq(lo.Compact(lo.Map(fileTypes, func(t string, _ int) string {
		return Normalize(t)
	})))
}

func orEmpty(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
