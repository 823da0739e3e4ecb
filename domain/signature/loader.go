package signature

import (
	"encoding/hex"
	"file-restorer/errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// overlayFile is the on-disk shape of an operator signature file:
//
//	signatures:
//	  PNG: "89504E470D0A1A0A"
//	  LOG: ""
type overlayFile struct {
	Signatures map[string]string `yaml:"signatures"`
}

// LoadFile reads a YAML signature overlay from path.
func LoadFile(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, fmt.Errorf("reading signature file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML overlay where every signature is a hex string.
// Spaces inside the hex string are allowed ("FF D8 FF E0").
func Parse(data []byte) (Registry, error) {
	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Registry{}, fmt.Errorf("%w: %v", errors.ErrInvalidSignature, err)
	}

	table := make(map[string][]byte, len(file.Signatures))
	for fileType, raw := range file.Signatures {
		if Normalize(fileType) == "" {
			return Registry{}, fmt.Errorf("%w: empty file type", errors.ErrInvalidSignature)
		}
		header, err := hex.DecodeString(strings.ReplaceAll(raw, " ", ""))
		if err != nil {
			return Registry{}, fmt.Errorf("%w: %s: %v", errors.ErrInvalidSignature, fileType, err)
		}
		table[fileType] = header
	}
	return New(table), nil
}
