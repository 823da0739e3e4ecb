//go:build tools
// +build tools

// Package tools pins the mockgen dependency used by the go:generate
// directives in contract/ and infrastructure/storage/.
package file_restorer

import (
	_ "go.uber.org/mock/mockgen"
)
