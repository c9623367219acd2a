// Package qm holds the module-level build metadata for the qm tool.
package qm

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionRaw string

// Version returns the release recorded in VERSION, or "dev" when the file
// is empty.
func Version() string {
	if v := strings.TrimSpace(versionRaw); v != "" {
		return v
	}
	return "dev"
}
