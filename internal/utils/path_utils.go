package utils

import (
	"path/filepath"
	"strings"

	"github.com/flux-lang/fluxc/internal/config"
)

// ExtractModuleName derives a module name from a file path: the base
// filename with the source extension removed.
func ExtractModuleName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, config.SourceFileExt)
}
