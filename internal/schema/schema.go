// Package schema extracts the ordered list of raw table identifiers from a
// schema source file.
//
// Three source formats are supported, picked by file extension: Go type
// definitions (the primary format), YAML documents mirroring the same
// nesting, and SQL DDL. All three yield table names in declaration order;
// no sorting or de-duplication is applied.
package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extract reads the schema file at path and returns the raw table names it
// declares, in source order. An empty result is valid and means the schema
// declares no tables.
func Extract(path string) ([]string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".go":
		return extractGo(path, src)
	case ".yaml", ".yml":
		return extractYAML(src)
	case ".sql":
		return extractSQL(string(src))
	default:
		return nil, fmt.Errorf("unsupported schema format %q (want .go, .yaml or .sql)", ext)
	}
}
