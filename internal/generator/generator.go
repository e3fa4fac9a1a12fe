// Package generator assembles the generated accessor source. It derives
// name forms for every table the schema declares, renders one method group
// per table, and splices the groups into the template that lives beside
// the output file.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shireesh.com/indium/internal/naming"
	"shireesh.com/indium/internal/schema"
	"shireesh.com/indium/store"
)

const (
	// Marker is the placeholder line the template carries exactly once.
	// Generated method groups replace its first occurrence; any further
	// occurrence is a template-authoring mistake and is left in place.
	Marker = "// indium:generated"

	// TemplateFileName is the fixed template name. It always resolves
	// relative to the output file's directory and is never passed in.
	TemplateFileName = "store.go.tpl"
)

// TemplatePath returns the template location for a given output path.
func TemplatePath(outPath string) string {
	return filepath.Join(filepath.Dir(outPath), TemplateFileName)
}

// EnsureTemplate writes the canonical template at path unless a file is
// already there. An existing template is left completely untouched, so
// hand edits to the generic primitives survive regeneration.
func EnsureTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat template: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create template dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(store.Template), 0o644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}

// Generate runs the full pipeline: ensure the template next to outPath,
// extract table names from schemaPath, render a method group per table in
// extraction order, substitute them into the template and write the result
// to outPath, replacing any previous output wholesale. It returns the
// number of tables generated.
//
// Regeneration is idempotent by overwrite: the same schema and template
// produce byte-identical output, and manual edits to the output file are
// lost on every run. The template is the place to edit.
func Generate(schemaPath, outPath string) (int, error) {
	tplPath := TemplatePath(outPath)
	if err := EnsureTemplate(tplPath); err != nil {
		return 0, err
	}

	tables, err := schema.Extract(schemaPath)
	if err != nil {
		return 0, err
	}

	blocks := make([]string, 0, len(tables))
	for _, table := range tables {
		block, err := synthesize(table, naming.Derive(table))
		if err != nil {
			return 0, err
		}
		blocks = append(blocks, block)
	}

	content, err := os.ReadFile(tplPath)
	if err != nil {
		return 0, fmt.Errorf("read template: %w", err)
	}
	out := strings.Replace(string(content), Marker, strings.Join(blocks, "\n\n"), 1)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}
	// Full replace, not a merge. A failed remove is logged and the write
	// still attempts the overwrite.
	if _, err := os.Stat(outPath); err == nil {
		if err := os.Remove(outPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not remove previous output: %v\n", err)
		}
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return 0, fmt.Errorf("write output: %w", err)
	}
	return len(tables), nil
}
