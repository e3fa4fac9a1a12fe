package schema

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// extractGo finds table declarations in a Go schema source. A table is a
// named field of a struct literal that is the type of a field called
// exactly "Tables", where Tables itself sits inside another struct literal
// that is the type of a field:
//
//	type Database struct {
//		Public struct {
//			Tables struct {
//				post      struct{ ... }
//				user_type struct{ ... }
//			}
//		}
//	}
//
// The names of the surrounding levels (Database, Public) do not matter;
// what matters is that both nesting levels are anonymous struct literals.
// A Tables field whose type is a named struct does not match, and neither
// does a Tables field declared directly in a top-level type. Embedded
// (unnamed) entries under Tables are skipped.
func extractGo(path string, src []byte) ([]string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	var tables []string
	ast.Inspect(file, func(n ast.Node) bool {
		outer, ok := n.(*ast.Field)
		if !ok {
			return true
		}
		lit, ok := outer.Type.(*ast.StructType)
		if !ok || lit.Fields == nil {
			return true
		}
		for _, f := range lit.Fields.List {
			if !fieldNamed(f, "Tables") {
				continue
			}
			inner, ok := f.Type.(*ast.StructType)
			if !ok || inner.Fields == nil {
				continue
			}
			for _, tf := range inner.Fields.List {
				for _, name := range tf.Names {
					tables = append(tables, name.Name)
				}
			}
		}
		return true
	})
	return tables, nil
}

func fieldNamed(f *ast.Field, name string) bool {
	for _, n := range f.Names {
		if n.Name == name {
			return true
		}
	}
	return false
}
