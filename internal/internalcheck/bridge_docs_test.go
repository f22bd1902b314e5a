package internalcheck

import (
	"fmt"
	"go/ast"
	"go/parser"
	"strings"
	"testing"
)

// Everything exported by the bridge is read by binding authors through godoc.
func TestBridgeExportsAreDocumented(t *testing.T) {
	pkgs, fset := loadFiles(t, parser.ParseComments, bridgePath)

	var findings []string
	for _, f := range pkgs[bridgePath] {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Name.IsExported() && d.Doc == nil {
					findings = append(findings, fmt.Sprintf("%s: %s has no doc comment", fset.Position(d.Pos()), d.Name.Name))
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok || !ts.Name.IsExported() {
						continue
					}
					st, ok := ts.Type.(*ast.StructType)
					if !ok {
						continue
					}
					for _, field := range st.Fields.List {
						for _, name := range field.Names {
							if name.IsExported() && field.Doc == nil && field.Comment == nil {
								findings = append(findings, fmt.Sprintf("%s: %s.%s has no doc comment", fset.Position(name.Pos()), ts.Name.Name, name.Name))
							}
						}
					}
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("undocumented bridge API:\n%s", strings.Join(findings, "\n"))
	}
}
