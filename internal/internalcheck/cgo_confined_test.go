package internalcheck

import (
	"fmt"
	"go/parser"
	"strconv"
	"strings"
	"testing"
)

func TestOnlyBridgeImportsC(t *testing.T) {
	pkgs, fset := loadFiles(t, parser.ImportsOnly, modulePath+"/...")

	var findings []string
	sawBridge := false
	for path, files := range pkgs {
		for _, f := range files {
			for _, imp := range f.Imports {
				p, err := strconv.Unquote(imp.Path.Value)
				if err != nil || p != "C" {
					continue
				}
				if path == bridgePath {
					sawBridge = true
					continue
				}
				findings = append(findings, fmt.Sprintf("%s: cgo outside %s", fset.Position(imp.Pos()), bridgePath))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo policy violation:\n%s", strings.Join(findings, "\n"))
	}
	if !sawBridge {
		t.Fatalf("%s does not import \"C\"", bridgePath)
	}
}
