package internalcheck

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	modulePath = "github.com/hsiuhsiu/mpibridge-go"
	bridgePath = modulePath + "/pkg/mpiconst"
)

// loadFiles lists the packages matching patterns without running cgo, so the
// checks work on hosts without MPI, and parses their Go files.
func loadFiles(t *testing.T, mode parser.Mode, patterns ...string) (map[string][]*ast.File, *token.FileSet) {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Env:  append(os.Environ(), "CGO_ENABLED=1"),
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	fset := token.NewFileSet()
	files := make(map[string][]*ast.File)
	for _, pkg := range pkgs {
		for _, name := range pkg.GoFiles {
			f, err := parser.ParseFile(fset, name, nil, mode)
			if err != nil {
				t.Fatalf("parse %s: %v", name, err)
			}
			files[pkg.PkgPath] = append(files[pkg.PkgPath], f)
		}
	}
	if len(files) == 0 {
		t.Fatalf("no packages matched %v", patterns)
	}
	return files, fset
}
