package codegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/hsiuhsiu/mpibridge-go/internal/manifest"
	"github.com/hsiuhsiu/mpibridge-go/internal/probe"
)

// File names written into the bridge package.
const (
	HeaderName    = "mpibridge.h"
	SourceName    = "mpibridge.c"
	ConstantsName = "zconstants.go"
	FlagsName     = "zcgo_flags.go"
)

// Package is the Go package name of the bridge.
const Package = "mpiconst"

// ErrRender reports a template or formatting failure.
var ErrRender = errors.New("codegen: render failed")

//go:embed templates/*.tmpl
var templateFS embed.FS

// File is one rendered output.
type File struct {
	Name string
	Data []byte
}

// Files is the rendered bridge, in a fixed order.
type Files []File

// Lookup returns the file with the given name.
func (fs Files) Lookup(name string) (File, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}
	return File{}, false
}

type data struct {
	Manifest   *manifest.Manifest
	Library    *probe.Library
	Package    string
	HeaderName string
	SourceName string
	Guard      string
	CFlags     string
	LDFlags    string
}

func parseTemplates(m *manifest.Manifest) (*template.Template, error) {
	funcs := template.FuncMap{
		"symbol":     m.Symbol,
		"sizeSymbol": m.SizeSymbol,
	}
	return template.New("bridge").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
}

// Render produces the bridge sources. With a nil library the host-specific
// flags file is omitted.
func Render(m *manifest.Manifest, lib *probe.Library) (Files, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	tmpl, err := parseTemplates(m)
	if err != nil {
		return nil, fmt.Errorf("%w: parse templates: %v", ErrRender, err)
	}

	d := data{
		Manifest:   m,
		Library:    lib,
		Package:    Package,
		HeaderName: HeaderName,
		SourceName: SourceName,
		Guard:      m.Prefix + "H",
	}
	if lib != nil {
		d.CFlags = directiveArgs(lib.CFlags())
		d.LDFlags = directiveArgs(lib.LDFlags())
	}

	type output struct {
		name, tmpl string
		goSource   bool
	}
	outputs := []output{
		{HeaderName, "header.h.tmpl", false},
		{SourceName, "source.c.tmpl", false},
		{ConstantsName, "constants.go.tmpl", true},
	}
	if lib != nil {
		outputs = append(outputs, output{FlagsName, "flags.go.tmpl", true})
	}

	files := make(Files, 0, len(outputs))
	for _, o := range outputs {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, o.tmpl, d); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRender, o.name, err)
		}
		out := buf.Bytes()
		if o.goSource {
			formatted, err := imports.Process(o.name, out, &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
			if err != nil {
				return nil, fmt.Errorf("%w: format %s: %v", ErrRender, o.name, err)
			}
			out = formatted
		}
		files = append(files, File{Name: o.name, Data: out})
	}
	return files, nil
}

// directiveArgs joins flags for a #cgo line, quoting arguments that contain
// spaces or quotes.
func directiveArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t'\"") {
			a = strconv.Quote(a)
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}

// Write stores every file in dir. Files are first written under temporary
// names. Existing files are moved aside while the new ones are renamed into
// place; if any rename fails, the files already installed are removed and
// the previous ones restored, so a failure leaves the previous bridge
// untouched.
func (fs Files) Write(dir string) (err error) {
	if len(fs) == 0 {
		return errors.New("codegen: nothing to write")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("codegen: %w", err)
	}

	temps := make([]string, 0, len(fs))
	defer func() {
		if err != nil {
			for _, t := range temps {
				_ = os.Remove(t)
			}
		}
	}()

	for _, f := range fs {
		tmp, err := os.CreateTemp(dir, "."+f.Name+".*.tmp")
		if err != nil {
			return fmt.Errorf("codegen: %w", err)
		}
		temps = append(temps, tmp.Name())
		if _, err := tmp.Write(f.Data); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("codegen: write %s: %w", f.Name, err)
		}
		if err := tmp.Chmod(0o644); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("codegen: chmod %s: %w", f.Name, err)
		}
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("codegen: close %s: %w", f.Name, err)
		}
	}
	return install(dir, fs, temps)
}

// replaced records one target touched by install.
type replaced struct {
	target string
	// backup holds the previous file; empty when there was none.
	backup string
	placed bool
}

func install(dir string, fs Files, temps []string) (err error) {
	done := make([]replaced, 0, len(fs))
	defer func() {
		if err != nil {
			rollback(done)
			return
		}
		for _, r := range done {
			if r.backup != "" {
				_ = os.Remove(r.backup)
			}
		}
	}()

	for i, f := range fs {
		r := replaced{target: filepath.Join(dir, f.Name)}
		if fi, statErr := os.Lstat(r.target); statErr == nil && fi.Mode().IsRegular() {
			if r.backup, err = moveAside(dir, r.target, f.Name); err != nil {
				return fmt.Errorf("codegen: back up %s: %w", f.Name, err)
			}
		}
		done = append(done, r)
		if err := os.Rename(temps[i], r.target); err != nil {
			return fmt.Errorf("codegen: install %s: %w", f.Name, err)
		}
		done[len(done)-1].placed = true
	}
	return nil
}

// moveAside renames target to a fresh hidden name in dir and returns it.
func moveAside(dir, target, name string) (string, error) {
	bak, err := os.CreateTemp(dir, "."+name+".*.bak")
	if err != nil {
		return "", err
	}
	path := bak.Name()
	_ = bak.Close()
	if err := os.Rename(target, path); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// rollback undoes install in reverse order.
func rollback(done []replaced) {
	for i := len(done) - 1; i >= 0; i-- {
		r := done[i]
		if r.placed {
			_ = os.Remove(r.target)
		}
		if r.backup != "" {
			_ = os.Rename(r.backup, r.target)
		}
	}
}

var (
	declRE = regexp.MustCompile(`(?m)^extern const [A-Za-z_][A-Za-z0-9_]* ([A-Za-z_][A-Za-z0-9_]*);`)
	defRE  = regexp.MustCompile(`(?m)^const [A-Za-z_][A-Za-z0-9_]* ([A-Za-z_][A-Za-z0-9_]*) =`)
)

// DeclaredSymbols returns the symbols declared extern in a bridge header,
// in order and with repeats.
func DeclaredSymbols(header []byte) []string {
	return submatches(declRE, header)
}

// DefinedSymbols returns the symbols defined in a bridge source, in order
// and with repeats.
func DefinedSymbols(source []byte) []string {
	return submatches(defRE, source)
}

func submatches(re *regexp.Regexp, b []byte) []string {
	var out []string
	for _, m := range re.FindAllSubmatch(b, -1) {
		out = append(out, string(m[1]))
	}
	return out
}

// ExpectedSymbols lists every symbol the bridge must define for m: one width
// symbol per handle category followed by one symbol per constant.
func ExpectedSymbols(m *manifest.Manifest) []string {
	var out []string
	for _, cat := range m.HandleCategories() {
		out = append(out, m.SizeSymbol(cat))
	}
	for _, c := range m.Sorted() {
		out = append(out, m.Symbol(c))
	}
	return out
}
