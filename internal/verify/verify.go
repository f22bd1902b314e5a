package verify

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.uber.org/multierr"

	"github.com/hsiuhsiu/mpibridge-go/internal/codegen"
	"github.com/hsiuhsiu/mpibridge-go/internal/logging"
	"github.com/hsiuhsiu/mpibridge-go/internal/manifest"
	"github.com/hsiuhsiu/mpibridge-go/internal/probe"
)

var (
	// ErrBuild is returned when the verification program cannot be compiled,
	// linked or run.
	ErrBuild = errors.New("verify: build failed")
	// ErrMismatch is returned when the linked program contradicts a property
	// of the bridge.
	ErrMismatch = errors.New("verify: bridge does not match mpi.h")
)

// Properties checked by Check.
const (
	PropertyCompleteness = "completeness"
	PropertyEquality     = "equality"
	PropertyOpacity      = "opacity"
	PropertySize         = "size"
	PropertyDistinct     = "distinctness"
	PropertyStability    = "stability"
)

const (
	partControl = "control"
	partA       = "a"
	partB       = "b"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Finding is one violated property.
type Finding struct {
	Symbol   string
	Property string
	Detail   string
}

func (f Finding) Error() string {
	return fmt.Sprintf("%s: %s: %s", f.Symbol, f.Property, f.Detail)
}

// Value is a symbol as seen by the control part of the program.
type Value struct {
	Symbol   string
	Category string
	Bytes    []byte
}

// Report is the outcome of Check.
type Report struct {
	Values   []Value
	Findings []Finding
}

// Err returns nil when there are no findings and an error wrapping
// ErrMismatch otherwise.
func (r *Report) Err() error {
	if len(r.Findings) == 0 {
		return nil
	}
	var errs error
	for _, f := range r.Findings {
		errs = multierr.Append(errs, f)
	}
	return fmt.Errorf("%w: %d finding(s): %w", ErrMismatch, len(r.Findings), errs)
}

// Verifier compiles and runs checks against one MPI installation.
type Verifier struct {
	m      *manifest.Manifest
	lib    *probe.Library
	opts   Options
	runner probe.Runner
	logger logging.Logger
}

// New returns a Verifier. A nil runner runs tools with os/exec.
func New(m *manifest.Manifest, lib *probe.Library, opts Options, runner probe.Runner, logger logging.Logger) *Verifier {
	if runner == nil {
		runner = probe.ExecRunner{}
	}
	return &Verifier{m: m, lib: lib, opts: opts, runner: runner, logger: logging.OrDiscard(logger)}
}

// Check verifies the bridge for m against lib with the default runner.
func Check(ctx context.Context, m *manifest.Manifest, lib *probe.Library, opts Options) (*Report, error) {
	return New(m, lib, opts, nil, nil).Check(ctx)
}

// Check links the bridge with two consumers and a control part, runs the
// result twice and compares every symbol.
func (v *Verifier) Check(ctx context.Context) (*Report, error) {
	files, err := codegen.Render(v.m, nil)
	if err != nil {
		return nil, err
	}

	dir, cleanup, err := v.scratch()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	for _, name := range []string{codegen.HeaderName, codegen.SourceName} {
		f, _ := files.Lookup(name)
		if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0o644); err != nil {
			return nil, fmt.Errorf("verify: %w", err)
		}
	}

	tmpl, err := v.templates()
	if err != nil {
		return nil, err
	}
	symbols := codegen.ExpectedSymbols(v.m)
	sources := []string{filepath.Join(dir, codegen.SourceName)}
	for _, part := range []string{partA, partB} {
		name := "consumer_" + part + ".c"
		d := struct {
			Header  string
			Part    string
			Symbols []string
		}{codegen.HeaderName, part, symbols}
		if err := v.render(tmpl, "consumer.c.tmpl", filepath.Join(dir, name), d); err != nil {
			return nil, err
		}
		sources = append(sources, filepath.Join(dir, name))
	}
	if err := v.render(tmpl, "control.c.tmpl", filepath.Join(dir, "control.c"), struct{ Manifest *manifest.Manifest }{v.m}); err != nil {
		return nil, err
	}
	sources = append(sources, filepath.Join(dir, "control.c"))

	exe := filepath.Join(dir, "mpibridge_check")
	if err := v.compile(ctx, dir, exe, sources...); err != nil {
		return nil, err
	}

	first, err := v.runReport(ctx, exe)
	if err != nil {
		return nil, err
	}
	second, err := v.runReport(ctx, exe)
	if err != nil {
		return nil, err
	}

	r := v.compare(symbols, first, second)
	v.logger.Debug(ctx, "bridge verified", "symbols", len(symbols), "findings", len(r.Findings))
	return r, r.Err()
}

// observations maps symbol to part to raw bytes.
type observations map[string]map[string][]byte

func (v *Verifier) runReport(ctx context.Context, exe string) (observations, error) {
	out, err := v.runner.Run(ctx, exe)
	if err != nil {
		return nil, fmt.Errorf("%w: run: %v", ErrBuild, err)
	}
	return parseReport(out)
}

// parseReport reads lines of the form "<part> <symbol> <hex bytes>".
func parseReport(out []byte) (observations, error) {
	obs := make(observations)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: report line %d: %q", ErrBuild, line, text)
		}
		raw, err := hex.DecodeString(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: report line %d: %v", ErrBuild, line, err)
		}
		parts, ok := obs[fields[1]]
		if !ok {
			parts = make(map[string][]byte, 3)
			obs[fields[1]] = parts
		}
		parts[fields[0]] = raw
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuild, err)
	}
	return obs, nil
}

func (v *Verifier) categories() map[string]string {
	cats := make(map[string]string)
	for _, cat := range v.m.HandleCategories() {
		cats[v.m.SizeSymbol(cat)] = "size"
	}
	for _, c := range v.m.Constants {
		cats[v.m.Symbol(c)] = string(c.Category)
	}
	return cats
}

// compare applies every property to two runs of the same program. Handles
// may be addresses, which differ between runs, so only integers and widths
// are required to be stable across runs.
func (v *Verifier) compare(symbols []string, first, second observations) *Report {
	r := &Report{}
	add := func(sym, prop, format string, args ...any) {
		r.Findings = append(r.Findings, Finding{Symbol: sym, Property: prop, Detail: fmt.Sprintf(format, args...)})
	}
	cats := v.categories()

	widths := make(map[string]int)
	for _, cat := range v.m.HandleCategories() {
		if raw := first[v.m.SizeSymbol(cat)][partControl]; len(raw) == 4 {
			widths[string(cat)] = int(int32(binary.NativeEndian.Uint32(raw)))
		}
	}

	seen := make(map[string]map[string]string)
	for _, sym := range symbols {
		parts := first[sym]
		control, okC := parts[partControl]
		a, okA := parts[partA]
		b, okB := parts[partB]
		if !okC || !okA || !okB {
			add(sym, PropertyCompleteness, "reported by control=%t a=%t b=%t", okC, okA, okB)
			continue
		}
		cat := cats[sym]
		r.Values = append(r.Values, Value{Symbol: sym, Category: cat, Bytes: control})

		if !bytes.Equal(a, control) {
			add(sym, PropertyEquality, "bridge %x, mpi.h %x", a, control)
		}
		if !bytes.Equal(a, b) {
			add(sym, PropertyOpacity, "consumer a read %x, consumer b read %x", a, b)
		}

		want := 4
		if w, ok := widths[cat]; ok {
			want = w
		}
		if len(a) != want {
			add(sym, PropertySize, "%d bytes, want %d", len(a), want)
		}

		switch cat {
		case "size", string(manifest.Int):
			if again := second[sym][partA]; !bytes.Equal(again, a) {
				add(sym, PropertyStability, "first run %x, second run %x", a, again)
			}
		default:
			key := hex.EncodeToString(control)
			if seen[cat] == nil {
				seen[cat] = make(map[string]string)
			}
			if other, dup := seen[cat][key]; dup {
				add(sym, PropertyDistinct, "same value as %s", other)
			} else {
				seen[cat][key] = sym
			}
		}
	}
	return r
}

func (v *Verifier) scratch() (string, func(), error) {
	dir, err := os.MkdirTemp("", "mpibridge-verify-")
	if err != nil {
		return "", nil, fmt.Errorf("verify: %w", err)
	}
	if v.opts.KeepDir {
		v.logger.Info(context.Background(), "keeping scratch directory", "dir", dir)
		return dir, func() {}, nil
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}

func (v *Verifier) templates() (*template.Template, error) {
	funcs := template.FuncMap{
		"symbol":     v.m.Symbol,
		"sizeSymbol": v.m.SizeSymbol,
	}
	tmpl, err := template.New("verify").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("verify: parse templates: %w", err)
	}
	return tmpl, nil
}

func (v *Verifier) render(tmpl *template.Template, name, path string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("verify: %s: %w", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	return nil
}

// compile builds sources into out with the probed compiler and flags.
func (v *Verifier) compile(ctx context.Context, dir, out string, sources ...string) error {
	cc := v.lib.Compiler(v.opts.CC)
	args := []string{"-std=c11", "-I" + dir}
	args = append(args, v.lib.CFlags()...)
	args = append(args, "-o", out)
	args = append(args, sources...)
	args = append(args, v.lib.LDFlags()...)

	v.logger.Debug(ctx, "compiling", "cc", cc, "args", args)
	if _, err := v.runner.Run(ctx, cc, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrBuild, err)
	}
	return nil
}
