package verify

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/mod/semver"
	"golang.org/x/sync/errgroup"

	"github.com/hsiuhsiu/mpibridge-go/internal/manifest"
	"github.com/hsiuhsiu/mpibridge-go/internal/probe"
)

// ErrMissingConstant is matched by a MissingError.
var ErrMissingConstant = errors.New("verify: constant missing from mpi.h")

// Missing is a constant the installed headers do not define.
type Missing struct {
	Constant manifest.Constant
	// Reason is the compiler's complaint.
	Reason string
	// TooNew is set when the constant was introduced by a later MPI standard
	// than the library implements.
	TooNew bool
}

// MissingError lists every constant that failed to compile.
type MissingError struct {
	// Standard is the MPI standard version the library reports, empty if it
	// could not be determined.
	Standard string
	Missing  []Missing
}

func (e *MissingError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d constant(s) missing from mpi.h", len(e.Missing))
	if e.Standard != "" {
		fmt.Fprintf(&b, " (library implements MPI-%s)", e.Standard)
	}
	for _, m := range e.Missing {
		fmt.Fprintf(&b, "\n  %s", m.Constant.Macro)
		if m.TooNew {
			fmt.Fprintf(&b, ": introduced in MPI-%s", m.Constant.Since)
		}
		if m.Reason != "" {
			fmt.Fprintf(&b, "\n    %s", strings.ReplaceAll(strings.TrimSpace(m.Reason), "\n", "\n    "))
		}
	}
	return b.String()
}

func (e *MissingError) Is(target error) bool { return target == ErrMissingConstant }

// Diagnose compiles one program per constant and reports every constant
// the installed headers lack. It returns nil when all of them compile.
func Diagnose(ctx context.Context, m *manifest.Manifest, lib *probe.Library, opts Options) error {
	return New(m, lib, opts, nil, nil).Diagnose(ctx)
}

// Diagnose compiles one program per constant, at most Options.Jobs at a
// time.
func (v *Verifier) Diagnose(ctx context.Context) error {
	if err := v.m.Validate(); err != nil {
		return err
	}
	dir, cleanup, err := v.scratch()
	if err != nil {
		return err
	}
	defer cleanup()

	tmpl, err := v.templates()
	if err != nil {
		return err
	}

	// Without a usable mpi.h every constant would fail alike.
	header := filepath.Join(dir, "header.c")
	if err := v.render(tmpl, "header.c.tmpl", header, nil); err != nil {
		return err
	}
	if err := v.compileObject(ctx, dir, filepath.Join(dir, "header.o"), header); err != nil {
		return fmt.Errorf("%w: mpi.h does not compile: %v", ErrBuild, err)
	}

	var (
		mu      sync.Mutex
		missing []Missing
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.opts.jobs())
	for _, c := range v.m.Constants {
		c := c
		g.Go(func() error {
			src := filepath.Join(dir, "probe_"+strings.ToLower(c.Name)+".c")
			if err := v.render(tmpl, "probe.c.tmpl", src, c); err != nil {
				return err
			}
			out := strings.TrimSuffix(src, ".c") + ".o"
			cerr := v.compileObject(gctx, dir, out, src)
			if cerr == nil {
				return nil
			}
			if gctx.Err() != nil {
				return gctx.Err()
			}
			v.logger.Debug(gctx, "constant does not compile", "macro", c.Macro, "error", cerr)
			mu.Lock()
			missing = append(missing, Missing{Constant: c, Reason: cerr.Error()})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	std, err := v.StandardVersion(ctx)
	if err != nil {
		v.logger.Warn(ctx, "cannot determine MPI standard version", "error", err)
	}
	for i := range missing {
		missing[i].TooNew = newerThan(missing[i].Constant.Since, std)
	}
	order := make(map[string]int, len(v.m.Constants))
	for i, c := range v.m.Constants {
		order[c.Name] = i
	}
	sort.Slice(missing, func(i, j int) bool {
		return order[missing[i].Constant.Name] < order[missing[j].Constant.Name]
	})
	return &MissingError{Standard: std, Missing: missing}
}

var versionRE = regexp.MustCompile(`^\s*(\d+)\.(\d+)\s*$`)

// StandardVersion returns MPI_VERSION.MPI_SUBVERSION of the installed
// headers.
func StandardVersion(ctx context.Context, lib *probe.Library, opts Options) (string, error) {
	return New(nil, lib, opts, nil, nil).StandardVersion(ctx)
}

// StandardVersion compiles and runs a program printing
// MPI_VERSION.MPI_SUBVERSION.
func (v *Verifier) StandardVersion(ctx context.Context) (string, error) {
	dir, cleanup, err := v.scratch()
	if err != nil {
		return "", err
	}
	defer cleanup()

	tmpl, err := template.ParseFS(templateFS, "templates/version.c.tmpl")
	if err != nil {
		return "", fmt.Errorf("verify: parse templates: %w", err)
	}
	src := filepath.Join(dir, "version.c")
	if err := v.render(tmpl, "version.c.tmpl", src, nil); err != nil {
		return "", err
	}
	exe := filepath.Join(dir, "mpibridge_version")
	if err := v.compile(ctx, dir, exe, src); err != nil {
		return "", err
	}
	out, err := v.runner.Run(ctx, exe)
	if err != nil {
		return "", fmt.Errorf("%w: run: %v", ErrBuild, err)
	}
	match := versionRE.FindStringSubmatch(string(out))
	if match == nil {
		return "", fmt.Errorf("%w: unexpected version output %q", ErrBuild, out)
	}
	return match[1] + "." + match[2], nil
}

// compileObject compiles a single source without linking.
func (v *Verifier) compileObject(ctx context.Context, dir, out, src string) error {
	args := []string{"-std=c11", "-I" + dir}
	args = append(args, v.lib.CFlags()...)
	args = append(args, "-c", "-o", out, src)
	_, err := v.runner.Run(ctx, v.lib.Compiler(v.opts.CC), args...)
	return err
}

// newerThan reports whether standard level since is later than std. Both
// are MAJOR.MINOR; an empty value is never newer.
func newerThan(since, std string) bool {
	if since == "" || std == "" {
		return false
	}
	a, b := "v"+since, "v"+std
	if !semver.IsValid(a) || !semver.IsValid(b) {
		return false
	}
	return semver.Compare(a, b) > 0
}
