// Command mpibridge discovers the MPI installation on the build host and
// generates, inspects and verifies the constant bridge in pkg/mpiconst.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/mpibridge-go/internal/codegen"
	"github.com/hsiuhsiu/mpibridge-go/internal/logging"
	"github.com/hsiuhsiu/mpibridge-go/internal/manifest"
	"github.com/hsiuhsiu/mpibridge-go/internal/probe"
	"github.com/hsiuhsiu/mpibridge-go/internal/verify"
	"github.com/hsiuhsiu/mpibridge-go/internal/version"
)

const usage = `usage: mpibridge [-v] <command> [flags]

commands:
  probe     print the discovered MPI installation
  env       print CGO_CFLAGS/CGO_LDFLAGS for the discovered installation
  manifest  print the symbol table
  generate  write the bridge sources
  verify    link the bridge against mpi.h and check every constant
  version   print tool and symbol table versions
`

// errUsage marks a command line that could not be parsed.
var errUsage = errors.New("usage")

type app struct {
	stdout io.Writer
	stderr io.Writer
	logger logging.Logger

	// runner, environ and goos replace the host in tests.
	runner  probe.Runner
	environ map[string]string
	goos    string
}

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(a.run(context.Background(), os.Args[1:]))
}

func (a *app) run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("mpibridge", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() { fmt.Fprint(a.stderr, usage) }
	verbose := fs.Bool("v", false, "log debug output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	a.logger = logging.NewText(a.stderr, *verbose)

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	commands := map[string]func(context.Context, []string) error{
		"probe":    a.probe,
		"env":      a.env,
		"manifest": a.manifest,
		"generate": a.generate,
		"verify":   a.verify,
		"version":  a.version,
	}
	run, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(a.stderr, "mpibridge: unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}
	if err := run(ctx, rest); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		fmt.Fprintf(a.stderr, "mpibridge %s: %v\n", cmd, err)
		return 1
	}
	return 0
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("mpibridge "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(a.stderr, "%s: unexpected arguments %q\n", fs.Name(), fs.Args())
		return errUsage
	}
	return nil
}

func (a *app) probeConfig() (probe.Config, error) {
	var (
		cfg probe.Config
		err error
	)
	if a.environ != nil {
		cfg, err = probe.LoadConfigFrom(a.environ)
	} else {
		cfg, err = probe.LoadConfig()
	}
	if err != nil {
		return probe.Config{}, err
	}
	if a.goos != "" {
		cfg.GOOS = a.goos
	}
	return cfg, nil
}

func (a *app) verifyOptions() (verify.Options, error) {
	if a.environ != nil {
		return verify.LoadOptionsFrom(a.environ)
	}
	return verify.LoadOptions()
}

func (a *app) discover(ctx context.Context) (*probe.Library, error) {
	cfg, err := a.probeConfig()
	if err != nil {
		return nil, err
	}
	return probe.New(cfg, a.runner, a.logger).Probe(ctx)
}

func (a *app) probe(ctx context.Context, args []string) error {
	fs := a.flags("probe")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	lib, err := a.discover(ctx)
	if err != nil {
		return err
	}
	if *asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(lib)
	}
	_, err = fmt.Fprint(a.stdout, lib)
	return err
}

func (a *app) env(ctx context.Context, args []string) error {
	fs := a.flags("env")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	lib, err := a.discover(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "CGO_CFLAGS=%s\n", shellQuote(strings.Join(lib.CFlags(), " ")))
	fmt.Fprintf(a.stdout, "CGO_LDFLAGS=%s\n", shellQuote(strings.Join(lib.LDFlags(), " ")))
	if lib.MPICC != "" {
		fmt.Fprintf(a.stdout, "CC=%s\n", shellQuote(lib.MPICC))
	}
	return nil
}

func (a *app) manifest(_ context.Context, args []string) error {
	fs := a.flags("manifest")
	format := fs.String("format", "yaml", "output format: yaml, json or symbols")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	m, err := manifest.Load()
	if err != nil {
		return err
	}
	switch *format {
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case "symbols":
		for _, sym := range codegen.ExpectedSymbols(m) {
			fmt.Fprintln(a.stdout, sym)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func (a *app) generate(ctx context.Context, args []string) error {
	fs := a.flags("generate")
	dir := fs.String("dir", ".", "directory receiving the bridge sources")
	preflight := fs.Bool("preflight", false, "compile every constant against mpi.h before writing")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	m, err := manifest.Load()
	if err != nil {
		return err
	}
	lib, err := a.discover(ctx)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "found MPI", "source", lib.Source, "version", lib.Version)

	if *preflight {
		opts, err := a.verifyOptions()
		if err != nil {
			return err
		}
		if err := verify.New(m, lib, opts, a.runner, a.logger).Diagnose(ctx); err != nil {
			return err
		}
	}

	files, err := codegen.Render(m, lib)
	if err != nil {
		return err
	}
	if err := files.Write(*dir); err != nil {
		return err
	}
	a.logger.Info(ctx, "wrote bridge", "dir", *dir, "files", len(files))
	return nil
}

func (a *app) verify(ctx context.Context, args []string) error {
	fs := a.flags("verify")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	m, err := manifest.Load()
	if err != nil {
		return err
	}
	lib, err := a.discover(ctx)
	if err != nil {
		return err
	}
	opts, err := a.verifyOptions()
	if err != nil {
		return err
	}

	r, err := verify.New(m, lib, opts, a.runner, a.logger).Check(ctx)
	if r != nil {
		for _, f := range r.Findings {
			fmt.Fprintln(a.stdout, f.Error())
		}
		if err == nil {
			fmt.Fprintf(a.stdout, "ok: %d symbols match mpi.h\n", len(r.Values))
		}
	}
	return err
}

func (a *app) version(_ context.Context, args []string) error {
	fs := a.flags("version")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "mpibridge %s (%s)\n", version.ToolVersion(), version.Commit)
	fmt.Fprintf(a.stdout, "symbol table version %d\n", version.ManifestVersion())
	return nil
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
