package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/hsiuhsiu/mpibridge-go/internal/logging"
)

// ErrNotFound reports that no strategy located an MPI library.
var ErrNotFound = errors.New("probe: could not find MPI library")

// NotFoundError carries the reason each strategy failed.
type NotFoundError struct {
	reasons error
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	b.WriteString(ErrNotFound.Error())
	for i, r := range e.Reasons() {
		fmt.Fprintf(&b, "\nReason #%d: %v", i, r)
	}
	return b.String()
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Unwrap returns the combined reasons.
func (e *NotFoundError) Unwrap() error { return e.reasons }

// Reasons lists the failure of every strategy that was attempted, in order.
func (e *NotFoundError) Reasons() []error { return multierr.Errors(e.reasons) }

// Prober runs the discovery strategies.
type Prober struct {
	cfg    Config
	runner Runner
	log    logging.Logger
	// isDir is swapped in tests.
	isDir func(string) bool
}

// New returns a Prober. A nil runner uses ExecRunner; a nil logger discards.
func New(cfg Config, runner Runner, logger logging.Logger) *Prober {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Prober{
		cfg:    cfg,
		runner: runner,
		log:    logging.OrDiscard(logger),
		isDir:  isDir,
	}
}

// Probe is shorthand for New(cfg, nil, nil).Probe(ctx).
func Probe(ctx context.Context, cfg Config) (*Library, error) {
	return New(cfg, nil, nil).Probe(ctx)
}

// Probe returns the first library found, or a *NotFoundError.
func (p *Prober) Probe(ctx context.Context) (*Library, error) {
	if p.cfg.GOOS == "windows" {
		return p.probeWindows(ctx)
	}
	return p.probeUnix(ctx)
}

func (p *Prober) probeUnix(ctx context.Context) (*Library, error) {
	var reasons error

	if p.cfg.PkgConfigFile != "" {
		lib, err := p.pkgConfig(ctx, p.cfg.PkgConfigFile)
		if err == nil {
			lib.Source = "MPI_PKG_CONFIG"
			return p.found(ctx, lib)
		}
		reasons = multierr.Append(reasons, fmt.Errorf(
			"$MPI_PKG_CONFIG is set to %q but is not valid; it must name a pkg-config package or a .pc file. "+
				"Unset $MPI_PKG_CONFIG to use another method: %w", p.cfg.PkgConfigFile, err))
		return nil, &NotFoundError{reasons: reasons}
	}
	reasons = multierr.Append(reasons, errors.New("$MPI_PKG_CONFIG is not set; trying next method"))

	if p.cfg.CrayMPICHDir != "" {
		pc := filepath.Join(p.cfg.CrayMPICHDir, "lib", "pkgconfig", "mpich.pc")
		lib, err := p.pkgConfig(ctx, pc)
		if err == nil {
			lib.Source = "CRAY_MPICH_DIR"
			return p.found(ctx, lib)
		}
		reasons = multierr.Append(reasons, fmt.Errorf("cray mpich (%s): %w", pc, err))
	} else {
		reasons = multierr.Append(reasons, errors.New("$CRAY_MPICH_DIR is not set; trying next method"))
	}

	lib, err := p.mpicc(ctx, p.cfg.MPICC)
	if err == nil {
		return p.found(ctx, lib)
	}
	reasons = multierr.Append(reasons, fmt.Errorf("%s failed: %w; trying next method", p.cfg.MPICC, err))

	for _, name := range []string{"mpich", "ompi"} {
		lib, err := p.pkgConfig(ctx, name)
		if err == nil {
			lib.Source = "pkg-config " + name
			return p.found(ctx, lib)
		}
		reasons = multierr.Append(reasons, fmt.Errorf(
			"pkg-config %s: %w; set $PKG_CONFIG_PATH to a directory containing %s.pc, or prefer $MPI_PKG_CONFIG", name, err, name))
	}

	return nil, &NotFoundError{reasons: reasons}
}

func (p *Prober) probeWindows(ctx context.Context) (*Library, error) {
	if root := p.cfg.IntelMPIRoot; root != "" {
		libDir := filepath.Join(root, "lib", "release")
		if !p.isDir(libDir) {
			libDir = filepath.Join(root, "lib")
		}
		return p.found(ctx, &Library{
			Source:       "I_MPI_ROOT",
			Libs:         []string{"impi"},
			LibPaths:     []string{libDir},
			IncludePaths: []string{filepath.Join(root, "include")},
			Version:      "Intel MPI",
		})
	}
	intelErr := errors.New("I_MPI_ROOT: environment variable not found")

	var msmpiErrs error
	if p.cfg.MSMPIInclude == "" {
		msmpiErrs = multierr.Append(msmpiErrs, errors.New("MSMPI_INC: environment variable not found"))
	}
	var libKey, libDir string
	switch p.cfg.GOARCH {
	case "386":
		libKey, libDir = "MSMPI_LIB32", p.cfg.MSMPILib32
	case "amd64":
		libKey, libDir = "MSMPI_LIB64", p.cfg.MSMPILib64
	default:
		msmpiErrs = multierr.Append(msmpiErrs, fmt.Errorf("MS-MPI does not support architecture %s", p.cfg.GOARCH))
	}
	if libKey != "" && libDir == "" {
		msmpiErrs = multierr.Append(msmpiErrs, fmt.Errorf("%s: environment variable not found", libKey))
	}
	if msmpiErrs != nil {
		return nil, &NotFoundError{reasons: multierr.Append(msmpiErrs, intelErr)}
	}

	return p.found(ctx, &Library{
		Source:       "MSMPI",
		Libs:         []string{"msmpi"},
		LibPaths:     []string{libDir},
		IncludePaths: []string{p.cfg.MSMPIInclude},
		Version:      "MS-MPI",
	})
}

func (p *Prober) found(ctx context.Context, lib *Library) (*Library, error) {
	p.log.Debug(ctx, "found MPI library",
		"source", lib.Source,
		"version", lib.Version,
		"includes", lib.IncludePaths,
		"libs", lib.Libs)
	return lib, nil
}

// mpicc asks the compiler wrapper for the command line it would run.
func (p *Prober) mpicc(ctx context.Context, mpicc string) (*Library, error) {
	p.log.Debug(ctx, "probing compiler wrapper", "mpicc", mpicc)
	out, err := p.runner.Run(ctx, mpicc, "-show")
	if err != nil {
		return nil, err
	}
	includes, libPaths, libs, err := parseCompilerLine(string(out))
	if err != nil {
		return nil, fmt.Errorf("%s -show: %w", mpicc, err)
	}
	return &Library{
		Source:       "mpicc",
		MPICC:        mpicc,
		Libs:         libs,
		LibPaths:     libPaths,
		IncludePaths: includes,
		Version:      "unknown",
	}, nil
}

// pkgConfig queries pkg-config for a package name or .pc path.
func (p *Prober) pkgConfig(ctx context.Context, pkg string) (*Library, error) {
	p.log.Debug(ctx, "probing pkg-config", "package", pkg)
	version, err := p.runner.Run(ctx, p.cfg.PkgConfig, "--modversion", pkg)
	if err != nil {
		return nil, err
	}
	cflags, err := p.runner.Run(ctx, p.cfg.PkgConfig, "--cflags", pkg)
	if err != nil {
		return nil, err
	}
	libsOut, err := p.runner.Run(ctx, p.cfg.PkgConfig, "--libs", pkg)
	if err != nil {
		return nil, err
	}

	includes, err := collectArgs(string(cflags), "-I")
	if err != nil {
		return nil, err
	}
	libPaths, err := collectArgs(string(libsOut), "-L")
	if err != nil {
		return nil, err
	}
	libs, err := collectArgs(string(libsOut), "-l")
	if err != nil {
		return nil, err
	}
	return &Library{
		Libs:         libs,
		LibPaths:     libPaths,
		IncludePaths: includes,
		Version:      strings.TrimSpace(string(version)),
	}, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
