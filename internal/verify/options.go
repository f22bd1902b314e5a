package verify

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Options configures the toolchain used for verification.
type Options struct {
	// CC is the C compiler used when the probe found no MPI wrapper.
	CC string `env:"CC" envDefault:"cc"`
	// Jobs bounds the number of concurrent compiles in Diagnose.
	Jobs int `env:"MPIBRIDGE_JOBS" envDefault:"4"`
	// KeepDir leaves the scratch directory behind for inspection.
	KeepDir bool `env:"MPIBRIDGE_KEEP"`
}

// LoadOptions reads Options from the process environment.
func LoadOptions() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("verify: options: %w", err)
	}
	return opts, nil
}

// LoadOptionsFrom reads Options from the given variables only.
func LoadOptionsFrom(environ map[string]string) (Options, error) {
	var opts Options
	if err := env.ParseWithOptions(&opts, env.Options{Environment: environ}); err != nil {
		return Options{}, fmt.Errorf("verify: options: %w", err)
	}
	return opts, nil
}

func (o Options) jobs() int {
	if o.Jobs < 1 {
		return 1
	}
	return o.Jobs
}
