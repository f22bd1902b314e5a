package probe

import (
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// Config carries the environment that steers probing.
type Config struct {
	// PkgConfigFile is a pkg-config package name or path to a .pc file.
	PkgConfigFile string `env:"MPI_PKG_CONFIG"`
	CrayMPICHDir  string `env:"CRAY_MPICH_DIR"`
	MPICC         string `env:"MPICC" envDefault:"mpicc"`
	PkgConfig     string `env:"PKG_CONFIG" envDefault:"pkg-config"`

	IntelMPIRoot string `env:"I_MPI_ROOT"`
	MSMPIInclude string `env:"MSMPI_INC"`
	MSMPILib32   string `env:"MSMPI_LIB32"`
	MSMPILib64   string `env:"MSMPI_LIB64"`

	// GOOS and GOARCH select the strategy set; they default to the host.
	GOOS   string
	GOARCH string
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	cfg := Config{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("probe: parse env: %w", err)
	}
	return cfg, nil
}

// LoadConfigFrom reads Config from an explicit environment map.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	cfg := Config{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("probe: parse env: %w", err)
	}
	return cfg, nil
}
