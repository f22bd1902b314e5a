package verify

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/mpibridge-go/internal/codegen"
	"github.com/hsiuhsiu/mpibridge-go/internal/manifest"
	"github.com/hsiuhsiu/mpibridge-go/internal/probe"
)

// fakeToolchain stands in for the C compiler and the compiled programs.
type fakeToolchain struct {
	mu       sync.Mutex
	compiles [][]string
	runs     int

	compile func(args []string) error
	run     func(n int) (string, error)
}

func (f *fakeToolchain) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name == "mpicc" {
		f.compiles = append(f.compiles, args)
		if f.compile != nil {
			return nil, f.compile(args)
		}
		return nil, nil
	}
	f.runs++
	out, err := f.run(f.runs)
	return []byte(out), err
}

func testLibrary() *probe.Library {
	return &probe.Library{
		Source:       "mpicc",
		MPICC:        "mpicc",
		Libs:         []string{"mpi"},
		LibPaths:     []string{"/opt/mpi/lib"},
		IncludePaths: []string{"/opt/mpi/include"},
		Version:      "4.1.0",
	}
}

func loadManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Load()
	require.NoError(t, err)
	return m
}

// healthyValues assigns every symbol a distinct value the way an MPICH-like
// library with 4-byte handles would.
func healthyValues(m *manifest.Manifest) map[string][]byte {
	values := make(map[string][]byte)
	for _, cat := range m.HandleCategories() {
		values[m.SizeSymbol(cat)] = le32(4)
	}
	for i, c := range m.Constants {
		values[m.Symbol(c)] = le32(int32(0x4c000000 + i))
	}
	return values
}

func le32(v int32) []byte {
	b := make([]byte, 4)
	binary.NativeEndian.PutUint32(b, uint32(v))
	return b
}

func reportOutput(m *manifest.Manifest, values map[string][]byte, override func(part, sym string, v []byte) []byte) string {
	var b strings.Builder
	for _, part := range []string{partControl, partA, partB} {
		for _, sym := range codegen.ExpectedSymbols(m) {
			v := values[sym]
			if override != nil {
				v = override(part, sym, v)
			}
			if v == nil {
				continue
			}
			fmt.Fprintf(&b, "%s %s %x\n", part, sym, v)
		}
	}
	return b.String()
}

func TestCheckHealthyBridge(t *testing.T) {
	m := loadManifest(t)
	out := reportOutput(m, healthyValues(m), nil)
	tc := &fakeToolchain{run: func(int) (string, error) { return out, nil }}

	r, err := New(m, testLibrary(), Options{CC: "cc"}, tc, nil).Check(context.Background())
	require.NoError(t, err)
	assert.Empty(t, r.Findings)
	assert.Len(t, r.Values, len(codegen.ExpectedSymbols(m)))
	assert.Equal(t, 2, tc.runs)

	require.Len(t, tc.compiles, 1, "bridge and both consumers link in one step")
	args := strings.Join(tc.compiles[0], " ")
	assert.Contains(t, args, "-I/opt/mpi/include")
	assert.Contains(t, args, "-lmpi")
	for _, src := range []string{codegen.SourceName, "consumer_a.c", "consumer_b.c", "control.c"} {
		assert.Contains(t, args, src)
	}
}

func TestCheckWritesConsumersAgainstHeaderOnly(t *testing.T) {
	m := loadManifest(t)
	out := reportOutput(m, healthyValues(m), nil)
	var consumer, control string
	tc := &fakeToolchain{
		compile: func(args []string) error {
			for _, a := range args {
				switch filepath.Base(a) {
				case "consumer_a.c":
					b, err := os.ReadFile(a)
					require.NoError(t, err)
					consumer = string(b)
				case "control.c":
					b, err := os.ReadFile(a)
					require.NoError(t, err)
					control = string(b)
				}
			}
			return nil
		},
		run: func(int) (string, error) { return out, nil },
	}

	_, err := New(m, testLibrary(), Options{}, tc, nil).Check(context.Background())
	require.NoError(t, err)

	assert.Contains(t, consumer, `#include "mpibridge.h"`)
	assert.NotContains(t, consumer, `#include "mpi.h"`)
	assert.Contains(t, consumer, `&MPIBRIDGE_COMM_WORLD, sizeof MPIBRIDGE_COMM_WORLD`)
	assert.Contains(t, control, `MPI_Comm v = MPI_COMM_WORLD;`)
	assert.Contains(t, control, `int32_t v = (int32_t)(MPI_ANY_TAG);`)
	assert.Contains(t, control, `int32_t v = (int32_t)sizeof(MPI_Request);`)
}

func TestCheckFindings(t *testing.T) {
	m := loadManifest(t)

	tests := []struct {
		name     string
		override func(part, sym string, v []byte) []byte
		run2     func(part, sym string, v []byte) []byte
		symbol   string
		property string
	}{
		{
			name: "bridge differs from header",
			override: func(part, sym string, v []byte) []byte {
				if part != partControl && sym == "MPIBRIDGE_ANY_TAG" {
					return le32(7)
				}
				return v
			},
			symbol:   "MPIBRIDGE_ANY_TAG",
			property: PropertyEquality,
		},
		{
			name: "consumers disagree",
			override: func(part, sym string, v []byte) []byte {
				if part == partB && sym == "MPIBRIDGE_COMM_WORLD" {
					return le32(1)
				}
				return v
			},
			symbol:   "MPIBRIDGE_COMM_WORLD",
			property: PropertyOpacity,
		},
		{
			name: "handles collide",
			override: func(_, sym string, v []byte) []byte {
				if sym == "MPIBRIDGE_COMM_SELF" {
					return healthyValues(m)["MPIBRIDGE_COMM_WORLD"]
				}
				return v
			},
			symbol:   "MPIBRIDGE_COMM_SELF",
			property: PropertyDistinct,
		},
		{
			name: "symbol not reported",
			override: func(part, sym string, v []byte) []byte {
				if part == partA && sym == "MPIBRIDGE_REQUEST_NULL" {
					return nil
				}
				return v
			},
			symbol:   "MPIBRIDGE_REQUEST_NULL",
			property: PropertyCompleteness,
		},
		{
			name: "wrong width",
			override: func(_, sym string, v []byte) []byte {
				if sym == "MPIBRIDGE_FLOAT" {
					return append(v, 0, 0, 0, 0)
				}
				return v
			},
			symbol:   "MPIBRIDGE_FLOAT",
			property: PropertySize,
		},
		{
			name: "integer changes between runs",
			run2: func(part, sym string, v []byte) []byte {
				if sym == "MPIBRIDGE_PROC_NULL" {
					return le32(-99)
				}
				return v
			},
			symbol:   "MPIBRIDGE_PROC_NULL",
			property: PropertyStability,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := healthyValues(m)
			first := reportOutput(m, values, tt.override)
			second := reportOutput(m, values, tt.run2)
			if tt.run2 == nil {
				second = first
			}
			tc := &fakeToolchain{run: func(n int) (string, error) {
				if n == 1 {
					return first, nil
				}
				return second, nil
			}}

			r, err := New(m, testLibrary(), Options{}, tc, nil).Check(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMismatch)
			require.NotNil(t, r)
			assert.NotEmpty(t, findingFor(r.Findings, tt.symbol, tt.property).Symbol,
				"no %s finding for %s in %v", tt.property, tt.symbol, r.Findings)
		})
	}
}

func findingFor(fs []Finding, sym, prop string) Finding {
	for _, f := range fs {
		if f.Symbol == sym && f.Property == prop {
			return f
		}
	}
	return Finding{}
}

func TestCheckHandlesMayMoveBetweenRuns(t *testing.T) {
	m := loadManifest(t)
	values := healthyValues(m)
	first := reportOutput(m, values, nil)
	second := reportOutput(m, values, func(_, sym string, v []byte) []byte {
		if sym == "MPIBRIDGE_COMM_WORLD" {
			return le32(0x1234)
		}
		return v
	})
	tc := &fakeToolchain{run: func(n int) (string, error) {
		if n == 1 {
			return first, nil
		}
		return second, nil
	}}

	_, err := New(m, testLibrary(), Options{}, tc, nil).Check(context.Background())
	assert.NoError(t, err)
}

func TestCheckBuildFailure(t *testing.T) {
	m := loadManifest(t)
	tc := &fakeToolchain{
		compile: func([]string) error {
			return errors.New("mpicc: exit status 1: multiple definition of `MPIBRIDGE_COMM_WORLD'")
		},
	}

	r, err := New(m, testLibrary(), Options{}, tc, nil).Check(context.Background())
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrBuild)
	assert.Contains(t, err.Error(), "multiple definition")
	assert.Zero(t, tc.runs)
}

func TestCheckMalformedReport(t *testing.T) {
	m := loadManifest(t)
	tc := &fakeToolchain{run: func(int) (string, error) { return "control MPIBRIDGE_FLOAT zz\n", nil }}

	_, err := New(m, testLibrary(), Options{}, tc, nil).Check(context.Background())
	assert.ErrorIs(t, err, ErrBuild)
}

func TestLoadOptionsFrom(t *testing.T) {
	opts, err := LoadOptionsFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "cc", opts.CC)
	assert.Equal(t, 4, opts.Jobs)
	assert.False(t, opts.KeepDir)

	opts, err = LoadOptionsFrom(map[string]string{"CC": "clang", "MPIBRIDGE_JOBS": "9", "MPIBRIDGE_KEEP": "true"})
	require.NoError(t, err)
	assert.Equal(t, "clang", opts.CC)
	assert.Equal(t, 9, opts.Jobs)
	assert.True(t, opts.KeepDir)

	_, err = LoadOptionsFrom(map[string]string{"MPIBRIDGE_JOBS": "many"})
	assert.Error(t, err)
}
