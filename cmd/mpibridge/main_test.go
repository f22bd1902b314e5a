package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/mpibridge-go/internal/codegen"
	"github.com/hsiuhsiu/mpibridge-go/internal/manifest"
	"github.com/hsiuhsiu/mpibridge-go/internal/probe"
)

type fakeRunner map[string]string

func (f fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	out, ok := f[key]
	if !ok {
		return nil, errors.New("exec: " + name + ": not found")
	}
	return []byte(out), nil
}

var withMPICH = fakeRunner{
	"mpicc -show": "gcc -I/opt/mpich/include -L/opt/mpich/lib -Wl,-rpath -Wl,/opt/mpich/lib -lmpi",
}

func newApp(runner probe.Runner) (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &app{
		stdout:  &stdout,
		stderr:  &stderr,
		runner:  runner,
		environ: map[string]string{},
		goos:    "linux",
	}, &stdout, &stderr
}

func TestUnknownCommand(t *testing.T) {
	a, _, stderr := newApp(withMPICH)
	assert.Equal(t, 2, a.run(context.Background(), []string{"frobnicate"}))
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)

	a, _, _ = newApp(withMPICH)
	assert.Equal(t, 2, a.run(context.Background(), nil))
}

func TestProbeCommand(t *testing.T) {
	a, stdout, _ := newApp(withMPICH)
	require.Equal(t, 0, a.run(context.Background(), []string{"probe", "-json"}))

	var lib probe.Library
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &lib))
	assert.Equal(t, "mpicc", lib.Source)
	assert.Equal(t, []string{"/opt/mpich/include"}, lib.IncludePaths)
	assert.Equal(t, []string{"mpi"}, lib.Libs)
}

func TestProbeCommandNothingInstalled(t *testing.T) {
	a, stdout, stderr := newApp(fakeRunner{})
	assert.Equal(t, 1, a.run(context.Background(), []string{"probe"}))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Reason #1")
}

func TestEnvCommand(t *testing.T) {
	a, stdout, _ := newApp(withMPICH)
	require.Equal(t, 0, a.run(context.Background(), []string{"env"}))

	out := stdout.String()
	assert.Contains(t, out, "CGO_CFLAGS='-I/opt/mpich/include'\n")
	assert.Contains(t, out, "CGO_LDFLAGS='-L/opt/mpich/lib -Wl,-rpath,/opt/mpich/lib -lmpi'\n")
	assert.Contains(t, out, "CC='mpicc'\n")
}

func TestManifestCommand(t *testing.T) {
	want, err := manifest.Load()
	require.NoError(t, err)

	a, stdout, _ := newApp(nil)
	require.Equal(t, 0, a.run(context.Background(), []string{"manifest"}))
	var fromYAML manifest.Manifest
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &fromYAML))
	assert.Equal(t, *want, fromYAML)

	a, stdout, _ = newApp(nil)
	require.Equal(t, 0, a.run(context.Background(), []string{"manifest", "-format", "json"}))
	var fromJSON manifest.Manifest
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &fromJSON))
	assert.Equal(t, *want, fromJSON)

	a, stdout, _ = newApp(nil)
	require.Equal(t, 0, a.run(context.Background(), []string{"manifest", "-format", "symbols"}))
	assert.Equal(t, codegen.ExpectedSymbols(want), strings.Fields(stdout.String()))

	a, _, stderr := newApp(nil)
	assert.Equal(t, 1, a.run(context.Background(), []string{"manifest", "-format", "toml"}))
	assert.Contains(t, stderr.String(), `unknown format "toml"`)
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	a, _, _ := newApp(withMPICH)
	require.Equal(t, 0, a.run(context.Background(), []string{"generate", "-dir", dir}))

	for _, name := range []string{codegen.HeaderName, codegen.SourceName, codegen.ConstantsName, codegen.FlagsName} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	flags, err := os.ReadFile(filepath.Join(dir, codegen.FlagsName))
	require.NoError(t, err)
	assert.Contains(t, string(flags), "-I/opt/mpich/include")
}

func TestGenerateWithoutMPIWritesNothing(t *testing.T) {
	dir := t.TempDir()
	a, _, stderr := newApp(fakeRunner{})
	assert.Equal(t, 1, a.run(context.Background(), []string{"generate", "-dir", dir}))
	assert.Contains(t, stderr.String(), "could not find MPI library")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVersionCommand(t *testing.T) {
	a, stdout, _ := newApp(nil)
	require.Equal(t, 0, a.run(context.Background(), []string{"version"}))
	assert.Contains(t, stdout.String(), "mpibridge v0.0.0-in-progress")
	assert.Contains(t, stdout.String(), "symbol table version")
}

func TestUnexpectedArguments(t *testing.T) {
	a, _, stderr := newApp(nil)
	assert.Equal(t, 2, a.run(context.Background(), []string{"version", "extra"}))
	assert.Contains(t, stderr.String(), "unexpected arguments")
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `''`, shellQuote(""))
	assert.Equal(t, `'-I/a b'`, shellQuote("-I/a b"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}
