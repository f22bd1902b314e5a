package probe

import (
	"fmt"
	"strings"
)

// Library describes a discovered MPI installation.
type Library struct {
	// Source names the strategy that found the library.
	Source string `json:"source"`
	// MPICC is the compiler wrapper, when the library was found through one.
	MPICC        string   `json:"mpicc,omitempty"`
	Libs         []string `json:"libs"`
	LibPaths     []string `json:"lib_paths"`
	IncludePaths []string `json:"include_paths"`
	Version      string   `json:"version"`
}

// CFlags returns the compiler flags needed to include mpi.h.
func (l *Library) CFlags() []string {
	out := make([]string, 0, len(l.IncludePaths))
	for _, dir := range l.IncludePaths {
		out = append(out, "-I"+dir)
	}
	return out
}

// LDFlags returns the linker flags needed to link the MPI library. Library
// directories are also recorded as run paths so consumers load the same
// library they were linked against.
func (l *Library) LDFlags() []string {
	out := make([]string, 0, 2*len(l.LibPaths)+len(l.Libs))
	for _, dir := range l.LibPaths {
		out = append(out, "-L"+dir)
	}
	for _, dir := range l.LibPaths {
		out = append(out, "-Wl,-rpath,"+dir)
	}
	for _, lib := range l.Libs {
		out = append(out, "-l"+lib)
	}
	return out
}

// Compiler returns the C compiler to use: the MPI wrapper if one was found,
// otherwise fallback.
func (l *Library) Compiler(fallback string) string {
	if l.MPICC != "" {
		return l.MPICC
	}
	return fallback
}

func (l *Library) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\n", l.Source)
	if l.MPICC != "" {
		fmt.Fprintf(&b, "mpicc: %s\n", l.MPICC)
	}
	fmt.Fprintf(&b, "version: %s\n", l.Version)
	fmt.Fprintf(&b, "include paths: %s\n", strings.Join(l.IncludePaths, " "))
	fmt.Fprintf(&b, "lib paths: %s\n", strings.Join(l.LibPaths, " "))
	fmt.Fprintf(&b, "libs: %s\n", strings.Join(l.Libs, " "))
	return b.String()
}
