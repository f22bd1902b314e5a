// Package mpiconst exposes the ABI-level constants of the MPI library the
// program is built against.
//
// The package is a thin cgo bridge over a generated C shim. mpibridge.h
// declares one externally linkable const symbol per constant and mpibridge.c
// defines each of them exactly once from the macro in the installed mpi.h.
// Nothing here is hard-coded: every value is captured when the package is
// compiled, so a rebuild against a different MPI installation picks up that
// installation's values.
//
// # Building
//
// The package needs cgo, the MPI development headers and a linkable MPI
// library. Run go generate in this directory on the build host; it probes
// the installation (see cmd/mpibridge) and writes zcgo_flags.go with the
// matching compiler and linker flags. Without MPI the build fails in the C
// compiler rather than producing a package with made-up values.
//
// # Handles
//
// Datatype, Comm, Group, Message, Request, Op and Info are opaque. Their
// width and bit pattern depend on the MPI implementation (integers on MPICH
// derivatives, pointers on Open MPI), so the only meaningful operation is
// equality with another handle of the same type. Bytes exposes a copy of the
// raw representation for handing the value across a language boundary.
//
// # Integers
//
// Sentinels such as AnySource and AnyTag, comparison results, thread levels
// and length limits are typed int32 constants. Their signs and values are
// exactly those of mpi.h; a value that does not fit int32 fails the build.
//
// # Concurrency
//
// All values are fixed at link time and never written, so they may be read
// from any number of goroutines without synchronization.
package mpiconst

//go:generate go run ../../cmd/mpibridge generate -dir .
