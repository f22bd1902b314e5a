// Package codegen renders the constant bridge from the manifest.
//
// Four files make up the bridge package:
//
//	mpibridge.h     extern declarations, one per symbol
//	mpibridge.c     the single definition of every declared symbol
//	zconstants.go   the cgo view of the same symbols for Go callers
//	zcgo_flags.go   compiler and linker flags for the probed MPI library
//
// The first three depend only on the manifest. The flags file depends on the
// build host and is regenerated there. Rendering is deterministic, so
// regenerating against an unchanged manifest and library reproduces the
// same bytes.
package codegen
