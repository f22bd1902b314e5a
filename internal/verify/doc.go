// Package verify checks a bridge against the MPI installation it was
// generated for.
//
// Check renders the bridge into a scratch directory, links it into one
// program together with two independent consumer translation units and a
// control part that reads every macro straight from mpi.h, runs the program
// and compares what each part saw. Diagnose compiles one tiny program per
// constant to name the macros the installed headers lack. Nothing here
// touches the committed bridge in pkg/mpiconst.
package verify
