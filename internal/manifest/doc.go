// Package manifest holds the versioned symbol table of the constant bridge.
//
// The table is the single source of truth for both sides of the boundary:
// the C shim declarations and definitions, the Go accessors, and any foreign
// binding that declares the same symbols are all derived from it. An entry
// names the MPI macro its value comes from; the value itself is never stored
// here, it is captured from the installed headers each time the bridge is
// built.
package manifest
