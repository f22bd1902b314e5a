//go:build cgo

package mpiconst

import "unsafe"

// Symbol describes one const symbol defined by mpibridge.c.
type Symbol struct {
	// Name is the linkable C symbol, e.g. MPIBRIDGE_ANY_TAG.
	Name string
	// Macro is the mpi.h expression the symbol was initialized from.
	Macro string
	// Category is the handle category, "int" for integer constants, or
	// "size" for handle width symbols.
	Category string
	// Go is the exported Go identifier for the same constant.
	Go string
	// Since is the MPI standard that introduced Macro, empty for MPI-2.0.
	Since string
	// Size is the width of the symbol's storage in bytes.
	Size int
	// Header is the value cgo evaluated from mpi.h for integer and size
	// symbols. It is zero for handles.
	Header int64

	addr unsafe.Pointer
}

// IsHandle reports whether the symbol holds an opaque handle.
func (s Symbol) IsHandle() bool {
	return s.Category != "int" && s.Category != "size"
}

// Bytes returns a copy of the linked symbol's storage.
func (s Symbol) Bytes() []byte {
	return rawCopy(s.addr, s.Size)
}

// Value returns the linked value of an integer or size symbol. It reports
// false for handles.
func (s Symbol) Value() (int32, bool) {
	if s.IsHandle() {
		return 0, false
	}
	return *(*int32)(s.addr), true
}

// Symbols returns every symbol of the bridge: handle widths first, then
// handles, then integers.
func Symbols() []Symbol {
	return symbolTable()
}

// Lookup returns the symbol with the given C name.
func Lookup(name string) (Symbol, bool) {
	for _, s := range symbolTable() {
		if s.Name == name {
			return s, true
		}
	}
	return Symbol{}, false
}
