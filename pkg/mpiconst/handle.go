//go:build cgo

package mpiconst

/*
#include "mpibridge.h"
*/
import "C"

import (
	"encoding/hex"
	"unsafe"
)

// Datatype is an opaque MPI datatype handle.
type Datatype struct{ h C.MPI_Datatype }

// Comm is an opaque MPI communicator handle.
type Comm struct{ h C.MPI_Comm }

// Group is an opaque MPI group handle.
type Group struct{ h C.MPI_Group }

// Message is an opaque MPI matched-message handle.
type Message struct{ h C.MPI_Message }

// Request is an opaque MPI request handle.
type Request struct{ h C.MPI_Request }

// Op is an opaque MPI reduction operation handle.
type Op struct{ h C.MPI_Op }

// Info is an opaque MPI info object handle.
type Info struct{ h C.MPI_Info }

// Equal reports whether d and the argument name the same datatype.
func (d Datatype) Equal(o Datatype) bool { return d == o }

// Equal reports whether c and the argument name the same communicator.
func (c Comm) Equal(o Comm) bool { return c == o }

// Equal reports whether g and the argument name the same group.
func (g Group) Equal(o Group) bool { return g == o }

// Equal reports whether m and the argument name the same message.
func (m Message) Equal(o Message) bool { return m == o }

// Equal reports whether r and the argument name the same request.
func (r Request) Equal(o Request) bool { return r == o }

// Equal reports whether o and the argument name the same operation.
func (o Op) Equal(p Op) bool { return o == p }

// Equal reports whether i and the argument name the same info object.
func (i Info) Equal(o Info) bool { return i == o }

// Bytes returns a copy of the handle's representation, DatatypeSize bytes
// in host byte order.
func (d Datatype) Bytes() []byte { return rawCopy(unsafe.Pointer(&d.h), DatatypeSize) }

// Bytes returns a copy of the handle's representation.
func (c Comm) Bytes() []byte { return rawCopy(unsafe.Pointer(&c.h), CommSize) }

// Bytes returns a copy of the handle's representation.
func (g Group) Bytes() []byte { return rawCopy(unsafe.Pointer(&g.h), GroupSize) }

// Bytes returns a copy of the handle's representation.
func (m Message) Bytes() []byte { return rawCopy(unsafe.Pointer(&m.h), MessageSize) }

// Bytes returns a copy of the handle's representation.
func (r Request) Bytes() []byte { return rawCopy(unsafe.Pointer(&r.h), RequestSize) }

// Bytes returns a copy of the handle's representation.
func (o Op) Bytes() []byte { return rawCopy(unsafe.Pointer(&o.h), OpSize) }

// Bytes returns a copy of the handle's representation.
func (i Info) Bytes() []byte { return rawCopy(unsafe.Pointer(&i.h), InfoSize) }

// String renders the raw bytes for debugging.
func (d Datatype) String() string { return debugString("Datatype", d.Bytes()) }

// String renders the raw bytes for debugging.
func (c Comm) String() string { return debugString("Comm", c.Bytes()) }

// String renders the raw bytes for debugging.
func (g Group) String() string { return debugString("Group", g.Bytes()) }

// String renders the raw bytes for debugging.
func (m Message) String() string { return debugString("Message", m.Bytes()) }

// String renders the raw bytes for debugging.
func (r Request) String() string { return debugString("Request", r.Bytes()) }

// String renders the raw bytes for debugging.
func (o Op) String() string { return debugString("Op", o.Bytes()) }

// String renders the raw bytes for debugging.
func (i Info) String() string { return debugString("Info", i.Bytes()) }

func rawCopy(p unsafe.Pointer, n int) []byte {
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}

func debugString(kind string, raw []byte) string {
	return kind + "(" + hex.EncodeToString(raw) + ")"
}
