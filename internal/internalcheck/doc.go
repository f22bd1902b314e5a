// Package internalcheck holds repository policy tests.
//
// The tests load the module with golang.org/x/tools/go/packages and walk the
// syntax of every package. They enforce that cgo stays confined to the
// bridge package and that the bridge never spells out a constant's value
// itself.
package internalcheck
