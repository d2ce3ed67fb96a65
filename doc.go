// Package digitring provides a collection-style view over a digit ring.
//
// The core container lives in the ring subpackage; decimal string handling
// in decimal; persistence in store. This package adds only the bulk
// collection operations (ContainsAll, AddAll, RemoveAll, RetainAll) as
// thin wrappers over the ring's primitives, plus explicit failures for the
// list-protocol surface the ring deliberately does not support (sub-range
// views, positioned iteration).
package digitring
