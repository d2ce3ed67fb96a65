// Package store persists ring values by round-tripping their canonical
// decimal value strings through a stream or file.
//
// Only the numeric value survives a round trip. The base and digit layout
// are not stored: a loaded ring always holds its digits in the default
// base, and callers convert afterwards if they need another one.
package store
