// Package ring provides a positional number held in two representations at
// once: an arbitrary precision numeric value and a circular, mutable
// sequence of digits in a configurable base.
//
// Representation
//
// Digits live in a circular doubly linked sequence. The links are slot
// indices into an internal arena rather than pointers, so nodes can be
// spliced in O(1) without exposing any aliasable structure. The head slot
// marks the most significant digit:
//
//	head
//	 |
//	 v
//	[1] <-> [1] <-> [0] <-> [1]
//	 ^                       |
//	 +--------<->------------+
//
// Reading the digits head to tail in base 2 gives 1101, i.e. the value 13.
//
// The numeric value is the single source of truth for what number the ring
// holds. Every structural mutation (Insert, RemoveAt, RemoveDigit, Set,
// Swap, SortAscending, SortDescending, RotateLeft, RotateRight) re-derives
// the value from the digit sequence before returning, and every operation
// that starts from a value (NewFromValue, ConvertToBase, Combine) rebuilds
// the digit sequence from it. A caller can never observe the two
// representations out of agreement.
//
// Zero is always the empty ring. A nonempty all-zero digit sequence never
// occurs: building digits from the value 0 produces no digits at all.
//
// Rotation moves which slot is considered head without touching any digit,
// so it changes the value while preserving the digits and their cyclic
// order:
//
//	1101 (13)  --RotateLeft-->  1011 (11)  --RotateRight-->  1101 (13)
//
// A Ring is not safe for concurrent use. All operations run synchronously
// to completion and hold no external resources, so callers that serialize
// access to an instance need no further coordination.
package ring
