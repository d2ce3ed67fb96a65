// Package decimal parses and formats the canonical base 10 value strings
// used to exchange ring values with external stores.
//
// The accepted grammar is strict: optional surrounding whitespace around
// one or more ASCII digits. Signs are rejected (values are non-negative),
// as is any other byte. Invalid input fails explicitly rather than
// degrading to zero, so callers decide their own fallback.
//
// The canonical form of zero is "0". Leading zeros are accepted on input
// and never produced on output.
package decimal
