// Package ipconv converts between IPv4 addresses held in 64-bit signed integers and their
// canonical dotted-quad text form.
//
// Only the low 32 bits of a value carry the address. Callers decide what happens to values
// outside [0, MaxIPv4] with an OverflowPolicy before formatting.
package ipconv
