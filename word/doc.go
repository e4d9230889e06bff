// Package word implements the MIX machine word: a 31 bit sign-and-magnitude
// value made of a sign bit and five 6-bit bytes.
//
// The package provides partial-word field access (the (L:R) field
// specifications), conversion between the full width registers (A, X) and
// the two byte index registers (I1-I6, J), and conversion to and from native
// signed integers.
//
// Both +0 and -0 are valid, distinct words. Nothing in this package
// canonicalizes one into the other.
package word
