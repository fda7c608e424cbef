package sap

import "math"

// plusZero exists so the addition in encodeFloat survives optimization.
// Adding +0.0 is not a no-op: it rewrites -0.0 to +0.0, which the encoder
// needs so both zeros map to the same key. Reading a package variable
// keeps the compiler from folding the expression to its input.
var plusZero float32 = 0

// encodeFloat maps f to an int32 whose signed order matches the float
// order of f: for non-NaN a, b, a < b iff encodeFloat(a) < encodeFloat(b),
// with -0 and +0 mapping to the same key. Non-negative floats keep their
// bit pattern; negative floats get all bits below the sign flipped, which
// reverses their (descending) raw-bits order. NaN encodes to some valid
// int32 with no ordering guarantee.
//
// Only the X axis is encoded; it lets the sweep compare run on integers.
func encodeFloat(f float32) int32 {
	s := int32(math.Float32bits(f + plusZero))
	toggle := (s >> 31) & 0x7fffffff
	return s ^ toggle
}
