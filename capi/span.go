package main

import (
	"math"
	"unsafe"
)

// spanFits reports whether a size_t byte count is representable as a Go
// slice length on this platform. Counts beyond the int range cannot be
// copied into Go memory; callers map them to the out-of-memory code instead
// of letting a narrowing conversion wrap negative or truncate the span.
func spanFits(n uint64) bool {
	return n <= math.MaxInt
}

// copySpan copies n bytes of caller-owned memory into Go-owned memory so
// the engine never retains the C buffer.
func copySpan(p *byte, n int) []byte {
	buf := make([]byte, n)
	copy(buf, unsafe.Slice(p, n))
	return buf
}
