package bitseq

import "iter"

// Len returns the number of bits in buf.
func Len(buf []byte) int { return len(buf) * 8 }

// At returns bit i of buf (0 or 1). It panics if i is out of range, like an
// index expression would.
func At(buf []byte, i int) uint8 {
	return buf[i>>3] >> (7 - uint(i&7)) & 1
}

// Bits returns a sequence yielding (index, bit) for every bit of buf in
// order. Each range over the result starts again from bit 0.
func Bits(buf []byte) iter.Seq2[int, uint8] {
	return func(yield func(int, uint8) bool) {
		for i := 0; i < Len(buf); i++ {
			if !yield(i, At(buf, i)) {
				return
			}
		}
	}
}
