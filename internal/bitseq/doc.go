// Package bitseq reads a byte buffer as an ordered sequence of single bits.
//
// Bits are numbered from 0 to 8*len(buf)-1. Within a byte the most
// significant bit comes first, so bit 0 is the top bit of buf[0] and bit 8 is
// the top bit of buf[1].
package bitseq
