// SPDX-License-Identifier: GPL-2.0-only

package lzp

// Varnum is little-endian base-128: each byte carries 7 payload bits, with
// the top bit set on every byte but the last. readVarnum/appendVarnum mirror
// the teacher's free-function, pointer-advancing byte readers (see
// decompress.go's readCompressedByte/readCompressedLE16) rather than a
// bufio.Reader-style type, since the patch is always a plain []byte.

// maxVarnumShift bounds the continuation-bit chain so a hostile patch can't
// spin forever accumulating shift amounts that never terminate.
const maxVarnumShift = 63

// readVarnum reads a varnum from src at *pos, advancing *pos past it.
func readVarnum(src []byte, pos *int) (uint64, error) {
	var result uint64
	var shift uint

	for {
		if *pos >= len(src) {
			return 0, ErrTruncatedPatch
		}
		b := src[*pos]
		*pos++

		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}

		shift += 7
		if shift > maxVarnumShift {
			return 0, ErrMalformedVarnum
		}
	}
}

// appendVarnum appends the shortest varnum encoding of v to dst.
func appendVarnum(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}
