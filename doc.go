// SPDX-License-Identifier: GPL-2.0-only

/*
Package lzp implements the LZP binary delta/patch codec.

Given an ordered list of source byte sequences and a target byte sequence,
Encode produces a compact patch; given the same sources and the patch,
Decode reconstructs the target bit-for-bit. With zero sources the codec
degenerates into a plain self-referential compressor: the encoder finds
matches against the target it has already emitted.

The wire format is a patch stream of single-byte opcodes, each optionally
followed by a varnum and/or inline literal bytes, over a window made of the
concatenated sources followed by the growing target. See [Decode] and
[Encode] for the entry points, and the package-level variables in errors.go
for the error taxonomy.

# Decode

Sources must match the checksums recorded in the patch header, if the patch
carries one:

	out, err := lzp.Decode(patch, sources, lzp.DefaultDecodeOptions())

To also learn how many patch bytes were consumed (e.g. for back-to-back
patches packed into one stream):

	out, nRead, err := lzp.DecodeN(patch, sources, lzp.DefaultDecodeOptions())
	// advance: patch = patch[nRead:]

To stream the result into a sink instead of collecting a []byte:

	err := lzp.DecodeTo(w, patch, sources, lzp.DefaultDecodeOptions())

# Encode

Options may be nil (defaults to writing a header):

	patch, err := lzp.Encode(target, sources, nil)
	patch, err := lzp.Encode(target, nil, &lzp.EncodeOptions{Header: false})
*/
package lzp
