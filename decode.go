// SPDX-License-Identifier: GPL-2.0-only

package lzp

import "io"

// Decode applies patch against sources and returns the reconstructed target.
func Decode(patch []byte, sources [][]byte, opts *DecodeOptions) ([]byte, error) {
	out, _, err := DecodeN(patch, sources, opts)
	return out, err
}

// DecodeN is Decode but also reports the number of patch bytes consumed,
// for callers that pack multiple patches back to back in one stream
// (mirrors the teacher's DecompressN alongside Decompress).
func DecodeN(patch []byte, sources [][]byte, opts *DecodeOptions) (out []byte, nRead int, err error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}
	if len(patch) == 0 {
		return nil, 0, ErrEmptyPatch
	}

	pos := 0

	if opts.Header {
		checksums, err := readHeader(patch, &pos)
		if err != nil {
			return nil, 0, &DecodeError{Err: err, Offset: pos}
		}
		if err := verifySources(sources, checksums); err != nil {
			return nil, 0, err
		}
	}

	w := acquireWindow()
	defer releaseWindow(w)
	w.initSources(sources)

	for {
		op, ok := nextByte(patch, &pos)
		if !ok {
			return nil, 0, &DecodeError{Err: ErrTruncatedPatch, Offset: pos}
		}

		switch classifyOpcode(op) {
		case cmdEnd:
			return cloneTarget(w), pos, nil

		case cmdCopyInPlace:
			n, err := readVarnum(patch, &pos)
			if err != nil {
				return nil, 0, &DecodeError{Err: err, Offset: pos}
			}
			if err := w.copy(int(n) + 1); err != nil {
				return nil, 0, &DecodeError{Err: err, Offset: pos}
			}

		case cmdLiteral:
			b, ok := nextByte(patch, &pos)
			if !ok {
				return nil, 0, &DecodeError{Err: ErrTruncatedPatch, Offset: pos}
			}
			w.append([]byte{b})

		case cmdLiteralRun:
			n, err := readVarnum(patch, &pos)
			if err != nil {
				return nil, 0, &DecodeError{Err: err, Offset: pos}
			}
			lit, ok := nextBytes(patch, &pos, int(n)+3)
			if !ok {
				return nil, 0, &DecodeError{Err: ErrTruncatedPatch, Offset: pos}
			}
			w.append(lit)

		case cmdMoveCopy:
			v := int(op & 0x7f)
			backward := op&0x80 != 0

			n, err := readVarnum(patch, &pos)
			if err != nil {
				return nil, 0, &DecodeError{Err: err, Offset: pos}
			}
			delta := int(n) + 1
			if backward {
				delta = -delta
			}
			if err := w.move(delta); err != nil {
				return nil, 0, &DecodeError{Err: err, Offset: pos}
			}
			if err := w.copy(v); err != nil {
				return nil, 0, &DecodeError{Err: err, Offset: pos}
			}
		}

		if opts.MaxOutputSize > 0 && w.targetEnd-w.targetStart > opts.MaxOutputSize {
			return nil, 0, &DecodeError{Err: ErrOutputTooLarge, Offset: pos}
		}
	}
}

// DecodeTo is Decode but writes the reconstructed target to dst instead of
// returning it, surfacing a write failure verbatim (no decode logic of its
// own), the way the teacher layers DecompressFromReader over Decompress.
func DecodeTo(dst io.Writer, patch []byte, sources [][]byte, opts *DecodeOptions) error {
	out, err := Decode(patch, sources, opts)
	if err != nil {
		return err
	}
	_, err = dst.Write(out)
	return err
}

// cloneTarget copies the window's target region out before the window is
// returned to the pool, since the pool may zero or reuse its backing array.
func cloneTarget(w *window) []byte {
	t := w.target()
	out := make([]byte, len(t))
	copy(out, t)
	return out
}

// nextByte reads one byte from src at *pos, advancing *pos. ok is false at
// end of input.
func nextByte(src []byte, pos *int) (b byte, ok bool) {
	if *pos >= len(src) {
		return 0, false
	}
	b = src[*pos]
	*pos++
	return b, true
}

// nextBytes reads n bytes from src at *pos, advancing *pos. ok is false if
// fewer than n bytes remain.
func nextBytes(src []byte, pos *int, n int) (out []byte, ok bool) {
	if n < 0 || *pos+n > len(src) {
		return nil, false
	}
	out = src[*pos : *pos+n]
	*pos += n
	return out, true
}
