// SPDX-License-Identifier: GPL-2.0-only

package lzp

import (
	"bytes"
	"io"
)

// Encode produces a patch that, applied to sources, reconstructs target.
func Encode(target []byte, sources [][]byte, opts *EncodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	var out []byte
	if opts.Header {
		var err error
		out, err = appendHeader(out, sources)
		if err != nil {
			return nil, err
		}
	}

	e := newMatcher(sources, target)
	defer releaseWindow(e.win)

	var literal []byte
	for e.remaining() > 0 {
		step := e.search()
		if step.isLiteral {
			literal = append(literal, step.literal)
			continue
		}
		if len(literal) > 0 {
			out = appendLiteral(out, literal)
			literal = literal[:0]
		}
		out = appendCopy(out, step.size, step.delta)
	}
	if len(literal) > 0 {
		out = appendLiteral(out, literal)
	}
	out = append(out, 0x00)

	return out, nil
}

// EncodeTo is Encode but writes the patch to dst instead of returning it,
// surfacing a write failure verbatim.
func EncodeTo(dst io.Writer, target []byte, sources [][]byte, opts *EncodeOptions) error {
	patch, err := Encode(target, sources, opts)
	if err != nil {
		return err
	}
	_, err = dst.Write(patch)
	return err
}

// matcher drives the greedy longest-match search described in §4.3: a
// window holding sources-then-target, plus a private write position w that
// advances from targetStart to targetEnd as commands are emitted.
type matcher struct {
	win *window
	w   int
}

func newMatcher(sources [][]byte, target []byte) *matcher {
	win := acquireWindow()
	win.initWithTarget(sources, target)
	return &matcher{win: win, w: win.targetStart}
}

func (e *matcher) remaining() int {
	return e.win.targetEnd - e.w
}

// step is the outcome of one search() call: either a single literal byte
// (isLiteral) or a copy of size bytes at signed distance delta from the
// cursor.
type step struct {
	isLiteral bool
	literal   byte
	size      int
	delta     int
}

// search finds the longest match at the current write position and
// advances both the write position and the read cursor past it, or — if no
// 2-byte match exists — emits a single literal byte and advances the write
// position by one. This is the doubling-then-refining search from §4.3,
// step for step: double the candidate length while a match exists, then
// binary-search the remainder with a halving increment.
func (e *matcher) search() step {
	start := e.w
	best := e.find(2)
	if best < 0 {
		e.w++
		return step{isLiteral: true, literal: e.win.buf[start]}
	}

	size := 2
	for {
		candidate := size << 1
		pos := e.find(candidate)
		if pos < 0 {
			break
		}
		size, best = candidate, pos
	}
	for increment := size >> 1; increment > 0; increment >>= 1 {
		candidate := size + increment
		if pos := e.find(candidate); pos >= 0 {
			size, best = candidate, pos
		}
	}

	delta := e.signedDistance(best)
	e.win.r = best + size
	e.w += size
	return step{size: size, delta: delta}
}

// find looks for the write position's next `amount` bytes elsewhere in the
// window, returning the position closest to the read cursor by absolute
// distance, or -1 if no occurrence of that length exists in either search
// half. See §4.3 for why the search is split into a forward half (matches
// starting at or after the cursor and strictly before w) and a reverse half
// (matches starting strictly before the cursor); in both halves a match may
// run past w or the cursor.
func (e *matcher) find(amount int) int {
	b := e.win.buf
	cursor := e.win.r
	w := e.w

	if amount > e.win.targetEnd-w {
		return -1
	}
	needle := b[w : w+amount]

	forward := -1
	if upper := w + amount - 1; upper > cursor {
		if idx := bytes.Index(b[cursor:upper], needle); idx >= 0 {
			forward = cursor + idx
		}
	}

	reverse := -1
	if upper := cursor + amount - 1; upper > 0 {
		if upper > len(b) {
			upper = len(b)
		}
		if idx := bytes.LastIndex(b[:upper], needle); idx >= 0 {
			reverse = idx
		}
	}

	return e.closer(forward, reverse)
}

// closer returns whichever of a, b has the smaller absolute distance to the
// read cursor, favoring a (the forward candidate) on a tie — matching
// Python's min((forward, reverse), key=abs_distance), which returns the
// first minimal element in iteration order.
func (e *matcher) closer(a, b int) int {
	if e.absDistance(a) <= e.absDistance(b) {
		return a
	}
	return b
}

// absDistance is the tie-breaking metric between forward/reverse
// candidates: the smaller of the direct distance and the wraparound
// distance, modulo the window's current length (e.w, the write position —
// this is what the decoder's buffer length will be when it applies the
// matching move, not the fixed source size). A sentinel "not found" (-1)
// sorts as larger than any real distance.
func (e *matcher) absDistance(p int) int {
	size := e.w
	if p < 0 {
		return size
	}
	direct := absInt(p - e.win.r)
	wrap := absInt(size - direct)
	if wrap < direct {
		return wrap
	}
	return direct
}

// signedDistance is the emission metric: the smaller-magnitude of the
// direct offset and its wraparound counterpart, ties favoring the direct
// offset. The decoder reapplies this value modulo its own current buffer
// length via move, which is e.w's counterpart at decode time — so the
// modulus here must be e.w, not the fixed source size.
func (e *matcher) signedDistance(p int) int {
	size := e.w
	direct := p - e.win.r
	var wrap int
	if direct < 0 {
		wrap = direct + size
	} else {
		wrap = direct - size
	}
	if absInt(wrap) < absInt(direct) {
		return wrap
	}
	return direct
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// appendLiteral appends an encoded literal command for lit, choosing single
// 0x01 opcodes below 3 bytes and a 0x81 literal run otherwise.
func appendLiteral(dst []byte, lit []byte) []byte {
	if len(lit) < 3 {
		for _, b := range lit {
			dst = append(dst, 0x01, b)
		}
		return dst
	}
	dst = append(dst, 0x81)
	dst = appendVarnum(dst, uint64(len(lit)-3))
	return append(dst, lit...)
}

// appendCopy appends an encoded copy command for a match of the given size
// at the given signed distance, splitting matches of 128 bytes or more into
// a move-and-copy of 127 followed by a copy-in-place of the remainder (the
// copy opcode's move-and-copy form can only express sizes up to 127).
func appendCopy(dst []byte, size int, delta int) []byte {
	if delta == 0 {
		dst = append(dst, 0x80)
		return appendVarnum(dst, uint64(size-1))
	}
	if size >= 128 {
		dst = appendCopy(dst, 127, delta)
		return appendCopy(dst, size-127, 0)
	}

	op := byte(size)
	if delta < 0 {
		op |= 0x80
	}
	dst = append(dst, op)
	return appendVarnum(dst, uint64(absInt(delta)-1))
}
