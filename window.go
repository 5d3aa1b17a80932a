// SPDX-License-Identifier: GPL-2.0-only

package lzp

import "sync"

// window is the unified byte buffer shared by the decoder and encoder: a
// fixed source region (the concatenated sources) followed by a growing
// target region, plus a read cursor that the decoder's move/copy commands
// and the encoder's match search both operate on.
type window struct {
	buf         []byte
	r           int // read cursor
	targetStart int // len(sources concatenated); fixed after init
	targetEnd   int // len(buf); non-decreasing
}

// windowPool reuses window structs across Decode/Encode calls, the way the
// teacher pools its sliding-window dictionary (sliding_window_pool.go) to
// avoid reallocating hot-path state on every call.
var windowPool = sync.Pool{
	New: func() any { return &window{} },
}

func acquireWindow() *window {
	w := windowPool.Get().(*window)
	*w = window{}
	return w
}

func releaseWindow(w *window) {
	if w == nil {
		return
	}
	w.buf = nil
	windowPool.Put(w)
}

// initSources concatenates sources into buf and positions the cursor at 0.
func (w *window) initSources(sources [][]byte) {
	total := 0
	for _, s := range sources {
		total += len(s)
	}
	w.buf = make([]byte, 0, total)
	for _, s := range sources {
		w.buf = append(w.buf, s...)
	}
	w.targetStart = len(w.buf)
	w.targetEnd = len(w.buf)
	w.r = 0
}

// initWithTarget is initSources followed by appending the already-known
// target; used by the encoder, whose search treats [0, targetStart) as the
// committed source region regardless of what follows it in buf.
func (w *window) initWithTarget(sources [][]byte, target []byte) {
	w.initSources(sources)
	w.buf = append(w.buf, target...)
	w.targetEnd = len(w.buf)
}

// target returns the decoded/encoded output: buf[targetStart:targetEnd].
func (w *window) target() []byte {
	return w.buf[w.targetStart:w.targetEnd]
}

// append adds data to the target region without moving the cursor.
func (w *window) append(data []byte) {
	w.buf = append(w.buf, data...)
	w.targetEnd += len(data)
}

// copy appends n bytes read starting at the cursor, advancing the cursor by
// n. Unlike move, the cursor does not wrap: it may cross targetStart and
// continue reading the bytes this very call is appending, which is what
// makes run-length self-reference work. The growth technique mirrors the
// teacher's copyBackRef (copy.go): seed one full "distance" chunk, then
// double from the newly-written output, since a naive copy() call would
// read behind its own write when the cursor has already been overtaken.
func (w *window) copy(n int) error {
	if n < 1 {
		return nil
	}

	dist := len(w.buf) - w.r
	if dist <= 0 || w.r < 0 {
		return ErrInvalidCopy
	}

	pos := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)

	if dist >= n {
		copy(w.buf[pos:pos+n], w.buf[w.r:w.r+n])
	} else {
		copy(w.buf[pos:pos+dist], w.buf[w.r:pos])
		copied := dist
		for copied < n {
			c := copy(w.buf[pos+copied:pos+n], w.buf[pos:pos+copied])
			copied += c
		}
	}

	w.r += n
	w.targetEnd += n
	return nil
}

// move relocates the cursor by a signed delta, wrapping modulo the window's
// current length (targetEnd, i.e. the source region plus however much target
// has been produced so far) — the Euclidean remainder, always in
// [0, targetEnd). The modulus grows as decoding proceeds: a wrapped delta
// emitted against a longer window than the one in effect when it is applied
// would alias to the wrong byte, so it must track targetEnd, not the fixed
// source size. Undefined — and rejected — when targetEnd is 0.
func (w *window) move(delta int) error {
	if w.targetEnd == 0 {
		return ErrInvalidMove
	}
	m := (w.r + delta) % w.targetEnd
	if m < 0 {
		m += w.targetEnd
	}
	w.r = m
	return nil
}
