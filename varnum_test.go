// SPDX-License-Identifier: GPL-2.0-only

package lzp

import (
	"bytes"
	"errors"
	"testing"
)

func TestVarnum_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 63, 64, 127, 128, 129, 16383, 16384, 1 << 20, 1<<35 - 1, 1 << 63}

	for _, v := range values {
		buf := appendVarnum(nil, v)
		pos := 0
		got, err := readVarnum(buf, &pos)
		if err != nil {
			t.Fatalf("readVarnum(%d) failed: %v", v, err)
		}
		if got != v {
			t.Fatalf("round-trip mismatch: wrote %d, read %d", v, got)
		}
		if pos != len(buf) {
			t.Fatalf("readVarnum(%d) left pos=%d, want %d", v, pos, len(buf))
		}
	}
}

func TestVarnum_ShortestForm(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
	}
	for _, c := range cases {
		got := appendVarnum(nil, c.v)
		if !bytes.Equal(got, c.want) {
			t.Fatalf("appendVarnum(%d) = % x, want % x", c.v, got, c.want)
		}
	}
}

func TestVarnum_Truncated(t *testing.T) {
	pos := 0
	_, err := readVarnum([]byte{0x80}, &pos)
	if !errors.Is(err, ErrTruncatedPatch) {
		t.Fatalf("expected ErrTruncatedPatch, got %v", err)
	}
}

func TestVarnum_MalformedNeverTerminates(t *testing.T) {
	src := bytes.Repeat([]byte{0x80}, 20)
	pos := 0
	_, err := readVarnum(src, &pos)
	if !errors.Is(err, ErrMalformedVarnum) {
		t.Fatalf("expected ErrMalformedVarnum, got %v", err)
	}
}
