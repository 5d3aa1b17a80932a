// SPDX-License-Identifier: GPL-2.0-only

package lzp

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lzp benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkEncode(b *testing.B) {
	sources := [][]byte{[]byte("ABCDEF0123456789lzp benchmark text payload ")}
	for name, target := range benchmarkInputSets() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(target)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Encode(target, sources, nil); err != nil {
					b.Fatalf("Encode failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	sources := [][]byte{[]byte("ABCDEF0123456789lzp benchmark text payload ")}
	for name, target := range benchmarkInputSets() {
		patch, err := Encode(target, sources, nil)
		if err != nil {
			b.Fatalf("setup Encode failed for %s: %v", name, err)
		}
		if out, err := Decode(patch, sources, nil); err != nil || !bytes.Equal(out, target) {
			b.Fatalf("setup Decode failed for %s: %v", name, err)
		}

		b.Run(fmt.Sprintf("%s/patch-%dB", name, len(patch)), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(target)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decode(patch, sources, nil); err != nil {
					b.Fatalf("Decode failed: %v", err)
				}
			}
		})
	}
}
