// SPDX-License-Identifier: GPL-2.0-only

package lzp

// commandKind enumerates the five shapes of a patch command, letting the
// decoder loop dispatch on a tagged value instead of re-deriving the
// opcode's meaning at every call site. Grounded on the sum-type dispatch
// chronos-tachyon/peggy's peggyvm package uses for its bytecode opcodes
// (peggyvm/opcode.go's OpCode enum + Meta table).
type commandKind uint8

const (
	cmdEnd         commandKind = iota // v=0, d=0: halt
	cmdCopyInPlace                    // v=0, d=1: copy N+1 bytes, no move first
	cmdLiteral                        // v=1, d=0: single literal byte
	cmdLiteralRun                     // v=1, d=1: literal run of N+3 bytes
	cmdMoveCopy                       // v=2..127: move by ±(N+1), then copy v bytes
)

// classifyOpcode maps an opcode byte to its command kind. The table is
// total over op in [0, 255]: every byte value classifies to exactly one
// kind, so the decoder never encounters an "unrecognized opcode".
func classifyOpcode(op byte) commandKind {
	v := op & 0x7f
	d := op&0x80 != 0

	switch {
	case v == 0 && !d:
		return cmdEnd
	case v == 0 && d:
		return cmdCopyInPlace
	case v == 1 && !d:
		return cmdLiteral
	case v == 1 && d:
		return cmdLiteralRun
	default:
		return cmdMoveCopy
	}
}
