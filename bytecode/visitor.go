// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytecode

// Visitor receives structural parse events from Parse in ascending
// byte-offset order. Implementations build whichever representation
// they need -- a disassembly listing, a control-flow graph, nothing at
// all -- without the parser itself ever allocating a tree.
type Visitor interface {
	// VisitNoOperand is called for every zero-operand opcode, including
	// the reserved BREAKPOINT, IMPDEP1, and IMPDEP2 byte values.
	VisitNoOperand(position int, opcode Opcode)

	// VisitOneOperand is called for every one-operand opcode and for
	// WIDE-prefixed ILOAD/FLOAD/ALOAD/LLOAD/DLOAD/ISTORE/FSTORE/ASTORE/
	// LSTORE/DSTORE/RET. operand is sign- or zero-extended to int32
	// per the opcode's OperandType. position is the offset of the
	// opcode byte itself (the WIDE prefix's offset for widened forms).
	VisitOneOperand(position int, opcode Opcode, operand int32)

	// VisitTwoOperand is called for every two-operand opcode: IINC
	// (plain or WIDE-prefixed), INVOKEINTERFACE (index, count),
	// MULTIANEWARRAY (index, dimensions).
	VisitTwoOperand(position int, opcode Opcode, operand1, operand2 int32)

	// VisitLookupSwitch is called once per LOOKUPSWITCH instruction.
	// pairs is a read-only slice into the parser's input, numPairs*8
	// bytes long, holding numPairs big-endian (match int32, offset
	// int32) pairs back to back in file order.
	VisitLookupSwitch(position int, defaultOffset int32, numPairs int32, pairs []byte)

	// VisitTableSwitch is called once per TABLESWITCH instruction.
	// jumpOffsets is a read-only slice into the parser's input,
	// (high-low+1)*4 bytes long, holding that many big-endian int32
	// jump offsets back to back in file order.
	VisitTableSwitch(position int, defaultOffset, low, high int32, jumpOffsets []byte)
}

// LookupSwitchPair returns the i'th (match, offset) pair from the raw
// bytes VisitLookupSwitch received in pairs.
func LookupSwitchPair(pairs []byte, i int) (match, offset int32) {
	off := i * 8
	match = int32(uint32(pairs[off])<<24 | uint32(pairs[off+1])<<16 | uint32(pairs[off+2])<<8 | uint32(pairs[off+3]))
	offset = int32(uint32(pairs[off+4])<<24 | uint32(pairs[off+5])<<16 | uint32(pairs[off+6])<<8 | uint32(pairs[off+7]))
	return match, offset
}

// TableSwitchJumpOffset returns the i'th jump offset from the raw
// bytes VisitTableSwitch received in jumpOffsets.
func TableSwitchJumpOffset(jumpOffsets []byte, i int) int32 {
	off := i * 4
	return int32(uint32(jumpOffsets[off])<<24 | uint32(jumpOffsets[off+1])<<16 | uint32(jumpOffsets[off+2])<<8 | uint32(jumpOffsets[off+3]))
}
