// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytecode

// OperandType describes the width, signedness, and semantic role of a
// single fixed-width operand following an opcode byte.
type OperandType int

// The eleven operand-type variants, each with a fixed on-the-wire
// width and signedness.
const (
	SignedValueByte OperandType = iota
	UnsignedValueByte
	ATypeByte
	LocalVariableIndexByte
	ConstantPoolIndexByte

	SignedValueShort
	BranchOffsetShort
	LocalVariableIndexShort
	ConstantPoolIndexShort

	SignedValueInt
	BranchOffsetInt
)

type operandTypeInfo struct {
	name   string
	width  int // bytes on the wire
	signed bool
}

var operandTypeTable = map[OperandType]operandTypeInfo{
	SignedValueByte:         {"SIGNED_VALUE_BYTE", 1, true},
	UnsignedValueByte:       {"UNSIGNED_VALUE_BYTE", 1, false},
	ATypeByte:               {"ATYPE_BYTE", 1, false},
	LocalVariableIndexByte:  {"LOCAL_VARIABLE_INDEX_BYTE", 1, false},
	ConstantPoolIndexByte:   {"CONSTANT_POOL_INDEX_BYTE", 1, false},
	SignedValueShort:        {"SIGNED_VALUE_SHORT", 2, true},
	BranchOffsetShort:       {"BRANCH_OFFSET_SHORT", 2, true},
	LocalVariableIndexShort: {"LOCAL_VARIABLE_INDEX_SHORT", 2, false},
	ConstantPoolIndexShort:  {"CONSTANT_POOL_INDEX_SHORT", 2, false},
	SignedValueInt:          {"SIGNED_VALUE_INT", 4, true},
	BranchOffsetInt:         {"BRANCH_OFFSET_INT", 4, true},
}

// Width reports the number of bytes this operand type occupies on the wire.
func (t OperandType) Width() int {
	return operandTypeTable[t].width
}

// Signed reports whether this operand type is sign-extended to int32
// (true) or zero-extended (false).
func (t OperandType) Signed() bool {
	return operandTypeTable[t].signed
}

func (t OperandType) String() string {
	if info, ok := operandTypeTable[t]; ok {
		return info.name
	}
	return "UNKNOWN_OPERAND_TYPE"
}

// decode reads this operand type from b at offset off and returns it
// sign- or zero-extended to int32, per its own signedness -- the
// implementation must never leak a host-native signedness contract.
func (t OperandType) decode(b []byte, off int) int32 {
	switch t {
	case SignedValueByte:
		return int32(int8(b[off]))
	case UnsignedValueByte, ATypeByte, LocalVariableIndexByte, ConstantPoolIndexByte:
		return int32(b[off])
	case SignedValueShort, BranchOffsetShort:
		return int32(int16(uint16(b[off])<<8 | uint16(b[off+1])))
	case LocalVariableIndexShort, ConstantPoolIndexShort:
		return int32(uint16(b[off])<<8 | uint16(b[off+1]))
	case SignedValueInt, BranchOffsetInt:
		return int32(uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3]))
	default:
		panic(&InternalError{Message: "decode: unhandled OperandType"})
	}
}
