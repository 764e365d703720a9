// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "fmt"

// FrameType categorizes a StackMapFrame's leading tag byte into one of
// the shapes JVMS §4.7.4 defines: CHOP occupies 248..250, SAME_EXTENDED
// stands alone at 251, and FULL at 255.
type FrameType int

const (
	FrameSame FrameType = iota
	FrameSameLocals1StackItem
	FrameSameLocals1StackItemExtended
	FrameChop
	FrameSameExtended
	FrameAppend
	FrameFull
)

type frameTypeRange struct {
	min, max byte
	name     string
}

var frameTypeRanges = map[FrameType]frameTypeRange{
	FrameSame:                         {0, 63, "SAME"},
	FrameSameLocals1StackItem:         {64, 127, "SAME_LOCALS_1_STACK_ITEM"},
	FrameSameLocals1StackItemExtended: {247, 247, "SAME_LOCALS_1_STACK_ITEM_EXTENDED"},
	FrameChop:                         {248, 250, "CHOP"},
	FrameSameExtended:                 {251, 251, "SAME_EXTENDED"},
	FrameAppend:                       {252, 254, "APPEND"},
	FrameFull:                         {255, 255, "FULL"},
}

func (f FrameType) String() string {
	if r, ok := frameTypeRanges[f]; ok {
		return r.name
	}
	return "UNKNOWN"
}

// MinValue and MaxValue return the inclusive byte range f covers.
func (f FrameType) MinValue() byte { return frameTypeRanges[f].min }
func (f FrameType) MaxValue() byte { return frameTypeRanges[f].max }

// frameTypeForUnsignedByte returns the unique FrameType whose range
// contains v, or an error if v falls in a reserved gap (128..246,
// 252..254 never occurs since 252..254 is APPEND; the remaining gap is
// 128..246).
func frameTypeForUnsignedByte(v byte) (FrameType, error) {
	for ft, r := range frameTypeRanges {
		if v >= r.min && v <= r.max {
			return ft, nil
		}
	}
	return 0, fmt.Errorf("byte value %d does not fall in any defined FrameType range", v)
}

// VerificationTypeTag discriminates a VerificationTypeInfo's variant
// (§4.7.4).
type VerificationTypeTag byte

const (
	VerificationTop               VerificationTypeTag = 0
	VerificationInteger           VerificationTypeTag = 1
	VerificationFloat             VerificationTypeTag = 2
	VerificationDouble            VerificationTypeTag = 3
	VerificationLong              VerificationTypeTag = 4
	VerificationNull              VerificationTypeTag = 5
	VerificationUninitializedThis VerificationTypeTag = 6
	VerificationObject            VerificationTypeTag = 7
	VerificationUninitialized     VerificationTypeTag = 8
)

// VerificationTypeInfo is one verification-type entry of a stack map
// frame's locals or stack list. CPoolIndex is meaningful only when Tag
// == VerificationObject; Offset (the bytecode offset of the NEW
// instruction that produced the value) only when Tag ==
// VerificationUninitialized.
type VerificationTypeInfo struct {
	Tag        VerificationTypeTag
	CPoolIndex uint16
	Offset     uint16
}

// StackMapFrame is a tagged union over the seven shapes §4.7.4 defines.
// OffsetDelta is implicit (derivable from the tag byte) for Type ==
// FrameSame and FrameSameLocals1StackItem; for every other type it is
// read explicitly and stored here.
type StackMapFrame struct {
	Type FrameType

	// The raw frame-type byte, preserved so a writer can round-trip
	// the frame without re-deriving it.
	Tag byte

	OffsetDelta uint16

	// SAME_LOCALS_1_STACK_ITEM, SAME_LOCALS_1_STACK_ITEM_EXTENDED: one
	// entry.
	Stack []VerificationTypeInfo

	// CHOP: k = Tag - 248 locals removed from the end of the previous
	// frame's locals; no verification data.
	ChopCount int

	// APPEND: k = Tag - 251 new locals.
	Locals []VerificationTypeInfo

	// FULL: counted lists of locals and stack (Locals and Stack both
	// populated from their explicit counts).
}
