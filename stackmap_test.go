// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "testing"

// TestFrameTypeRangesDisjoint checks that every byte value 0..255 is
// claimed by at most one FrameType, and each range's bounds are
// ordered.
func TestFrameTypeRangesDisjoint(t *testing.T) {
	for ft, r := range frameTypeRanges {
		if r.min > r.max {
			t.Errorf("%s: min %d > max %d", ft, r.min, r.max)
		}
	}
	for v := 0; v <= 255; v++ {
		claimed := 0
		for _, r := range frameTypeRanges {
			if byte(v) >= r.min && byte(v) <= r.max {
				claimed++
			}
		}
		if claimed > 1 {
			t.Errorf("byte %d claimed by %d frame types", v, claimed)
		}
	}
}

func TestFrameTypeForUnsignedByte(t *testing.T) {
	tests := []struct {
		value byte
		want  FrameType
		ok    bool
	}{
		{0, FrameSame, true},
		{63, FrameSame, true},
		{64, FrameSameLocals1StackItem, true},
		{127, FrameSameLocals1StackItem, true},
		{128, 0, false},
		{200, 0, false},
		{246, 0, false},
		{247, FrameSameLocals1StackItemExtended, true},
		{248, FrameChop, true},
		{250, FrameChop, true},
		{251, FrameSameExtended, true},
		{252, FrameAppend, true},
		{254, FrameAppend, true},
		{255, FrameFull, true},
	}
	for _, tt := range tests {
		got, err := frameTypeForUnsignedByte(tt.value)
		if tt.ok {
			if err != nil {
				t.Errorf("forUnsignedByte(%d): %v", tt.value, err)
			} else if got != tt.want {
				t.Errorf("forUnsignedByte(%d) = %s, want %s", tt.value, got, tt.want)
			}
		} else if err == nil {
			t.Errorf("forUnsignedByte(%d) = %s, want error (reserved)", tt.value, got)
		}
	}
}

func TestParseStackMapFrames(t *testing.T) {
	parse := func(t *testing.T, data []byte) StackMapFrame {
		t.Helper()
		r := newReader(data, &contextStack{})
		f, err := parseStackMapFrame(r)
		if err != nil {
			t.Fatalf("parseStackMapFrame(% x): %v", data, err)
		}
		if r.remaining() != 0 {
			t.Fatalf("frame left %d unconsumed bytes", r.remaining())
		}
		return f
	}

	t.Run("same", func(t *testing.T) {
		f := parse(t, []byte{17})
		if f.Type != FrameSame || f.OffsetDelta != 17 {
			t.Fatalf("frame = %+v, want SAME delta 17", f)
		}
	})

	t.Run("same locals 1 stack item", func(t *testing.T) {
		f := parse(t, []byte{70, byte(VerificationInteger)})
		if f.Type != FrameSameLocals1StackItem || f.OffsetDelta != 6 {
			t.Fatalf("frame = %+v, want SAME_LOCALS_1_STACK_ITEM delta 6", f)
		}
		if len(f.Stack) != 1 || f.Stack[0].Tag != VerificationInteger {
			t.Fatalf("stack = %+v, want one INTEGER entry", f.Stack)
		}
	})

	t.Run("same locals 1 stack item extended", func(t *testing.T) {
		f := parse(t, []byte{247, 0x01, 0x00, byte(VerificationObject), 0x00, 0x05})
		if f.Type != FrameSameLocals1StackItemExtended || f.OffsetDelta != 256 {
			t.Fatalf("frame = %+v, want extended delta 256", f)
		}
		if len(f.Stack) != 1 || f.Stack[0].Tag != VerificationObject || f.Stack[0].CPoolIndex != 5 {
			t.Fatalf("stack = %+v, want OBJECT cp#5", f.Stack)
		}
	})

	t.Run("chop", func(t *testing.T) {
		f := parse(t, []byte{250, 0x00, 0x09})
		if f.Type != FrameChop || f.OffsetDelta != 9 || f.ChopCount != 2 {
			t.Fatalf("frame = %+v, want CHOP k=2 delta 9", f)
		}
	})

	t.Run("same extended", func(t *testing.T) {
		f := parse(t, []byte{251, 0x00, 0x40})
		if f.Type != FrameSameExtended || f.OffsetDelta != 64 {
			t.Fatalf("frame = %+v, want SAME_EXTENDED delta 64", f)
		}
	})

	t.Run("append", func(t *testing.T) {
		f := parse(t, []byte{253, 0x00, 0x03,
			byte(VerificationLong),
			byte(VerificationUninitialized), 0x00, 0x0C})
		if f.Type != FrameAppend || f.OffsetDelta != 3 {
			t.Fatalf("frame = %+v, want APPEND delta 3", f)
		}
		if len(f.Locals) != 2 {
			t.Fatalf("locals = %+v, want 2 entries", f.Locals)
		}
		if f.Locals[1].Tag != VerificationUninitialized || f.Locals[1].Offset != 12 {
			t.Fatalf("locals[1] = %+v, want UNINITIALIZED offset 12", f.Locals[1])
		}
	})

	t.Run("full", func(t *testing.T) {
		f := parse(t, []byte{255, 0x00, 0x07,
			0x00, 0x01, byte(VerificationTop),
			0x00, 0x02, byte(VerificationNull), byte(VerificationUninitializedThis)})
		if f.Type != FrameFull || f.OffsetDelta != 7 {
			t.Fatalf("frame = %+v, want FULL delta 7", f)
		}
		if len(f.Locals) != 1 || len(f.Stack) != 2 {
			t.Fatalf("locals/stack = %d/%d, want 1/2", len(f.Locals), len(f.Stack))
		}
	})

	t.Run("reserved frame type byte", func(t *testing.T) {
		r := newReader([]byte{130}, &contextStack{})
		if _, err := parseStackMapFrame(r); err == nil {
			t.Fatal("reserved frame-type byte 130 accepted, want error")
		}
	})

	t.Run("bad verification tag", func(t *testing.T) {
		r := newReader([]byte{64, 9}, &contextStack{})
		if _, err := parseStackMapFrame(r); err == nil {
			t.Fatal("verification tag 9 accepted, want error")
		}
	})
}
