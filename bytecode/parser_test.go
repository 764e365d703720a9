// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytecode

import "testing"

type recording struct {
	noOperand    []noOperandEvent
	oneOperand   []oneOperandEvent
	twoOperand   []twoOperandEvent
	lookupSwitch []lookupSwitchEvent
	tableSwitch  []tableSwitchEvent
}

type noOperandEvent struct {
	position int
	opcode   Opcode
}
type oneOperandEvent struct {
	position int
	opcode   Opcode
	operand  int32
}
type twoOperandEvent struct {
	position           int
	opcode             Opcode
	operand1, operand2 int32
}
type lookupSwitchEvent struct {
	position      int
	defaultOffset int32
	numPairs      int32
	pairs         []byte
}
type tableSwitchEvent struct {
	position                int
	defaultOffset, low, high int32
	jumpOffsets             []byte
}

func (r *recording) VisitNoOperand(position int, opcode Opcode) {
	r.noOperand = append(r.noOperand, noOperandEvent{position, opcode})
}
func (r *recording) VisitOneOperand(position int, opcode Opcode, operand int32) {
	r.oneOperand = append(r.oneOperand, oneOperandEvent{position, opcode, operand})
}
func (r *recording) VisitTwoOperand(position int, opcode Opcode, operand1, operand2 int32) {
	r.twoOperand = append(r.twoOperand, twoOperandEvent{position, opcode, operand1, operand2})
}
func (r *recording) VisitLookupSwitch(position int, defaultOffset int32, numPairs int32, pairs []byte) {
	r.lookupSwitch = append(r.lookupSwitch, lookupSwitchEvent{position, defaultOffset, numPairs, pairs})
}
func (r *recording) VisitTableSwitch(position int, defaultOffset, low, high int32, jumpOffsets []byte) {
	r.tableSwitch = append(r.tableSwitch, tableSwitchEvent{position, defaultOffset, low, high, jumpOffsets})
}

func TestParseZeroOperand(t *testing.T) {
	code := []byte{byte(Nop), byte(Return)}
	r := &recording{}
	if err := Parse(code, r); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(r.noOperand) != 2 {
		t.Fatalf("expected 2 no-operand events, got %d", len(r.noOperand))
	}
	if r.noOperand[0] != (noOperandEvent{0, Nop}) || r.noOperand[1] != (noOperandEvent{1, Return}) {
		t.Fatalf("unexpected events: %+v", r.noOperand)
	}
}

func TestParseWideIinc(t *testing.T) {
	// C4 84 00 0A FF FF: wide iinc #10, -1
	code := []byte{0xC4, 0x84, 0x00, 0x0A, 0xFF, 0xFF}
	r := &recording{}
	if err := Parse(code, r); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(r.twoOperand) != 1 {
		t.Fatalf("expected 1 two-operand event, got %d", len(r.twoOperand))
	}
	got := r.twoOperand[0]
	if got.position != 0 || got.opcode != Iinc || got.operand1 != 10 || got.operand2 != -1 {
		t.Fatalf("unexpected wide iinc event: %+v", got)
	}
}

func TestParseWideInvalidTarget(t *testing.T) {
	// wide followed by NOP is not a valid widenable opcode.
	code := []byte{0xC4, byte(Nop)}
	if err := Parse(code, &recording{}); err == nil {
		t.Fatal("expected format error for invalid wide target")
	}
}

func TestParseInvokeInterfaceMandatoryZero(t *testing.T) {
	valid := []byte{0xB9, 0x00, 0x01, 0x02, 0x00}
	if err := Parse(valid, &recording{}); err != nil {
		t.Fatalf("valid invokeinterface rejected: %v", err)
	}

	invalid := []byte{0xB9, 0x00, 0x01, 0x02, 0x01}
	fe := parseExpectingFormatError(t, invalid)
	if fe.Position != 0 {
		t.Fatalf("expected position 0, got %d", fe.Position)
	}
}

func TestParseInvokeDynamicMandatoryZero(t *testing.T) {
	valid := []byte{0xBA, 0x00, 0x01, 0x00, 0x00}
	if err := Parse(valid, &recording{}); err != nil {
		t.Fatalf("valid invokedynamic rejected: %v", err)
	}

	invalid := []byte{0xBA, 0x00, 0x01, 0x00, 0x01}
	parseExpectingFormatError(t, invalid)
}

func TestParseTableSwitchPadding(t *testing.T) {
	// TABLESWITCH, 3 pad bytes, default=+8, low=0, high=1, offsets {+4,+8}
	code := []byte{
		byte(Tableswitch), 0, 0, 0,
		0, 0, 0, 8,
		0, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 0, 4,
		0, 0, 0, 8,
	}
	r := &recording{}
	if err := Parse(code, r); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(r.tableSwitch) != 1 {
		t.Fatalf("expected 1 tableswitch event, got %d", len(r.tableSwitch))
	}
	got := r.tableSwitch[0]
	if got.defaultOffset != 8 || got.low != 0 || got.high != 1 {
		t.Fatalf("unexpected tableswitch header: %+v", got)
	}
	if len(got.jumpOffsets) != 8 {
		t.Fatalf("expected 8 bytes of jump offsets, got %d", len(got.jumpOffsets))
	}
	if TableSwitchJumpOffset(got.jumpOffsets, 0) != 4 || TableSwitchJumpOffset(got.jumpOffsets, 1) != 8 {
		t.Fatalf("unexpected jump offsets: %v", got.jumpOffsets)
	}
}

func TestTableSwitchHighLessThanLow(t *testing.T) {
	code := []byte{
		byte(Tableswitch), 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 0, 0,
	}
	parseExpectingFormatError(t, code)
}

func TestLookupSwitchZeroPairsValid(t *testing.T) {
	code := []byte{
		byte(Lookupswitch), 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	r := &recording{}
	if err := Parse(code, r); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(r.lookupSwitch) != 1 || r.lookupSwitch[0].numPairs != 0 {
		t.Fatalf("unexpected lookupswitch events: %+v", r.lookupSwitch)
	}
}

func TestLookupSwitchNegativePairs(t *testing.T) {
	code := []byte{
		byte(Lookupswitch), 0, 0, 0,
		0, 0, 0, 0,
		0xFF, 0xFF, 0xFF, 0xFF,
	}
	parseExpectingFormatError(t, code)
}

func TestLookupSwitchPaddingByOffset(t *testing.T) {
	tests := []struct {
		prefixLen int
		wantPad   int
	}{
		{0, 3},
		{1, 2},
		{2, 1},
		{3, 0},
	}
	for _, tt := range tests {
		prefix := make([]byte, tt.prefixLen)
		for i := range prefix {
			prefix[i] = byte(Nop)
		}
		code := append(prefix, byte(Lookupswitch))
		code = append(code, make([]byte, tt.wantPad)...)
		code = append(code, 0, 0, 0, 0) // default
		code = append(code, 0, 0, 0, 0) // npairs = 0
		r := &recording{}
		if err := Parse(code, r); err != nil {
			t.Fatalf("prefixLen=%d: Parse failed: %v", tt.prefixLen, err)
		}
		if len(r.lookupSwitch) != 1 {
			t.Fatalf("prefixLen=%d: expected 1 lookupswitch event", tt.prefixLen)
		}
	}
}

func parseExpectingFormatError(t *testing.T, code []byte) *FormatError {
	t.Helper()
	err := Parse(code, &recording{})
	if err == nil {
		t.Fatal("expected format error, got nil")
	}
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T: %v", err, err)
	}
	return fe
}
