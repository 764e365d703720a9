// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import (
	"errors"
	"testing"

	"github.com/gojclass/jclass/bytecode"
)

type opcodeRecorder struct {
	opcodes []bytecode.Opcode
}

func (r *opcodeRecorder) VisitNoOperand(position int, opcode bytecode.Opcode) {
	r.opcodes = append(r.opcodes, opcode)
}
func (r *opcodeRecorder) VisitOneOperand(position int, opcode bytecode.Opcode, operand int32) {
	r.opcodes = append(r.opcodes, opcode)
}
func (r *opcodeRecorder) VisitTwoOperand(position int, opcode bytecode.Opcode, operand1, operand2 int32) {
	r.opcodes = append(r.opcodes, opcode)
}
func (r *opcodeRecorder) VisitLookupSwitch(position int, defaultOffset int32, numPairs int32, pairs []byte) {
	r.opcodes = append(r.opcodes, bytecode.Lookupswitch)
}
func (r *opcodeRecorder) VisitTableSwitch(position int, defaultOffset, low, high int32, jumpOffsets []byte) {
	r.opcodes = append(r.opcodes, bytecode.Tableswitch)
}

func TestParseCodeAttributeAndBytecode(t *testing.T) {
	cp := &ConstantPool{entries: []ConstantPoolEntry{
		nil,
		Utf8Constant{Value: "Code"},
	}}

	methodCode := []byte{0x04, 0xAC} // iconst_1; ireturn

	var data []byte
	data = append(data, 0x00, 0x01) // attributes_count
	data = append(data, 0x00, 0x01) // name_index -> "Code"
	data = append(data, 0x00, 0x00, 0x00, byte(12+len(methodCode)))
	data = append(data, 0x00, 0x02) // max_stack
	data = append(data, 0x00, 0x01) // max_locals
	data = append(data, 0x00, 0x00, 0x00, byte(len(methodCode)))
	data = append(data, methodCode...)
	data = append(data, 0x00, 0x00) // exception_table_length
	data = append(data, 0x00, 0x00) // nested attributes_count

	r := newReader(data, &contextStack{})
	attrs, err := parseAttributeTable(r, cp, ContextMethodInfo, Java8)
	if err != nil {
		t.Fatalf("parseAttributeTable: %v", err)
	}
	code, ok := attrs[0].(*CodeAttribute)
	if !ok {
		t.Fatalf("attrs[0] = %#v, want *CodeAttribute", attrs[0])
	}
	if code.MaxStack != 2 || code.MaxLocals != 1 {
		t.Fatalf("max_stack/max_locals = %d/%d, want 2/1", code.MaxStack, code.MaxLocals)
	}
	if len(code.ExceptionTable) != 0 || len(code.Attributes) != 0 {
		t.Fatalf("exception table/attributes = %d/%d entries, want 0/0",
			len(code.ExceptionTable), len(code.Attributes))
	}

	// The returned Code slice must be an owned copy, not a view of the
	// parse input. The iconst_1 byte sits 6 bytes from the end (code,
	// then exception_table_length and nested attributes_count).
	data[len(data)-6] = 0x00
	if code.Code[0] != 0x04 {
		t.Fatal("Code attribute aliases the parse input instead of copying it")
	}

	rec := &opcodeRecorder{}
	if err := code.ParseBytecode(rec); err != nil {
		t.Fatalf("ParseBytecode: %v", err)
	}
	if len(rec.opcodes) != 2 || rec.opcodes[0] != bytecode.Iconst1 || rec.opcodes[1] != bytecode.Ireturn {
		t.Fatalf("opcodes = %v, want [iconst_1 ireturn]", rec.opcodes)
	}
}

func TestParseBytecodeReportsFormatError(t *testing.T) {
	code := &CodeAttribute{Code: []byte{0xCB}} // unassigned opcode byte
	err := code.ParseBytecode(&opcodeRecorder{})
	if err == nil {
		t.Fatal("unassigned opcode accepted, want error")
	}
	var bcErr *ByteCodeFormatError
	if !errors.As(err, &bcErr) {
		t.Fatalf("err = %v (%T), want *ByteCodeFormatError", err, err)
	}
	if bcErr.Position != 0 {
		t.Fatalf("position = %d, want 0", bcErr.Position)
	}
	var fe *bytecode.FormatError
	if !errors.As(err, &fe) {
		t.Fatal("ByteCodeFormatError must wrap the bytecode package's FormatError")
	}
}

func TestAttributeLengthMismatch(t *testing.T) {
	cp := &ConstantPool{entries: []ConstantPoolEntry{
		nil,
		Utf8Constant{Value: "ConstantValue"},
	}}

	var data []byte
	data = append(data, 0x00, 0x01) // attributes_count
	data = append(data, 0x00, 0x01) // name_index -> "ConstantValue"
	data = append(data, 0x00, 0x00, 0x00, 0x03) // declared length 3, body is 2
	data = append(data, 0x00, 0x02, 0xFF)

	r := newReader(data, &contextStack{})
	_, err := parseAttributeTable(r, cp, ContextFieldInfo, Java8)
	if err == nil {
		t.Fatal("length mismatch accepted, want error")
	}
	var cfErr *ClassFormatError
	if !errors.As(err, &cfErr) {
		t.Fatalf("err = %v (%T), want *ClassFormatError", err, err)
	}
}

// TestUnknownAttributeFallbacks checks the Unknown fallback in all
// three shapes: an unrecognized name, a predefined name in the wrong
// context, and a predefined name in a class file older than the
// attribute kind.
func TestUnknownAttributeFallbacks(t *testing.T) {
	cp := &ConstantPool{entries: []ConstantPoolEntry{
		nil,
		Utf8Constant{Value: "MadeUpAttribute"},
		Utf8Constant{Value: "ConstantValue"},
		Utf8Constant{Value: "StackMapTable"},
	}}

	tests := []struct {
		name      string
		nameIndex byte
		ctx       AttributeContext
		version   ClassFileVersion
	}{
		{"unrecognized name", 1, ContextClassFile, Java8},
		{"wrong context", 2, ContextClassFile, Java8}, // ConstantValue is FIELD-only
		{"version too old", 3, ContextCode, Java5},    // StackMapTable is Java 6+
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data []byte
			data = append(data, 0x00, 0x01)
			data = append(data, 0x00, tt.nameIndex)
			data = append(data, 0x00, 0x00, 0x00, 0x02)
			data = append(data, 0xAB, 0xCD)

			r := newReader(data, &contextStack{})
			attrs, err := parseAttributeTable(r, cp, tt.ctx, tt.version)
			if err != nil {
				t.Fatalf("parseAttributeTable: %v", err)
			}
			raw, ok := attrs[0].(RawAttribute)
			if !ok {
				t.Fatalf("attrs[0] = %#v, want RawAttribute", attrs[0])
			}
			if len(raw.Data) != 2 || raw.Data[0] != 0xAB {
				t.Fatalf("raw data = % x, want AB CD", raw.Data)
			}
			if raw.Kind() != AttrUnknown {
				t.Fatalf("kind = %v, want AttrUnknown", raw.Kind())
			}
		})
	}
}
