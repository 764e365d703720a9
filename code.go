// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import (
	"errors"

	"github.com/gojclass/jclass/bytecode"
)

// ExceptionTableEntry is one entry of a Code attribute's exception
// table (§4.7.3). CatchTypeIndex is 0 for a finally-style catch-all.
type ExceptionTableEntry struct {
	StartPC        uint16
	EndPC          uint16
	HandlerPC      uint16
	CatchTypeIndex uint16
}

// CodeAttribute is the Code attribute (§4.7.3): a method's bytecode,
// its exception table, and its own nested attributes (StackMapTable,
// LineNumberTable, LocalVariableTable, and so on).
type CodeAttribute struct {
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte
	ExceptionTable []ExceptionTableEntry
	Attributes     []Attribute
}

func (*CodeAttribute) Kind() AttributeKind { return AttrCode }

// ParseBytecode walks the attribute's code array in instruction order,
// forwarding structural events to v. A malformed instruction is
// reported as a *ByteCodeFormatError wrapping the bytecode package's
// own error, with the position relative to the start of the code array.
func (c *CodeAttribute) ParseBytecode(v bytecode.Visitor) error {
	err := bytecode.Parse(c.Code, v)
	if err == nil {
		return nil
	}
	var fe *bytecode.FormatError
	if errors.As(err, &fe) {
		return &ByteCodeFormatError{Position: fe.Position, Message: fe.Message, Cause: err}
	}
	return err
}

// StackMapTable returns the nested StackMapTable attribute's frames,
// or nil if the Code attribute carries none.
func (c *CodeAttribute) StackMapTable() []StackMapFrame {
	for _, a := range c.Attributes {
		if s, ok := a.(StackMapTableAttribute); ok {
			return s.Entries
		}
	}
	return nil
}

// StackMapTableAttribute holds a StackMapTable attribute's frame
// sequence.
type StackMapTableAttribute struct {
	Entries []StackMapFrame
}

func (StackMapTableAttribute) Kind() AttributeKind { return AttrStackMapTable }
