// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

// MethodHandleReferenceKind is the reference_kind byte of a
// METHOD_HANDLE constant-pool entry (JVM Specification §4.4.8). Values
// 1 through 9 are the only ones defined.
type MethodHandleReferenceKind byte

// The nine defined reference kinds.
const (
	RefGetField         MethodHandleReferenceKind = 1
	RefGetStatic        MethodHandleReferenceKind = 2
	RefPutField         MethodHandleReferenceKind = 3
	RefPutStatic        MethodHandleReferenceKind = 4
	RefInvokeVirtual    MethodHandleReferenceKind = 5
	RefInvokeStatic     MethodHandleReferenceKind = 6
	RefInvokeSpecial    MethodHandleReferenceKind = 7
	RefNewInvokeSpecial MethodHandleReferenceKind = 8
	RefInvokeInterface  MethodHandleReferenceKind = 9
)

var methodHandleReferenceKindNames = map[MethodHandleReferenceKind]string{
	RefGetField:         "REF_getField",
	RefGetStatic:        "REF_getStatic",
	RefPutField:         "REF_putField",
	RefPutStatic:        "REF_putStatic",
	RefInvokeVirtual:    "REF_invokeVirtual",
	RefInvokeStatic:     "REF_invokeStatic",
	RefInvokeSpecial:    "REF_invokeSpecial",
	RefNewInvokeSpecial: "REF_newInvokeSpecial",
	RefInvokeInterface:  "REF_invokeInterface",
}

// Valid reports whether k is one of the nine defined reference kinds.
func (k MethodHandleReferenceKind) Valid() bool {
	_, ok := methodHandleReferenceKindNames[k]
	return ok
}

func (k MethodHandleReferenceKind) String() string {
	if name, ok := methodHandleReferenceKindNames[k]; ok {
		return name
	}
	return "REF_unknown"
}

// FieldReference reports whether k dereferences a field (as opposed to
// a method or constructor) -- kinds 1 through 4.
func (k MethodHandleReferenceKind) FieldReference() bool {
	return k >= RefGetField && k <= RefPutStatic
}
