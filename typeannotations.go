// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

// TargetType identifies which kind of program element a TypeAnnotation
// targets (§4.7.20.1). Declaration-context values occupy 0x00..0x17;
// expression/code-context (CODE attribute) values occupy 0x40..0x4B.
type TargetType byte

const (
	TargetClassTypeParameter         TargetType = 0x00
	TargetMethodTypeParameter        TargetType = 0x01
	TargetClassExtends               TargetType = 0x10
	TargetClassTypeParameterBound    TargetType = 0x11
	TargetMethodTypeParameterBound   TargetType = 0x12
	TargetField                      TargetType = 0x13
	TargetMethodReturn               TargetType = 0x14
	TargetMethodReceiver             TargetType = 0x15
	TargetMethodFormalParameter      TargetType = 0x16
	TargetThrows                     TargetType = 0x17

	TargetLocalVariable        TargetType = 0x40
	TargetResourceVariable     TargetType = 0x41
	TargetExceptionParameter   TargetType = 0x42
	TargetInstanceOf           TargetType = 0x43
	TargetNew                  TargetType = 0x44
	TargetConstructorReference TargetType = 0x45
	TargetMethodReference      TargetType = 0x46
	TargetCast                 TargetType = 0x47
	TargetConstructorInvocationTypeArgument TargetType = 0x48
	TargetMethodInvocationTypeArgument      TargetType = 0x49
	TargetConstructorReferenceTypeArgument  TargetType = 0x4A
	TargetMethodReferenceTypeArgument       TargetType = 0x4B
)

// Context reports the attribute context a TargetType belongs to: CODE
// for the 0x40..0x4B range, CLASS_FILE|FIELD_INFO|METHOD_INFO for
// everything else defined here.
func (t TargetType) Context() AttributeContext {
	if t >= 0x40 && t <= 0x4B {
		return ContextCode
	}
	return ContextClassFile | ContextFieldInfo | ContextMethodInfo
}

var definedTargetTypes = map[TargetType]bool{
	TargetClassTypeParameter: true, TargetMethodTypeParameter: true,
	TargetClassExtends: true, TargetClassTypeParameterBound: true,
	TargetMethodTypeParameterBound: true, TargetField: true,
	TargetMethodReturn: true, TargetMethodReceiver: true,
	TargetMethodFormalParameter: true, TargetThrows: true,
	TargetLocalVariable: true, TargetResourceVariable: true,
	TargetExceptionParameter: true, TargetInstanceOf: true,
	TargetNew: true, TargetConstructorReference: true,
	TargetMethodReference: true, TargetCast: true,
	TargetConstructorInvocationTypeArgument: true,
	TargetMethodInvocationTypeArgument:      true,
	TargetConstructorReferenceTypeArgument:  true,
	TargetMethodReferenceTypeArgument:       true,
}

// Valid reports whether t is one of the defined target types.
func (t TargetType) Valid() bool { return definedTargetTypes[t] }

// TypePathKind identifies one step of a TypeAnnotation's type_path
// (§4.7.20.2).
type TypePathKind byte

const (
	PathArray          TypePathKind = 0
	PathNested         TypePathKind = 1
	PathWildcardBound  TypePathKind = 2
	PathTypeArgument   TypePathKind = 3
)

// TypePathStep is one (type_path_kind, type_argument_index) pair.
type TypePathStep struct {
	Kind              TypePathKind
	TypeArgumentIndex byte // meaningful only when Kind == PathTypeArgument
}

// TypePath is the ordered sequence of TypePathStep from a
// TypeAnnotation's outermost type to the annotated part.
type TypePath []TypePathStep

// LocalVarTargetEntry is one (start_pc, length, index) triple of a
// localvar_target (used by TargetLocalVariable and
// TargetResourceVariable).
type LocalVarTargetEntry struct {
	StartPC uint16
	Length  uint16
	Index   uint16
}

// TargetInfo is a tagged union over the ten target_info shapes
// §4.7.20.1 defines. Exactly one field group is meaningful, selected
// by the TypeAnnotation's TargetType.
type TargetInfo struct {
	// type_parameter_target: TargetClassTypeParameter, TargetMethodTypeParameter.
	TypeParameterIndex byte

	// supertype_target: TargetClassExtends.
	SupertypeIndex uint16

	// type_parameter_bound_target: TargetClassTypeParameterBound, TargetMethodTypeParameterBound.
	BoundTypeParameterIndex byte
	BoundIndex              byte

	// empty_target: TargetField, TargetMethodReturn, TargetMethodReceiver.
	// (no data)

	// formal_parameter_target: TargetMethodFormalParameter.
	FormalParameterIndex byte

	// throws_target: TargetThrows.
	ThrowsTypeIndex uint16

	// localvar_target: TargetLocalVariable, TargetResourceVariable.
	LocalVarTable []LocalVarTargetEntry

	// catch_target: TargetExceptionParameter.
	ExceptionTableIndex uint16

	// offset_target: TargetInstanceOf, TargetNew, TargetConstructorReference, TargetMethodReference.
	Offset uint16

	// type_argument_target: TargetCast and the four *TypeArgument kinds.
	TypeArgumentOffset uint16
	TypeArgumentIndex  byte
}

// TypeAnnotation extends Annotation with a TargetType, a TypePath, and
// a TargetInfo variant selected by the TargetType (§4.7.20).
type TypeAnnotation struct {
	TargetType TargetType
	TargetInfo TargetInfo
	TypePath   TypePath
	Annotation Annotation
}
