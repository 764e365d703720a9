// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

// Annotation is a type_index plus a list of (element_name_index,
// ElementValue) pairs (§4.7.16).
type Annotation struct {
	TypeIndex        uint16
	ElementValuePairs []ElementValuePair
}

// ElementValuePair is one (element_name_index, value) entry of an
// Annotation.
type ElementValuePair struct {
	ElementNameIndex uint16
	Value            ElementValue
}

// ElementValueTag discriminates an ElementValue's variant by the ASCII
// tag byte the format itself uses (§4.7.16.1).
type ElementValueTag byte

const (
	TagByte       ElementValueTag = 'B'
	TagChar       ElementValueTag = 'C'
	TagDoubleElem ElementValueTag = 'D'
	TagFloatElem  ElementValueTag = 'F'
	TagInt        ElementValueTag = 'I'
	TagLongElem   ElementValueTag = 'J'
	TagShort      ElementValueTag = 'S'
	TagBoolean    ElementValueTag = 'Z'
	TagStringElem ElementValueTag = 's'
	TagEnum       ElementValueTag = 'e'
	TagClassInfo  ElementValueTag = 'c'
	TagAnnotation ElementValueTag = '@'
	TagArray      ElementValueTag = '['
)

func (t ElementValueTag) constantValueTag() bool {
	switch t {
	case TagByte, TagChar, TagDoubleElem, TagFloatElem, TagInt, TagLongElem, TagShort, TagBoolean, TagStringElem:
		return true
	}
	return false
}

// ElementValue is a tagged sum over the five shapes §4.7.16.1 defines:
// a constant CP reference, an enum constant, a class-info CP
// reference, a nested annotation, or an array of further
// ElementValues. Exactly one of the typed fields is meaningful,
// selected by Tag.
type ElementValue struct {
	Tag ElementValueTag

	// Constant: valid when Tag.constantValueTag() is true.
	ConstValueIndex uint16

	// EnumConst: valid when Tag == TagEnum.
	TypeNameIndex  uint16
	ConstNameIndex uint16

	// ClassInfo: valid when Tag == TagClassInfo.
	ClassInfoIndex uint16

	// Nested: valid when Tag == TagAnnotation.
	NestedAnnotation *Annotation

	// Array: valid when Tag == TagArray.
	Values []ElementValue
}
