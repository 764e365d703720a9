// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

// Access and property flag bits shared across the several 16-bit flag
// words this format defines (§4.1/§4.5/§4.6/§4.7.6/§4.7.24/§4.7.25).
// Not every flag is legal in every context; the versioned rule engine
// in flagrules.go enforces that.
const (
	FlagPublic       uint16 = 0x0001
	FlagPrivate      uint16 = 0x0002
	FlagProtected    uint16 = 0x0004
	FlagStatic       uint16 = 0x0008
	FlagFinal        uint16 = 0x0010
	FlagSuper        uint16 = 0x0020
	FlagSynchronized uint16 = 0x0020
	FlagOpen         uint16 = 0x0020
	FlagTransitive   uint16 = 0x0020
	FlagVolatile     uint16 = 0x0040
	FlagBridge       uint16 = 0x0040
	FlagStaticPhase  uint16 = 0x0040
	FlagVarargs      uint16 = 0x0080
	FlagTransient    uint16 = 0x0080
	FlagNative       uint16 = 0x0100
	FlagInterface    uint16 = 0x0200
	FlagAbstract     uint16 = 0x0400
	FlagStrict       uint16 = 0x0800
	FlagSynthetic    uint16 = 0x1000
	FlagAnnotation   uint16 = 0x2000
	FlagEnum         uint16 = 0x4000
	FlagMandated     uint16 = 0x8000
	FlagModule       uint16 = 0x8000
)

// ClassAccessFlags is the access_flags word of a class or interface.
type ClassAccessFlags uint16

// FieldAccessFlags is the access_flags word of a field_info.
type FieldAccessFlags uint16

// MethodAccessFlags is the access_flags word of a method_info.
type MethodAccessFlags uint16

// InnerClassAccessFlags is the inner_class_access_flags word of an
// InnerClasses entry.
type InnerClassAccessFlags uint16

// ModuleFlags is the module_flags word of a Module attribute.
type ModuleFlags uint16

// ModuleRequiresFlags is the requires_flags word of a Module
// attribute's requires entry.
type ModuleRequiresFlags uint16

// ModuleExportsFlags is the exports_flags word of a Module attribute's
// exports entry; ModuleOpensFlags is the opens_flags word of its opens
// entry. Both share the same two legal bits.
type ModuleExportsFlags uint16
type ModuleOpensFlags uint16

func has(word, bit uint16) bool { return word&bit != 0 }

// Has reports whether f includes bit.
func (f ClassAccessFlags) Has(bit uint16) bool       { return has(uint16(f), bit) }
func (f FieldAccessFlags) Has(bit uint16) bool       { return has(uint16(f), bit) }
func (f MethodAccessFlags) Has(bit uint16) bool      { return has(uint16(f), bit) }
func (f InnerClassAccessFlags) Has(bit uint16) bool  { return has(uint16(f), bit) }
func (f ModuleFlags) Has(bit uint16) bool            { return has(uint16(f), bit) }
func (f ModuleRequiresFlags) Has(bit uint16) bool    { return has(uint16(f), bit) }
func (f ModuleExportsFlags) Has(bit uint16) bool     { return has(uint16(f), bit) }
func (f ModuleOpensFlags) Has(bit uint16) bool       { return has(uint16(f), bit) }

var classFlagNames = []struct {
	bit  uint16
	name string
}{
	{FlagPublic, "PUBLIC"}, {FlagFinal, "FINAL"}, {FlagSuper, "SUPER"},
	{FlagInterface, "INTERFACE"}, {FlagAbstract, "ABSTRACT"},
	{FlagSynthetic, "SYNTHETIC"}, {FlagAnnotation, "ANNOTATION"},
	{FlagEnum, "ENUM"}, {FlagModule, "MODULE"},
}

func (f ClassAccessFlags) String() string { return flagString(uint16(f), classFlagNames) }

var fieldFlagNames = []struct {
	bit  uint16
	name string
}{
	{FlagPublic, "PUBLIC"}, {FlagPrivate, "PRIVATE"}, {FlagProtected, "PROTECTED"},
	{FlagStatic, "STATIC"}, {FlagFinal, "FINAL"}, {FlagVolatile, "VOLATILE"},
	{FlagTransient, "TRANSIENT"}, {FlagSynthetic, "SYNTHETIC"}, {FlagEnum, "ENUM"},
}

func (f FieldAccessFlags) String() string { return flagString(uint16(f), fieldFlagNames) }

var methodFlagNames = []struct {
	bit  uint16
	name string
}{
	{FlagPublic, "PUBLIC"}, {FlagPrivate, "PRIVATE"}, {FlagProtected, "PROTECTED"},
	{FlagStatic, "STATIC"}, {FlagFinal, "FINAL"}, {FlagSynchronized, "SYNCHRONIZED"},
	{FlagBridge, "BRIDGE"}, {FlagVarargs, "VARARGS"}, {FlagNative, "NATIVE"},
	{FlagAbstract, "ABSTRACT"}, {FlagStrict, "STRICT"}, {FlagSynthetic, "SYNTHETIC"},
}

func (f MethodAccessFlags) String() string { return flagString(uint16(f), methodFlagNames) }

func flagString(word uint16, names []struct {
	bit  uint16
	name string
}) string {
	out := ""
	for _, fn := range names {
		if word&fn.bit != 0 {
			if out != "" {
				out += ","
			}
			out += fn.name
		}
	}
	if out == "" {
		return "(none)"
	}
	return out
}
