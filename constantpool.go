// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "fmt"

// ConstantPoolTag identifies the structure of a constant pool entry
// (JVM Specification §4.4, Table 4.4-A).
type ConstantPoolTag byte

// The sixteen defined constant pool tags.
const (
	TagUTF8              ConstantPoolTag = 1
	TagInteger           ConstantPoolTag = 3
	TagFloat             ConstantPoolTag = 4
	TagLong              ConstantPoolTag = 5
	TagDouble            ConstantPoolTag = 6
	TagClass             ConstantPoolTag = 7
	TagString            ConstantPoolTag = 8
	TagFieldref          ConstantPoolTag = 9
	TagMethodref         ConstantPoolTag = 10
	TagInterfaceMethodref ConstantPoolTag = 11
	TagNameAndType       ConstantPoolTag = 12
	TagMethodHandle      ConstantPoolTag = 15
	TagMethodType        ConstantPoolTag = 16
	TagInvokeDynamic     ConstantPoolTag = 18
	TagModule            ConstantPoolTag = 19
	TagPackage           ConstantPoolTag = 20
)

type tagInfo struct {
	name        string
	firstVersion ClassFileVersion
	slots       int
}

var tagTable = map[ConstantPoolTag]tagInfo{
	TagUTF8:               {"CONSTANT_Utf8", Java1, 1},
	TagInteger:            {"CONSTANT_Integer", Java1, 1},
	TagFloat:              {"CONSTANT_Float", Java1, 1},
	TagLong:               {"CONSTANT_Long", Java1, 2},
	TagDouble:             {"CONSTANT_Double", Java1, 2},
	TagClass:              {"CONSTANT_Class", Java1, 1},
	TagString:             {"CONSTANT_String", Java1, 1},
	TagFieldref:           {"CONSTANT_Fieldref", Java1, 1},
	TagMethodref:          {"CONSTANT_Methodref", Java1, 1},
	TagInterfaceMethodref: {"CONSTANT_InterfaceMethodref", Java1, 1},
	TagNameAndType:        {"CONSTANT_NameAndType", Java1, 1},
	TagMethodHandle:       {"CONSTANT_MethodHandle", Java7, 1},
	TagMethodType:         {"CONSTANT_MethodType", Java7, 1},
	TagInvokeDynamic:      {"CONSTANT_InvokeDynamic", Java7, 1},
	TagModule:             {"CONSTANT_Module", Java9, 1},
	TagPackage:            {"CONSTANT_Package", Java9, 1},
}

// Valid reports whether t is one of the defined constant pool tags.
func (t ConstantPoolTag) Valid() bool {
	_, ok := tagTable[t]
	return ok
}

func (t ConstantPoolTag) String() string {
	if info, ok := tagTable[t]; ok {
		return info.name
	}
	return fmt.Sprintf("CONSTANT_unknown(%d)", byte(t))
}

// FirstVersion returns the earliest class file version in which t is
// legal to appear.
func (t ConstantPoolTag) FirstVersion() ClassFileVersion {
	return tagTable[t].firstVersion
}

// Slots reports how many consecutive constant pool indices t occupies:
// 2 for LONG and DOUBLE, 1 for everything else, per the "dead slot
// following LONG/DOUBLE" indexing rule.
func (t ConstantPoolTag) Slots() int {
	if info, ok := tagTable[t]; ok {
		return info.slots
	}
	return 1
}

// ConstantPoolEntry is the interface implemented by every constant pool
// entry variant. Tag identifies which variant a given entry actually
// is, for type-switch dispatch without reflection.
type ConstantPoolEntry interface {
	Tag() ConstantPoolTag
}

// Utf8Constant holds a CONSTANT_Utf8 entry's decoded modified-UTF-8
// text.
type Utf8Constant struct {
	Value string
}

func (Utf8Constant) Tag() ConstantPoolTag { return TagUTF8 }

// IntegerConstant holds a CONSTANT_Integer entry.
type IntegerConstant struct {
	Value int32
}

func (IntegerConstant) Tag() ConstantPoolTag { return TagInteger }

// FloatConstant holds a CONSTANT_Float entry.
type FloatConstant struct {
	Value float32
}

func (FloatConstant) Tag() ConstantPoolTag { return TagFloat }

// LongConstant holds a CONSTANT_Long entry. It occupies two pool
// indices; the second is a dead slot.
type LongConstant struct {
	Value int64
}

func (LongConstant) Tag() ConstantPoolTag { return TagLong }

// DoubleConstant holds a CONSTANT_Double entry. It occupies two pool
// indices; the second is a dead slot.
type DoubleConstant struct {
	Value float64
}

func (DoubleConstant) Tag() ConstantPoolTag { return TagDouble }

// ClassConstant holds a CONSTANT_Class entry: an index into the pool
// of a Utf8Constant naming the class or interface (internal form).
type ClassConstant struct {
	NameIndex uint16
}

func (ClassConstant) Tag() ConstantPoolTag { return TagClass }

// StringConstant holds a CONSTANT_String entry: an index into the pool
// of the referenced Utf8Constant.
type StringConstant struct {
	StringIndex uint16
}

func (StringConstant) Tag() ConstantPoolTag { return TagString }

// FieldrefConstant holds a CONSTANT_Fieldref entry.
type FieldrefConstant struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (FieldrefConstant) Tag() ConstantPoolTag { return TagFieldref }

// MethodrefConstant holds a CONSTANT_Methodref entry.
type MethodrefConstant struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (MethodrefConstant) Tag() ConstantPoolTag { return TagMethodref }

// InterfaceMethodrefConstant holds a CONSTANT_InterfaceMethodref entry.
type InterfaceMethodrefConstant struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (InterfaceMethodrefConstant) Tag() ConstantPoolTag { return TagInterfaceMethodref }

// NameAndTypeConstant holds a CONSTANT_NameAndType entry.
type NameAndTypeConstant struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (NameAndTypeConstant) Tag() ConstantPoolTag { return TagNameAndType }

// MethodHandleConstant holds a CONSTANT_MethodHandle entry.
type MethodHandleConstant struct {
	ReferenceKind  MethodHandleReferenceKind
	ReferenceIndex uint16
}

func (MethodHandleConstant) Tag() ConstantPoolTag { return TagMethodHandle }

// MethodTypeConstant holds a CONSTANT_MethodType entry.
type MethodTypeConstant struct {
	DescriptorIndex uint16
}

func (MethodTypeConstant) Tag() ConstantPoolTag { return TagMethodType }

// InvokeDynamicConstant holds a CONSTANT_InvokeDynamic entry.
// BootstrapMethodAttrIndex indexes the BootstrapMethods attribute, not
// the constant pool.
type InvokeDynamicConstant struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (InvokeDynamicConstant) Tag() ConstantPoolTag { return TagInvokeDynamic }

// ModuleConstant holds a CONSTANT_Module entry.
type ModuleConstant struct {
	NameIndex uint16
}

func (ModuleConstant) Tag() ConstantPoolTag { return TagModule }

// PackageConstant holds a CONSTANT_Package entry.
type PackageConstant struct {
	NameIndex uint16
}

func (PackageConstant) Tag() ConstantPoolTag { return TagPackage }

// ConstantPool is the class file's constant_pool, indexed 1-based as
// the format itself dictates; index 0 is always nil and invalid.
// Entries following a LongConstant or DoubleConstant occupy a dead
// slot, also nil, also invalid to reference.
type ConstantPool struct {
	entries []ConstantPoolEntry // entries[0] unused
}

// Count returns the number of index slots, i.e. the
// constant_pool_count field of the class file (including the unused
// slot 0 and any dead slots after wide entries).
func (cp *ConstantPool) Count() int {
	return len(cp.entries)
}

// At returns the entry at index, or an error if index is 0, out of
// range, or a dead slot.
func (cp *ConstantPool) At(index uint16) (ConstantPoolEntry, error) {
	i := int(index)
	if i <= 0 || i >= len(cp.entries) {
		return nil, &InvalidConstantPoolIndexError{Index: i, Reason: "index out of range"}
	}
	e := cp.entries[i]
	if e == nil {
		return nil, &InvalidConstantPoolIndexError{Index: i, Reason: "dead slot following LONG/DOUBLE"}
	}
	return e, nil
}

// Utf8 resolves index as a CONSTANT_Utf8 entry and returns its text.
func (cp *ConstantPool) Utf8(index uint16) (string, error) {
	e, err := cp.At(index)
	if err != nil {
		return "", err
	}
	u, ok := e.(Utf8Constant)
	if !ok {
		return "", &InvalidConstantPoolIndexError{Index: int(index), Reason: fmt.Sprintf("expected CONSTANT_Utf8, found %s", e.Tag())}
	}
	return u.Value, nil
}

// ClassName resolves index as a CONSTANT_Class entry and returns the
// internal form class name it names.
func (cp *ConstantPool) ClassName(index uint16) (string, error) {
	e, err := cp.At(index)
	if err != nil {
		return "", err
	}
	c, ok := e.(ClassConstant)
	if !ok {
		return "", &InvalidConstantPoolIndexError{Index: int(index), Reason: fmt.Sprintf("expected CONSTANT_Class, found %s", e.Tag())}
	}
	return cp.Utf8(c.NameIndex)
}

// Resolve returns a short human-readable rendering of the entry at
// index, following the chain of indices a reference entry carries
// (Class -> Utf8, NameAndType -> two Utf8s, and so on).
func (cp *ConstantPool) Resolve(index uint16) (string, error) {
	e, err := cp.At(index)
	if err != nil {
		return "", err
	}
	switch v := e.(type) {
	case Utf8Constant:
		return v.Value, nil
	case IntegerConstant:
		return fmt.Sprintf("%d", v.Value), nil
	case FloatConstant:
		return fmt.Sprintf("%g", v.Value), nil
	case LongConstant:
		return fmt.Sprintf("%d", v.Value), nil
	case DoubleConstant:
		return fmt.Sprintf("%g", v.Value), nil
	case ClassConstant:
		return cp.Utf8(v.NameIndex)
	case StringConstant:
		return cp.Utf8(v.StringIndex)
	case NameAndTypeConstant:
		name, err := cp.Utf8(v.NameIndex)
		if err != nil {
			return "", err
		}
		desc, err := cp.Utf8(v.DescriptorIndex)
		if err != nil {
			return "", err
		}
		return name + ":" + desc, nil
	case FieldrefConstant:
		return cp.resolveRef(v.ClassIndex, v.NameAndTypeIndex)
	case MethodrefConstant:
		return cp.resolveRef(v.ClassIndex, v.NameAndTypeIndex)
	case InterfaceMethodrefConstant:
		return cp.resolveRef(v.ClassIndex, v.NameAndTypeIndex)
	case MethodTypeConstant:
		return cp.Utf8(v.DescriptorIndex)
	case ModuleConstant:
		return cp.Utf8(v.NameIndex)
	case PackageConstant:
		return cp.Utf8(v.NameIndex)
	default:
		return e.Tag().String(), nil
	}
}

func (cp *ConstantPool) resolveRef(classIndex, nameAndTypeIndex uint16) (string, error) {
	class, err := cp.ClassName(classIndex)
	if err != nil {
		return "", err
	}
	nt, err := cp.At(nameAndTypeIndex)
	if err != nil {
		return "", err
	}
	n, ok := nt.(NameAndTypeConstant)
	if !ok {
		return "", &InvalidConstantPoolIndexError{Index: int(nameAndTypeIndex), Reason: fmt.Sprintf("expected CONSTANT_NameAndType, found %s", nt.Tag())}
	}
	name, err := cp.Utf8(n.NameIndex)
	if err != nil {
		return "", err
	}
	return class + "." + name, nil
}
