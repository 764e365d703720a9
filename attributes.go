// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

// AttributeContext is a bitmask of the structures an attribute is
// legal to appear on.
type AttributeContext uint8

const (
	ContextNone       AttributeContext = 0
	ContextClassFile  AttributeContext = 1
	ContextFieldInfo  AttributeContext = 2
	ContextMethodInfo AttributeContext = 4
	ContextCode       AttributeContext = 8
	ContextAll        AttributeContext = 0xF
)

// Has reports whether c includes ctx.
func (c AttributeContext) Has(ctx AttributeContext) bool { return c&ctx != 0 }

// AttributeKind identifies a predefined attribute's canonical name
// (JVMS §4.7, Table 4.7-A). An attribute whose name does not match one
// of these, or that appears in a context its kind does not permit, is
// parsed as Unknown carrying raw bytes.
type AttributeKind int

const (
	AttrUnknown AttributeKind = iota
	AttrConstantValue
	AttrCode
	AttrStackMapTable
	AttrExceptions
	AttrInnerClasses
	AttrEnclosingMethod
	AttrSynthetic
	AttrSignature
	AttrSourceFile
	AttrSourceDebugExtension
	AttrLineNumberTable
	AttrLocalVariableTable
	AttrLocalVariableTypeTable
	AttrDeprecated
	AttrRuntimeVisibleAnnotations
	AttrRuntimeInvisibleAnnotations
	AttrRuntimeVisibleParameterAnnotations
	AttrRuntimeInvisibleParameterAnnotations
	AttrRuntimeVisibleTypeAnnotations
	AttrRuntimeInvisibleTypeAnnotations
	AttrAnnotationDefault
	AttrBootstrapMethods
	AttrMethodParameters
	AttrModule
	AttrModulePackages
	AttrModuleMainClass
)

type attributeKindInfo struct {
	name         string
	context      AttributeContext
	firstVersion ClassFileVersion
}

// attributeKindTable is the single source of truth for both forward
// lookup (kind -> name/context/version) and reverse lookup (name ->
// kind), per the "const table, not per-variant methods" convention.
var attributeKindTable = map[AttributeKind]attributeKindInfo{
	AttrConstantValue:                        {"ConstantValue", ContextFieldInfo, Java1},
	AttrCode:                                  {"Code", ContextMethodInfo, Java1},
	AttrStackMapTable:                         {"StackMapTable", ContextCode, Java6},
	AttrExceptions:                            {"Exceptions", ContextMethodInfo, Java1},
	AttrInnerClasses:                          {"InnerClasses", ContextClassFile, Java1_1},
	AttrEnclosingMethod:                       {"EnclosingMethod", ContextClassFile, Java5},
	AttrSynthetic:                             {"Synthetic", ContextClassFile | ContextFieldInfo | ContextMethodInfo, Java1_1},
	AttrSignature:                             {"Signature", ContextClassFile | ContextFieldInfo | ContextMethodInfo, Java5},
	AttrSourceFile:                            {"SourceFile", ContextClassFile, Java1},
	AttrSourceDebugExtension:                  {"SourceDebugExtension", ContextClassFile, Java5},
	AttrLineNumberTable:                       {"LineNumberTable", ContextCode, Java1},
	AttrLocalVariableTable:                    {"LocalVariableTable", ContextCode, Java1},
	AttrLocalVariableTypeTable:                {"LocalVariableTypeTable", ContextCode, Java5},
	AttrDeprecated:                            {"Deprecated", ContextClassFile | ContextFieldInfo | ContextMethodInfo, Java1_1},
	AttrRuntimeVisibleAnnotations:             {"RuntimeVisibleAnnotations", ContextClassFile | ContextFieldInfo | ContextMethodInfo, Java5},
	AttrRuntimeInvisibleAnnotations:           {"RuntimeInvisibleAnnotations", ContextClassFile | ContextFieldInfo | ContextMethodInfo, Java5},
	AttrRuntimeVisibleParameterAnnotations:    {"RuntimeVisibleParameterAnnotations", ContextMethodInfo, Java5},
	AttrRuntimeInvisibleParameterAnnotations:  {"RuntimeInvisibleParameterAnnotations", ContextMethodInfo, Java5},
	AttrRuntimeVisibleTypeAnnotations:         {"RuntimeVisibleTypeAnnotations", ContextClassFile | ContextFieldInfo | ContextMethodInfo | ContextCode, Java8},
	AttrRuntimeInvisibleTypeAnnotations:       {"RuntimeInvisibleTypeAnnotations", ContextClassFile | ContextFieldInfo | ContextMethodInfo | ContextCode, Java8},
	AttrAnnotationDefault:                     {"AnnotationDefault", ContextMethodInfo, Java5},
	AttrBootstrapMethods:                      {"BootstrapMethods", ContextClassFile, Java7},
	AttrMethodParameters:                      {"MethodParameters", ContextMethodInfo, Java8},
	AttrModule:                                {"Module", ContextClassFile, Java9},
	AttrModulePackages:                        {"ModulePackages", ContextClassFile, Java9},
	AttrModuleMainClass:                       {"ModuleMainClass", ContextClassFile, Java9},
	// AttrUnknown's first-supporting version is Java1, not nil: the
	// interface contract for Versioned.FirstVersionSupporting is
	// non-optional, so Unknown is treated as having always been legal
	// (it is a parser fallback, not a real predefined attribute).
	AttrUnknown: {"Unknown", ContextAll, Java1},
}

var attributeNameTable map[string]AttributeKind

func init() {
	attributeNameTable = make(map[string]AttributeKind, len(attributeKindTable))
	for kind, info := range attributeKindTable {
		if kind == AttrUnknown {
			continue
		}
		attributeNameTable[info.name] = kind
	}
}

func (k AttributeKind) String() string {
	if info, ok := attributeKindTable[k]; ok {
		return info.name
	}
	return "Unknown"
}

// Context returns the set of structures k is legal to attach to.
func (k AttributeKind) Context() AttributeContext {
	return attributeKindTable[k].context
}

// FirstVersion returns the earliest class file version in which k is
// recognized.
func (k AttributeKind) FirstVersion() ClassFileVersion {
	return attributeKindTable[k].firstVersion
}

// attributeKindForName resolves a canonical attribute name to its
// kind, returning AttrUnknown (ok=false) for any name this package
// does not predefine.
func attributeKindForName(name string) (AttributeKind, bool) {
	kind, ok := attributeNameTable[name]
	return kind, ok
}

// RawAttribute is the representation used for AttrUnknown, and for any
// predefined attribute found outside the context its kind permits.
// JVMS §4.7 requires readers to silently skip attributes they do not
// recognize, so neither case is an error; the raw bytes are kept for
// the caller.
type RawAttribute struct {
	Name string
	Data []byte
}

// Attribute is the interface implemented by every attribute variant.
type Attribute interface {
	Kind() AttributeKind
}

func (RawAttribute) Kind() AttributeKind { return AttrUnknown }

// ConstantValueAttribute holds a ConstantValue attribute: a single CP
// index.
type ConstantValueAttribute struct {
	ValueIndex uint16
}

func (ConstantValueAttribute) Kind() AttributeKind { return AttrConstantValue }

// SignatureAttribute, SourceFileAttribute, ModuleMainClassAttribute
// each hold a single CP index.
type SignatureAttribute struct{ SignatureIndex uint16 }
type SourceFileAttribute struct{ SourceFileIndex uint16 }
type ModuleMainClassAttribute struct{ MainClassIndex uint16 }

func (SignatureAttribute) Kind() AttributeKind       { return AttrSignature }
func (SourceFileAttribute) Kind() AttributeKind      { return AttrSourceFile }
func (ModuleMainClassAttribute) Kind() AttributeKind { return AttrModuleMainClass }

// ExceptionsAttribute and ModulePackagesAttribute hold a sequence of
// CP indices.
type ExceptionsAttribute struct{ ExceptionIndexTable []uint16 }
type ModulePackagesAttribute struct{ PackageIndexTable []uint16 }

func (ExceptionsAttribute) Kind() AttributeKind      { return AttrExceptions }
func (ModulePackagesAttribute) Kind() AttributeKind  { return AttrModulePackages }

// SyntheticAttribute and DeprecatedAttribute carry no data beyond
// their presence.
type SyntheticAttribute struct{}
type DeprecatedAttribute struct{}

func (SyntheticAttribute) Kind() AttributeKind  { return AttrSynthetic }
func (DeprecatedAttribute) Kind() AttributeKind { return AttrDeprecated }

// SourceDebugExtensionAttribute holds raw, implementation-defined
// debug information (§4.7.11): not modified-UTF-8 decoded here since
// the JVM spec leaves its encoding caller-defined.
type SourceDebugExtensionAttribute struct{ Data []byte }

func (SourceDebugExtensionAttribute) Kind() AttributeKind { return AttrSourceDebugExtension }

// InnerClassesEntry is one entry of an InnerClasses attribute.
type InnerClassesEntry struct {
	InnerClassInfoIndex   uint16
	OuterClassInfoIndex   uint16 // 0 if not a member
	InnerNameIndex        uint16 // 0 if anonymous
	InnerClassAccessFlags InnerClassAccessFlags
}

type InnerClassesAttribute struct{ Classes []InnerClassesEntry }

func (InnerClassesAttribute) Kind() AttributeKind { return AttrInnerClasses }

// EnclosingMethodAttribute: class index + method NameAndType index
// (the latter 0 if the class is not immediately enclosed by a method
// or constructor).
type EnclosingMethodAttribute struct {
	ClassIndex  uint16
	MethodIndex uint16
}

func (EnclosingMethodAttribute) Kind() AttributeKind { return AttrEnclosingMethod }

// LineNumberEntry is one entry of a LineNumberTable attribute.
type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

type LineNumberTableAttribute struct{ LineNumberTable []LineNumberEntry }

func (LineNumberTableAttribute) Kind() AttributeKind { return AttrLineNumberTable }

// LocalVariableEntry is one entry of a LocalVariableTable attribute.
type LocalVariableEntry struct {
	StartPC         uint16
	Length          uint16
	NameIndex       uint16
	DescriptorIndex uint16
	Index           uint16
}

type LocalVariableTableAttribute struct{ LocalVariableTable []LocalVariableEntry }

func (LocalVariableTableAttribute) Kind() AttributeKind { return AttrLocalVariableTable }

// LocalVariableTypeEntry is one entry of a LocalVariableTypeTable
// attribute: like LocalVariableEntry but carries a generic signature
// index (SignatureIndex) may be 0.
type LocalVariableTypeEntry struct {
	StartPC        uint16
	Length         uint16
	NameIndex      uint16
	SignatureIndex uint16
	Index          uint16
}

type LocalVariableTypeTableAttribute struct{ LocalVariableTypeTable []LocalVariableTypeEntry }

func (LocalVariableTypeTableAttribute) Kind() AttributeKind { return AttrLocalVariableTypeTable }

// MethodParameterEntry is one entry of a MethodParameters attribute.
type MethodParameterEntry struct {
	NameIndex   uint16 // may be 0: parameter has no name
	AccessFlags uint16
}

type MethodParametersAttribute struct{ Parameters []MethodParameterEntry }

func (MethodParametersAttribute) Kind() AttributeKind { return AttrMethodParameters }

// BootstrapMethodEntry is one entry of a BootstrapMethods attribute.
type BootstrapMethodEntry struct {
	BootstrapMethodRef    uint16 // CP index of a MethodHandle
	BootstrapArguments    []uint16
}

type BootstrapMethodsAttribute struct{ BootstrapMethods []BootstrapMethodEntry }

func (BootstrapMethodsAttribute) Kind() AttributeKind { return AttrBootstrapMethods }

// RuntimeAnnotationsAttribute backs both RuntimeVisibleAnnotations and
// RuntimeInvisibleAnnotations; Visible records which.
type RuntimeAnnotationsAttribute struct {
	Visible     bool
	Annotations []Annotation
}

func (a RuntimeAnnotationsAttribute) Kind() AttributeKind {
	if a.Visible {
		return AttrRuntimeVisibleAnnotations
	}
	return AttrRuntimeInvisibleAnnotations
}

// RuntimeParameterAnnotationsAttribute backs both
// RuntimeVisible/InvisibleParameterAnnotations.
type RuntimeParameterAnnotationsAttribute struct {
	Visible              bool
	ParameterAnnotations [][]Annotation
}

func (a RuntimeParameterAnnotationsAttribute) Kind() AttributeKind {
	if a.Visible {
		return AttrRuntimeVisibleParameterAnnotations
	}
	return AttrRuntimeInvisibleParameterAnnotations
}

// RuntimeTypeAnnotationsAttribute backs both
// RuntimeVisible/InvisibleTypeAnnotations.
type RuntimeTypeAnnotationsAttribute struct {
	Visible        bool
	TypeAnnotations []TypeAnnotation
}

func (a RuntimeTypeAnnotationsAttribute) Kind() AttributeKind {
	if a.Visible {
		return AttrRuntimeVisibleTypeAnnotations
	}
	return AttrRuntimeInvisibleTypeAnnotations
}

// AnnotationDefaultAttribute holds one ElementValue.
type AnnotationDefaultAttribute struct{ DefaultValue ElementValue }

func (AnnotationDefaultAttribute) Kind() AttributeKind { return AttrAnnotationDefault }
