// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "fmt"

// parseAttributeTable reads an attributes_count + attribute_info[]
// sequence, dispatching each entry by its canonical name resolved
// through the constant pool.
func parseAttributeTable(r *reader, cp *ConstantPool, ctx AttributeContext, version ClassFileVersion) ([]Attribute, error) {
	count, err := r.u2()
	if err != nil {
		return nil, err
	}
	out := make([]Attribute, count)
	for i := range out {
		a, err := parseAttribute(r, cp, ctx, version)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

func parseAttribute(r *reader, cp *ConstantPool, ctx AttributeContext, version ClassFileVersion) (Attribute, error) {
	nameIndex, err := r.u2()
	if err != nil {
		return nil, err
	}
	length, err := r.u4()
	if err != nil {
		return nil, err
	}

	name, err := cp.Utf8(nameIndex)
	if err != nil {
		return nil, err
	}

	defer r.ctx.frame("attribute named " + name)()

	kind, known := attributeKindForName(name)
	if !known || !kind.Context().Has(ctx) || version.Before(kind.FirstVersion()) {
		data, err := r.bytes(int(length))
		if err != nil {
			return nil, err
		}
		return RawAttribute{Name: name, Data: data}, nil
	}

	start := r.position()
	attr, err := parsePredefinedAttribute(r, cp, kind, version, length)
	if err != nil {
		return nil, err
	}
	consumed := r.position() - start
	if consumed != int(length) {
		return nil, r.fail("attribute %s declared length %d but %d bytes were consumed", name, length, consumed)
	}
	return attr, nil
}

func parsePredefinedAttribute(r *reader, cp *ConstantPool, kind AttributeKind, version ClassFileVersion, length uint32) (Attribute, error) {
	defer r.ctx.frame("attribute of kind " + kind.String())()

	switch kind {
	case AttrConstantValue:
		idx, err := r.u2()
		if err != nil {
			return nil, err
		}
		return ConstantValueAttribute{ValueIndex: idx}, nil

	case AttrSignature:
		idx, err := r.u2()
		if err != nil {
			return nil, err
		}
		return SignatureAttribute{SignatureIndex: idx}, nil

	case AttrSourceFile:
		idx, err := r.u2()
		if err != nil {
			return nil, err
		}
		return SourceFileAttribute{SourceFileIndex: idx}, nil

	case AttrModuleMainClass:
		idx, err := r.u2()
		if err != nil {
			return nil, err
		}
		return ModuleMainClassAttribute{MainClassIndex: idx}, nil

	case AttrExceptions:
		idxs, err := parseU16List(r)
		if err != nil {
			return nil, err
		}
		return ExceptionsAttribute{ExceptionIndexTable: idxs}, nil

	case AttrModulePackages:
		idxs, err := parseU16List(r)
		if err != nil {
			return nil, err
		}
		return ModulePackagesAttribute{PackageIndexTable: idxs}, nil

	case AttrSynthetic:
		return SyntheticAttribute{}, nil

	case AttrDeprecated:
		return DeprecatedAttribute{}, nil

	case AttrSourceDebugExtension:
		data, err := r.bytes(int(length))
		if err != nil {
			return nil, err
		}
		return SourceDebugExtensionAttribute{Data: data}, nil

	case AttrInnerClasses:
		count, err := r.u2()
		if err != nil {
			return nil, err
		}
		classes := make([]InnerClassesEntry, count)
		for i := range classes {
			inner, err := r.u2()
			if err != nil {
				return nil, err
			}
			outer, err := r.u2()
			if err != nil {
				return nil, err
			}
			innerName, err := r.u2()
			if err != nil {
				return nil, err
			}
			flags, err := r.u2()
			if err != nil {
				return nil, err
			}
			classes[i] = InnerClassesEntry{
				InnerClassInfoIndex:   inner,
				OuterClassInfoIndex:   outer,
				InnerNameIndex:        innerName,
				InnerClassAccessFlags: InnerClassAccessFlags(flags),
			}
		}
		return InnerClassesAttribute{Classes: classes}, nil

	case AttrEnclosingMethod:
		classIndex, err := r.u2()
		if err != nil {
			return nil, err
		}
		methodIndex, err := r.u2()
		if err != nil {
			return nil, err
		}
		return EnclosingMethodAttribute{ClassIndex: classIndex, MethodIndex: methodIndex}, nil

	case AttrLineNumberTable:
		count, err := r.u2()
		if err != nil {
			return nil, err
		}
		table := make([]LineNumberEntry, count)
		for i := range table {
			startPC, err := r.u2()
			if err != nil {
				return nil, err
			}
			line, err := r.u2()
			if err != nil {
				return nil, err
			}
			table[i] = LineNumberEntry{StartPC: startPC, LineNumber: line}
		}
		return LineNumberTableAttribute{LineNumberTable: table}, nil

	case AttrLocalVariableTable:
		count, err := r.u2()
		if err != nil {
			return nil, err
		}
		table := make([]LocalVariableEntry, count)
		for i := range table {
			e, err := parseLocalVariableEntry(r)
			if err != nil {
				return nil, err
			}
			table[i] = e
		}
		return LocalVariableTableAttribute{LocalVariableTable: table}, nil

	case AttrLocalVariableTypeTable:
		count, err := r.u2()
		if err != nil {
			return nil, err
		}
		table := make([]LocalVariableTypeEntry, count)
		for i := range table {
			startPC, err := r.u2()
			if err != nil {
				return nil, err
			}
			length, err := r.u2()
			if err != nil {
				return nil, err
			}
			nameIndex, err := r.u2()
			if err != nil {
				return nil, err
			}
			sigIndex, err := r.u2()
			if err != nil {
				return nil, err
			}
			index, err := r.u2()
			if err != nil {
				return nil, err
			}
			table[i] = LocalVariableTypeEntry{
				StartPC: startPC, Length: length, NameIndex: nameIndex,
				SignatureIndex: sigIndex, Index: index,
			}
		}
		return LocalVariableTypeTableAttribute{LocalVariableTypeTable: table}, nil

	case AttrMethodParameters:
		count, err := r.u1()
		if err != nil {
			return nil, err
		}
		params := make([]MethodParameterEntry, count)
		for i := range params {
			nameIndex, err := r.u2()
			if err != nil {
				return nil, err
			}
			flags, err := r.u2()
			if err != nil {
				return nil, err
			}
			params[i] = MethodParameterEntry{NameIndex: nameIndex, AccessFlags: flags}
		}
		return MethodParametersAttribute{Parameters: params}, nil

	case AttrBootstrapMethods:
		count, err := r.u2()
		if err != nil {
			return nil, err
		}
		methods := make([]BootstrapMethodEntry, count)
		for i := range methods {
			ref, err := r.u2()
			if err != nil {
				return nil, err
			}
			args, err := parseU16List(r)
			if err != nil {
				return nil, err
			}
			methods[i] = BootstrapMethodEntry{BootstrapMethodRef: ref, BootstrapArguments: args}
		}
		return BootstrapMethodsAttribute{BootstrapMethods: methods}, nil

	case AttrRuntimeVisibleAnnotations, AttrRuntimeInvisibleAnnotations:
		anns, err := parseAnnotations(r)
		if err != nil {
			return nil, err
		}
		return RuntimeAnnotationsAttribute{Visible: kind == AttrRuntimeVisibleAnnotations, Annotations: anns}, nil

	case AttrRuntimeVisibleParameterAnnotations, AttrRuntimeInvisibleParameterAnnotations:
		pa, err := parseParameterAnnotations(r)
		if err != nil {
			return nil, err
		}
		return RuntimeParameterAnnotationsAttribute{
			Visible:              kind == AttrRuntimeVisibleParameterAnnotations,
			ParameterAnnotations: pa,
		}, nil

	case AttrRuntimeVisibleTypeAnnotations, AttrRuntimeInvisibleTypeAnnotations:
		tas, err := parseTypeAnnotations(r)
		if err != nil {
			return nil, err
		}
		return RuntimeTypeAnnotationsAttribute{
			Visible:         kind == AttrRuntimeVisibleTypeAnnotations,
			TypeAnnotations: tas,
		}, nil

	case AttrAnnotationDefault:
		v, err := parseElementValue(r)
		if err != nil {
			return nil, err
		}
		return AnnotationDefaultAttribute{DefaultValue: v}, nil

	case AttrStackMapTable:
		frames, err := parseStackMapTable(r)
		if err != nil {
			return nil, err
		}
		return StackMapTableAttribute{Entries: frames}, nil

	case AttrCode:
		return parseCodeAttribute(r, cp, version)

	case AttrModule:
		return parseModuleAttribute(r)

	default:
		return nil, &InternalError{Message: fmt.Sprintf("unhandled predefined attribute kind %s", kind)}
	}
}

func parseU16List(r *reader) ([]uint16, error) {
	count, err := r.u2()
	if err != nil {
		return nil, err
	}
	out := make([]uint16, count)
	for i := range out {
		v, err := r.u2()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseLocalVariableEntry(r *reader) (LocalVariableEntry, error) {
	startPC, err := r.u2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	length, err := r.u2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	nameIndex, err := r.u2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	descIndex, err := r.u2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	index, err := r.u2()
	if err != nil {
		return LocalVariableEntry{}, err
	}
	return LocalVariableEntry{
		StartPC: startPC, Length: length, NameIndex: nameIndex,
		DescriptorIndex: descIndex, Index: index,
	}, nil
}

func parseCodeAttribute(r *reader, cp *ConstantPool, version ClassFileVersion) (Attribute, error) {
	maxStack, err := r.u2()
	if err != nil {
		return nil, err
	}
	maxLocals, err := r.u2()
	if err != nil {
		return nil, err
	}
	codeLength, err := r.u4()
	if err != nil {
		return nil, err
	}
	code, err := r.bytes(int(codeLength))
	if err != nil {
		return nil, err
	}

	excCount, err := r.u2()
	if err != nil {
		return nil, err
	}
	excTable := make([]ExceptionTableEntry, excCount)
	for i := range excTable {
		startPC, err := r.u2()
		if err != nil {
			return nil, err
		}
		endPC, err := r.u2()
		if err != nil {
			return nil, err
		}
		handlerPC, err := r.u2()
		if err != nil {
			return nil, err
		}
		catchType, err := r.u2()
		if err != nil {
			return nil, err
		}
		excTable[i] = ExceptionTableEntry{
			StartPC: startPC, EndPC: endPC, HandlerPC: handlerPC, CatchTypeIndex: catchType,
		}
	}

	attrs, err := parseAttributeTable(r, cp, ContextCode, version)
	if err != nil {
		return nil, err
	}

	return &CodeAttribute{
		MaxStack:       maxStack,
		MaxLocals:      maxLocals,
		Code:           code,
		ExceptionTable: excTable,
		Attributes:     attrs,
	}, nil
}

func parseModuleAttribute(r *reader) (Attribute, error) {
	nameIndex, err := r.u2()
	if err != nil {
		return nil, err
	}
	flags, err := r.u2()
	if err != nil {
		return nil, err
	}
	versionIndex, err := r.u2()
	if err != nil {
		return nil, err
	}

	requiresCount, err := r.u2()
	if err != nil {
		return nil, err
	}
	requires := make([]ModuleRequiresEntry, requiresCount)
	for i := range requires {
		reqIndex, err := r.u2()
		if err != nil {
			return nil, err
		}
		reqFlags, err := r.u2()
		if err != nil {
			return nil, err
		}
		reqVersionIndex, err := r.u2()
		if err != nil {
			return nil, err
		}
		requires[i] = ModuleRequiresEntry{
			RequiresIndex: reqIndex, RequiresFlags: ModuleRequiresFlags(reqFlags),
			RequiresVersionIndex: reqVersionIndex,
		}
	}

	exportsCount, err := r.u2()
	if err != nil {
		return nil, err
	}
	exports := make([]ModuleExportsEntry, exportsCount)
	for i := range exports {
		idx, err := r.u2()
		if err != nil {
			return nil, err
		}
		flags, err := r.u2()
		if err != nil {
			return nil, err
		}
		to, err := parseU16List(r)
		if err != nil {
			return nil, err
		}
		exports[i] = ModuleExportsEntry{ExportsIndex: idx, ExportsFlags: ModuleExportsFlags(flags), ExportsToIndex: to}
	}

	opensCount, err := r.u2()
	if err != nil {
		return nil, err
	}
	opens := make([]ModuleOpensEntry, opensCount)
	for i := range opens {
		idx, err := r.u2()
		if err != nil {
			return nil, err
		}
		flags, err := r.u2()
		if err != nil {
			return nil, err
		}
		to, err := parseU16List(r)
		if err != nil {
			return nil, err
		}
		opens[i] = ModuleOpensEntry{OpensIndex: idx, OpensFlags: ModuleOpensFlags(flags), OpensToIndex: to}
	}

	uses, err := parseU16List(r)
	if err != nil {
		return nil, err
	}

	providesCount, err := r.u2()
	if err != nil {
		return nil, err
	}
	provides := make([]ModuleProvidesEntry, providesCount)
	for i := range provides {
		idx, err := r.u2()
		if err != nil {
			return nil, err
		}
		with, err := parseU16List(r)
		if err != nil {
			return nil, err
		}
		provides[i] = ModuleProvidesEntry{ProvidesIndex: idx, ProvidesWithIndex: with}
	}

	return ModuleAttribute{
		ModuleNameIndex:    nameIndex,
		ModuleFlags:        ModuleFlags(flags),
		ModuleVersionIndex: versionIndex,
		Requires:           requires,
		Exports:            exports,
		Opens:              opens,
		UsesIndex:          uses,
		Provides:           provides,
	}, nil
}
