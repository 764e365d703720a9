// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "fmt"

// parseConstantPool reads constant_pool_count and the constant_pool
// array, leaving dead slots nil after every Long/Double entry per
// §4.4.5's two-slot rule. Tags not yet defined in version are rejected.
func parseConstantPool(r *reader, version ClassFileVersion) (*ConstantPool, error) {
	defer r.ctx.frame("constant pool")()

	count, err := r.u2()
	if err != nil {
		return nil, err
	}
	cp := &ConstantPool{entries: make([]ConstantPoolEntry, count)}

	for i := 1; i < int(count); i++ {
		entry, slots, err := parseConstantPoolEntry(r, i, version)
		if err != nil {
			return nil, err
		}
		cp.entries[i] = entry
		if slots == 2 {
			if i+1 >= int(count) {
				return nil, r.fail("constant pool entry %d (%s) has no room for its second slot", i, entry.Tag())
			}
			cp.entries[i+1] = nil
			i++
		}
	}
	return cp, nil
}

func parseConstantPoolEntry(r *reader, index int, version ClassFileVersion) (ConstantPoolEntry, int, error) {
	defer r.ctx.frame(fmt.Sprintf("entry #%d of constant pool", index))()

	tagByte, err := r.u1()
	if err != nil {
		return nil, 0, err
	}
	tag := ConstantPoolTag(tagByte)
	if !tag.Valid() {
		return nil, 0, r.fail("unrecognized constant pool tag %d", tagByte)
	}
	if version.Before(tag.FirstVersion()) {
		return nil, 0, r.fail("constant pool tag %s requires class file version %s or later, file declares %s",
			tag, tag.FirstVersion(), version)
	}

	switch tag {
	case TagUTF8:
		length, err := r.u2()
		if err != nil {
			return nil, 0, err
		}
		raw, err := r.bytes(int(length))
		if err != nil {
			return nil, 0, err
		}
		text, err := decodeModifiedUTF8(raw)
		if err != nil {
			return nil, 0, r.fail("malformed modified UTF-8: %v", err)
		}
		return Utf8Constant{Value: text}, 1, nil

	case TagInteger:
		v, err := r.i4()
		if err != nil {
			return nil, 0, err
		}
		return IntegerConstant{Value: v}, 1, nil

	case TagFloat:
		v, err := r.u4()
		if err != nil {
			return nil, 0, err
		}
		return FloatConstant{Value: float32FromBits(v)}, 1, nil

	case TagLong:
		v, err := r.i8()
		if err != nil {
			return nil, 0, err
		}
		return LongConstant{Value: v}, 2, nil

	case TagDouble:
		v, err := r.u8()
		if err != nil {
			return nil, 0, err
		}
		return DoubleConstant{Value: float64FromBits(v)}, 2, nil

	case TagClass:
		nameIndex, err := r.u2()
		if err != nil {
			return nil, 0, err
		}
		return ClassConstant{NameIndex: nameIndex}, 1, nil

	case TagString:
		stringIndex, err := r.u2()
		if err != nil {
			return nil, 0, err
		}
		return StringConstant{StringIndex: stringIndex}, 1, nil

	case TagFieldref:
		classIndex, natIndex, err := readRefPair(r)
		if err != nil {
			return nil, 0, err
		}
		return FieldrefConstant{ClassIndex: classIndex, NameAndTypeIndex: natIndex}, 1, nil

	case TagMethodref:
		classIndex, natIndex, err := readRefPair(r)
		if err != nil {
			return nil, 0, err
		}
		return MethodrefConstant{ClassIndex: classIndex, NameAndTypeIndex: natIndex}, 1, nil

	case TagInterfaceMethodref:
		classIndex, natIndex, err := readRefPair(r)
		if err != nil {
			return nil, 0, err
		}
		return InterfaceMethodrefConstant{ClassIndex: classIndex, NameAndTypeIndex: natIndex}, 1, nil

	case TagNameAndType:
		nameIndex, descIndex, err := readRefPair(r)
		if err != nil {
			return nil, 0, err
		}
		return NameAndTypeConstant{NameIndex: nameIndex, DescriptorIndex: descIndex}, 1, nil

	case TagMethodHandle:
		kindByte, err := r.u1()
		if err != nil {
			return nil, 0, err
		}
		kind := MethodHandleReferenceKind(kindByte)
		if !kind.Valid() {
			return nil, 0, r.fail("invalid method handle reference kind %d", kindByte)
		}
		refIndex, err := r.u2()
		if err != nil {
			return nil, 0, err
		}
		return MethodHandleConstant{ReferenceKind: kind, ReferenceIndex: refIndex}, 1, nil

	case TagMethodType:
		descIndex, err := r.u2()
		if err != nil {
			return nil, 0, err
		}
		return MethodTypeConstant{DescriptorIndex: descIndex}, 1, nil

	case TagInvokeDynamic:
		bootstrapIndex, natIndex, err := readRefPair(r)
		if err != nil {
			return nil, 0, err
		}
		return InvokeDynamicConstant{BootstrapMethodAttrIndex: bootstrapIndex, NameAndTypeIndex: natIndex}, 1, nil

	case TagModule:
		nameIndex, err := r.u2()
		if err != nil {
			return nil, 0, err
		}
		return ModuleConstant{NameIndex: nameIndex}, 1, nil

	case TagPackage:
		nameIndex, err := r.u2()
		if err != nil {
			return nil, 0, err
		}
		return PackageConstant{NameIndex: nameIndex}, 1, nil
	}

	return nil, 0, &InternalError{Message: "unreachable constant pool tag switch"}
}

func readRefPair(r *reader) (uint16, uint16, error) {
	a, err := r.u2()
	if err != nil {
		return 0, 0, err
	}
	b, err := r.u2()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
