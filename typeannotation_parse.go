// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "fmt"

func parseTypeAnnotation(r *reader) (TypeAnnotation, error) {
	defer r.ctx.frame("type annotation")()

	targetTypeByte, err := r.u1()
	if err != nil {
		return TypeAnnotation{}, err
	}
	targetType := TargetType(targetTypeByte)
	if !targetType.Valid() {
		return TypeAnnotation{}, r.fail("unrecognized type annotation target_type 0x%02x", targetTypeByte)
	}

	targetInfo, err := parseTargetInfo(r, targetType)
	if err != nil {
		return TypeAnnotation{}, err
	}
	path, err := parseTypePath(r)
	if err != nil {
		return TypeAnnotation{}, err
	}
	annotation, err := parseAnnotation(r)
	if err != nil {
		return TypeAnnotation{}, err
	}
	return TypeAnnotation{
		TargetType: targetType,
		TargetInfo: targetInfo,
		TypePath:   path,
		Annotation: annotation,
	}, nil
}

func parseTypeAnnotations(r *reader) ([]TypeAnnotation, error) {
	count, err := r.u2()
	if err != nil {
		return nil, err
	}
	out := make([]TypeAnnotation, count)
	for i := range out {
		ta, err := parseTypeAnnotation(r)
		if err != nil {
			return nil, err
		}
		out[i] = ta
	}
	return out, nil
}

func parseTargetInfo(r *reader, tt TargetType) (TargetInfo, error) {
	defer r.ctx.frame(fmt.Sprintf("target info for target type 0x%02x", byte(tt)))()

	switch tt {
	case TargetClassTypeParameter, TargetMethodTypeParameter:
		idx, err := r.u1()
		if err != nil {
			return TargetInfo{}, err
		}
		return TargetInfo{TypeParameterIndex: idx}, nil

	case TargetClassExtends:
		idx, err := r.u2()
		if err != nil {
			return TargetInfo{}, err
		}
		return TargetInfo{SupertypeIndex: idx}, nil

	case TargetClassTypeParameterBound, TargetMethodTypeParameterBound:
		paramIdx, err := r.u1()
		if err != nil {
			return TargetInfo{}, err
		}
		boundIdx, err := r.u1()
		if err != nil {
			return TargetInfo{}, err
		}
		return TargetInfo{BoundTypeParameterIndex: paramIdx, BoundIndex: boundIdx}, nil

	case TargetField, TargetMethodReturn, TargetMethodReceiver:
		return TargetInfo{}, nil

	case TargetMethodFormalParameter:
		idx, err := r.u1()
		if err != nil {
			return TargetInfo{}, err
		}
		return TargetInfo{FormalParameterIndex: idx}, nil

	case TargetThrows:
		idx, err := r.u2()
		if err != nil {
			return TargetInfo{}, err
		}
		return TargetInfo{ThrowsTypeIndex: idx}, nil

	case TargetLocalVariable, TargetResourceVariable:
		count, err := r.u2()
		if err != nil {
			return TargetInfo{}, err
		}
		table := make([]LocalVarTargetEntry, count)
		for i := range table {
			startPC, err := r.u2()
			if err != nil {
				return TargetInfo{}, err
			}
			length, err := r.u2()
			if err != nil {
				return TargetInfo{}, err
			}
			index, err := r.u2()
			if err != nil {
				return TargetInfo{}, err
			}
			table[i] = LocalVarTargetEntry{StartPC: startPC, Length: length, Index: index}
		}
		return TargetInfo{LocalVarTable: table}, nil

	case TargetExceptionParameter:
		idx, err := r.u2()
		if err != nil {
			return TargetInfo{}, err
		}
		return TargetInfo{ExceptionTableIndex: idx}, nil

	case TargetInstanceOf, TargetNew, TargetConstructorReference, TargetMethodReference:
		offset, err := r.u2()
		if err != nil {
			return TargetInfo{}, err
		}
		return TargetInfo{Offset: offset}, nil

	case TargetCast, TargetConstructorInvocationTypeArgument, TargetMethodInvocationTypeArgument,
		TargetConstructorReferenceTypeArgument, TargetMethodReferenceTypeArgument:
		offset, err := r.u2()
		if err != nil {
			return TargetInfo{}, err
		}
		idx, err := r.u1()
		if err != nil {
			return TargetInfo{}, err
		}
		return TargetInfo{TypeArgumentOffset: offset, TypeArgumentIndex: idx}, nil
	}

	return TargetInfo{}, &InternalError{Message: "unreachable target_type switch"}
}

func parseTypePath(r *reader) (TypePath, error) {
	length, err := r.u1()
	if err != nil {
		return nil, err
	}
	path := make(TypePath, length)
	for i := range path {
		kindByte, err := r.u1()
		if err != nil {
			return nil, err
		}
		argIndex, err := r.u1()
		if err != nil {
			return nil, err
		}
		path[i] = TypePathStep{Kind: TypePathKind(kindByte), TypeArgumentIndex: argIndex}
	}
	return path, nil
}
