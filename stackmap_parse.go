// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

func parseVerificationTypeInfo(r *reader) (VerificationTypeInfo, error) {
	defer r.ctx.frame("verification type info")()

	tagByte, err := r.u1()
	if err != nil {
		return VerificationTypeInfo{}, err
	}
	tag := VerificationTypeTag(tagByte)

	switch tag {
	case VerificationTop, VerificationInteger, VerificationFloat, VerificationDouble,
		VerificationLong, VerificationNull, VerificationUninitializedThis:
		return VerificationTypeInfo{Tag: tag}, nil

	case VerificationObject:
		idx, err := r.u2()
		if err != nil {
			return VerificationTypeInfo{}, err
		}
		return VerificationTypeInfo{Tag: tag, CPoolIndex: idx}, nil

	case VerificationUninitialized:
		offset, err := r.u2()
		if err != nil {
			return VerificationTypeInfo{}, err
		}
		return VerificationTypeInfo{Tag: tag, Offset: offset}, nil
	}

	return VerificationTypeInfo{}, r.fail("unrecognized verification_type_info tag %d", tagByte)
}

func parseVerificationTypeInfoList(r *reader, count int) ([]VerificationTypeInfo, error) {
	out := make([]VerificationTypeInfo, count)
	for i := range out {
		v, err := parseVerificationTypeInfo(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseStackMapFrame(r *reader) (StackMapFrame, error) {
	defer r.ctx.frame("stack map frame")()

	tagByte, err := r.u1()
	if err != nil {
		return StackMapFrame{}, err
	}
	frameType, ferr := frameTypeForUnsignedByte(tagByte)
	if ferr != nil {
		return StackMapFrame{}, r.fail("%v", ferr)
	}
	defer r.ctx.frame("frame type " + frameType.String())()

	frame := StackMapFrame{Type: frameType, Tag: tagByte}

	switch frameType {
	case FrameSame:
		frame.OffsetDelta = uint16(tagByte)
		return frame, nil

	case FrameSameLocals1StackItem:
		frame.OffsetDelta = uint16(tagByte) - 64
		item, err := parseVerificationTypeInfo(r)
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.Stack = []VerificationTypeInfo{item}
		return frame, nil

	case FrameSameLocals1StackItemExtended:
		delta, err := r.u2()
		if err != nil {
			return StackMapFrame{}, err
		}
		item, err := parseVerificationTypeInfo(r)
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = delta
		frame.Stack = []VerificationTypeInfo{item}
		return frame, nil

	case FrameChop:
		delta, err := r.u2()
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = delta
		frame.ChopCount = int(tagByte) - 248
		return frame, nil

	case FrameSameExtended:
		delta, err := r.u2()
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = delta
		return frame, nil

	case FrameAppend:
		delta, err := r.u2()
		if err != nil {
			return StackMapFrame{}, err
		}
		k := int(tagByte) - 251
		locals, err := parseVerificationTypeInfoList(r, k)
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = delta
		frame.Locals = locals
		return frame, nil

	case FrameFull:
		delta, err := r.u2()
		if err != nil {
			return StackMapFrame{}, err
		}
		numLocals, err := r.u2()
		if err != nil {
			return StackMapFrame{}, err
		}
		locals, err := parseVerificationTypeInfoList(r, int(numLocals))
		if err != nil {
			return StackMapFrame{}, err
		}
		numStack, err := r.u2()
		if err != nil {
			return StackMapFrame{}, err
		}
		stack, err := parseVerificationTypeInfoList(r, int(numStack))
		if err != nil {
			return StackMapFrame{}, err
		}
		frame.OffsetDelta = delta
		frame.Locals = locals
		frame.Stack = stack
		return frame, nil
	}

	return StackMapFrame{}, &InternalError{Message: "unreachable frame type switch"}
}

func parseStackMapTable(r *reader) ([]StackMapFrame, error) {
	count, err := r.u2()
	if err != nil {
		return nil, err
	}
	out := make([]StackMapFrame, count)
	for i := range out {
		f, err := parseStackMapFrame(r)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
