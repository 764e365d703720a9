// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytecode

// Parse walks a method's code array in instruction order, calling back
// into v for each instruction. It performs structural checks only:
// opcode validity, operand-byte availability, switch-table bounds
// consistency, and mandatory-zero bytes. It never validates
// local-variable indices, constant-pool
// indices, branch targets, or lookupswitch pair ordering.
//
// On the first malformed instruction, Parse stops and returns a
// *FormatError naming the byte offset of that instruction's opcode
// byte -- never the offset of a specific operand.
func Parse(code []byte, v Visitor) error {
	pos := 0
	for pos < len(code) {
		next, err := step(code, pos, v)
		if err != nil {
			return err
		}
		pos = next
	}
	return nil
}

func step(code []byte, position int, v Visitor) (int, error) {
	op := Opcode(code[position])
	if !op.Valid() {
		return 0, newFormatError(position, "unrecognized opcode byte 0x%02x", code[position])
	}

	switch op.Category() {
	case CategoryZeroOperand:
		v.VisitNoOperand(position, op)
		return position + 1, nil

	case CategoryOneOperand:
		return stepOneOperand(code, position, op, v)

	case CategoryTwoOperand:
		return stepTwoOperand(code, position, op, v)

	case CategoryVariableOperand:
		switch op {
		case Lookupswitch:
			return stepLookupswitch(code, position, v)
		case Tableswitch:
			return stepTableswitch(code, position, v)
		case Wide:
			return stepWide(code, position, v)
		default:
			panic(&InternalError{Message: "unhandled variable-operand opcode " + op.String()})
		}

	default:
		panic(&InternalError{Message: "unhandled opcode category"})
	}
}

func stepOneOperand(code []byte, position int, op Opcode, v Visitor) (int, error) {
	ot := op.Operands()[0]
	end := position + 1 + ot.Width()
	if end > len(code) {
		return 0, newFormatError(position, "truncated operand for %s", op)
	}
	value := ot.decode(code, position+1)

	if op == Invokedynamic {
		zeroEnd := end + 2
		if zeroEnd > len(code) {
			return 0, newFormatError(position, "truncated mandatory-zero bytes for %s", op)
		}
		if code[end] != 0 || code[end+1] != 0 {
			return 0, newFormatError(position, "mandatory-zero byte non-zero for %s", op)
		}
		end = zeroEnd
	}

	v.VisitOneOperand(position, op, value)
	return end, nil
}

func stepTwoOperand(code []byte, position int, op Opcode, v Visitor) (int, error) {
	ops := op.Operands()
	w0, w1 := ops[0].Width(), ops[1].Width()
	end := position + 1 + w0 + w1
	if end > len(code) {
		return 0, newFormatError(position, "truncated operand for %s", op)
	}
	v0 := ops[0].decode(code, position+1)
	v1 := ops[1].decode(code, position+1+w0)

	if op == Invokeinterface {
		zeroEnd := end + 1
		if zeroEnd > len(code) {
			return 0, newFormatError(position, "truncated mandatory-zero byte for %s", op)
		}
		if code[end] != 0 {
			return 0, newFormatError(position, "mandatory-zero byte non-zero for %s", op)
		}
		end = zeroEnd
	}

	v.VisitTwoOperand(position, op, v0, v1)
	return end, nil
}

// padTarget returns the offset, strictly greater than position and
// congruent to 0 mod 4, at which a switch instruction's first
// 4-byte-aligned operand begins.
func padTarget(position int) int {
	p := 4 - (position % 4)
	return position + p
}

func stepLookupswitch(code []byte, position int, v Visitor) (int, error) {
	cursor := padTarget(position)
	if cursor+8 > len(code) {
		return 0, newFormatError(position, "truncated lookupswitch header")
	}
	defaultOffset := BranchOffsetInt.decode(code, cursor)
	npairs := SignedValueInt.decode(code, cursor+4)
	if npairs < 0 {
		return 0, newFormatError(position, "lookupswitch npairs is negative (%d)", npairs)
	}
	pairsStart := cursor + 8
	pairsLen := int(npairs) * 8
	pairsEnd := pairsStart + pairsLen
	if pairsEnd > len(code) || pairsEnd < pairsStart {
		return 0, newFormatError(position, "truncated lookupswitch match-offset pairs")
	}
	v.VisitLookupSwitch(position, defaultOffset, npairs, code[pairsStart:pairsEnd])
	return pairsEnd, nil
}

func stepTableswitch(code []byte, position int, v Visitor) (int, error) {
	cursor := padTarget(position)
	if cursor+12 > len(code) {
		return 0, newFormatError(position, "truncated tableswitch header")
	}
	defaultOffset := BranchOffsetInt.decode(code, cursor)
	low := SignedValueInt.decode(code, cursor+4)
	high := SignedValueInt.decode(code, cursor+8)
	if high < low {
		return 0, newFormatError(position, "tableswitch high (%d) less than low (%d)", high, low)
	}
	numJumps := int(high-low) + 1
	jumpsStart := cursor + 12
	jumpsLen := numJumps * 4
	jumpsEnd := jumpsStart + jumpsLen
	if jumpsEnd > len(code) || jumpsEnd < jumpsStart {
		return 0, newFormatError(position, "truncated tableswitch jump-offset table")
	}
	v.VisitTableSwitch(position, defaultOffset, low, high, code[jumpsStart:jumpsEnd])
	return jumpsEnd, nil
}

func stepWide(code []byte, position int, v Visitor) (int, error) {
	if position+2 > len(code) {
		return 0, newFormatError(position, "truncated wide instruction")
	}
	widened := Opcode(code[position+1])

	if widened == Iinc {
		end := position + 6
		if end > len(code) {
			return 0, newFormatError(position, "truncated wide iinc")
		}
		index := LocalVariableIndexShort.decode(code, position+2)
		constant := SignedValueShort.decode(code, position+4)
		v.VisitTwoOperand(position, Iinc, index, constant)
		return end, nil
	}

	if widenable(widened) {
		end := position + 4
		if end > len(code) {
			return 0, newFormatError(position, "truncated wide instruction")
		}
		index := LocalVariableIndexShort.decode(code, position+2)
		v.VisitOneOperand(position, widened, index)
		return end, nil
	}

	return 0, newFormatError(position, "opcode 0x%02x is not a valid wide target", code[position+1])
}
