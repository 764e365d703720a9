// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "fmt"

// reader is a sequential, bounds-checked, big-endian cursor over an
// in-memory class file. The format is read strictly top to bottom, so
// a single advancing cursor suffices; there is no seeking.
type reader struct {
	data []byte
	pos  int
	ctx  *contextStack
}

func newReader(data []byte, ctx *contextStack) *reader {
	return &reader{data: data, ctx: ctx}
}

// position reports the reader's current byte offset.
func (r *reader) position() int {
	return r.pos
}

// fail builds a *ClassFormatError positioned at the reader's current
// offset, annotated with the live context stack.
func (r *reader) fail(format string, args ...interface{}) *ClassFormatError {
	return &ClassFormatError{
		Position: r.pos,
		Message:  fmt.Sprintf(format, args...),
		Context:  r.ctx.snapshot(),
	}
}

func (r *reader) require(n int) error {
	if r.pos+n > len(r.data) {
		return r.fail("unexpected end of input, need %d more byte(s)", n)
	}
	return nil
}

// u1 reads an unsigned 8-bit integer.
func (r *reader) u1() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// u2 reads a big-endian unsigned 16-bit integer.
func (r *reader) u2() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := uint16(r.data[r.pos])<<8 | uint16(r.data[r.pos+1])
	r.pos += 2
	return v, nil
}

// u4 reads a big-endian unsigned 32-bit integer.
func (r *reader) u4() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.pos])<<24 | uint32(r.data[r.pos+1])<<16 |
		uint32(r.data[r.pos+2])<<8 | uint32(r.data[r.pos+3])
	r.pos += 4
	return v, nil
}

// u8 reads a big-endian unsigned 64-bit integer.
func (r *reader) u8() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	hi, _ := r.u4()
	lo, _ := r.u4()
	return uint64(hi)<<32 | uint64(lo), nil
}

// i4 reads a big-endian signed 32-bit integer.
func (r *reader) i4() (int32, error) {
	v, err := r.u4()
	return int32(v), err
}

// i8 reads a big-endian signed 64-bit integer.
func (r *reader) i8() (int64, error) {
	v, err := r.u8()
	return int64(v), err
}

// bytes reads n raw bytes and returns a fresh copy, so the output does
// not alias the reader's backing array (per the "backing byte arrays
// are copied rather than aliased" lifetime rule).
func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// skip advances the cursor by n bytes without returning them.
func (r *reader) skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// remaining reports how many bytes are left unread.
func (r *reader) remaining() int {
	return len(r.data) - r.pos
}
