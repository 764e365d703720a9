// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/gojclass/jclass/log"
)

// Options configures a parse. The zero value is the permissive
// default: no flag-rule enforcement, no constant pool size cap, and a
// discarding logger.
type Options struct {
	// StrictFlags selects how violations of the version-scoped flag
	// rules (the combination constraints of JVMS §4.1/§4.5/§4.6) are
	// handled. Class, field, and method access flags are always checked;
	// when true the first violation fails the parse, when false each
	// violation is logged at Warn and recorded in ClassFile.Anomalies.
	StrictFlags bool

	// MaxConstantPoolEntries caps constant_pool_count; 0 means
	// unlimited. Guards a hostile input's memory footprint before any
	// entry is allocated.
	MaxConstantPoolEntries int

	// Logger receives structural progress/diagnostic messages during
	// parsing. Defaults to a discarding logger.
	Logger *log.Helper
}

func (o *Options) logger() *log.Helper {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Discard()
}

// ClassFile is a fully parsed .class file (JVMS §4.1).
type ClassFile struct {
	Version ClassFileVersion

	ConstantPool *ConstantPool

	AccessFlags ClassAccessFlags
	ThisClass   uint16
	SuperClass  uint16 // 0: no superclass (only java.lang.Object)

	Interfaces []uint16
	Fields     []Field
	Methods    []Method
	Attributes []Attribute

	// Anomalies collects non-fatal flag-rule violations observed while
	// StrictFlags was false, in encounter order. A lenient parse never
	// fails on these, but a caller that wants to know about them
	// afterward can inspect the slice instead of re-running
	// ValidateClassFlags/etc itself.
	Anomalies []string
}

// ThisClassName resolves ThisClass to its internal-form class name.
func (c *ClassFile) ThisClassName() (string, error) {
	return c.ConstantPool.ClassName(c.ThisClass)
}

// SuperClassName resolves SuperClass to its internal-form class name,
// or "" if SuperClass is 0 (only java.lang.Object itself has none).
func (c *ClassFile) SuperClassName() (string, error) {
	if c.SuperClass == 0 {
		return "", nil
	}
	return c.ConstantPool.ClassName(c.SuperClass)
}

// Open memory-maps path read-only and parses it as a class file,
// releasing the mapping before returning.
func Open(path string, opts Options) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer data.Unmap()

	return ParseBytes(data, opts)
}

// Verify parses path under strict flag checking and discards the
// result, reporting only whether the file is well formed.
func Verify(path string) error {
	_, err := Open(path, Options{StrictFlags: true})
	return err
}

// ParseBytes parses data as a class file. data is not retained: every
// byte array the result owns (RawAttribute.Data, CodeAttribute.Code,
// and so on) is copied out during parsing per this format's borrowed-
// input lifetime rule.
func ParseBytes(data []byte, opts Options) (*ClassFile, error) {
	logger := opts.logger()
	logger.Debugf("parsing class file of %d bytes", len(data))

	ctx := &contextStack{}
	r := newReader(data, ctx)
	return parseClassFile(r, opts)
}
