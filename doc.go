// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package jclass parses Java Virtual Machine class files (JVM
// Specification, Chapter 4) into typed Go values: the constant pool,
// access flags, fields, methods, and the open-ended set of attributes,
// including the nested Code attribute's bytecode, exception table, and
// stack map frames.
//
// The bytecode subpackage parses a method's raw bytecode array on its
// own, independent of the class file structure around it, reporting
// structural events to a caller-supplied Visitor.
package jclass
