// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// +build gofuzz

package jclass

// Fuzz is the go-fuzz entry point: feed arbitrary bytes through
// ParseBytes and let the fuzzer hunt for panics the format's own error
// handling should have turned into a returned error instead.
func Fuzz(data []byte) int {
	cf, err := ParseBytes(data, Options{StrictFlags: true})
	if err != nil {
		return 0
	}
	if cf == nil {
		panic("ParseBytes returned nil ClassFile with nil error")
	}
	return 1
}
