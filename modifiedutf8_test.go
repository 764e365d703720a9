// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "testing"

func TestDecodeModifiedUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
		ok    bool
	}{
		{"ascii", []byte("java/lang/Object"), "java/lang/Object", true},
		{"empty", []byte{}, "", true},
		{"two byte", []byte{0xC3, 0xA9}, "é", true},
		{"three byte", []byte{0xE2, 0x82, 0xAC}, "€", true},
		{"embedded null", []byte{'a', 0xC0, 0x80, 'b'}, "a\x00b", true},
		{"supplementary surrogate pair", []byte{0xED, 0xA0, 0x81, 0xED, 0xB0, 0x80}, "\U00010400", true},
		{"raw null byte", []byte{0x00}, "", false},
		{"four byte utf-8 not allowed", []byte{0xF0, 0x90, 0x90, 0x80}, "", false},
		{"truncated two byte", []byte{0xC3}, "", false},
		{"truncated surrogate pair", []byte{0xED, 0xA0, 0x81}, "", false},
		{"high surrogate followed by non-surrogate", []byte{0xED, 0xA0, 0x81, 0xE2, 0x82, 0xAC}, "", false},
		{"unpaired low surrogate", []byte{0xED, 0xB0, 0x80}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeModifiedUTF8(tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("decode(% x): %v", tt.input, err)
				}
				if got != tt.want {
					t.Fatalf("decode(% x) = %q, want %q", tt.input, got, tt.want)
				}
			} else if err == nil {
				t.Fatalf("decode(% x) = %q, want error", tt.input, got)
			}
		})
	}
}
