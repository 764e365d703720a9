// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import (
	"strings"
	"testing"
)

func TestClassMethodAbstractExclusionMessage(t *testing.T) {
	err := ValidateMethodFlags(MethodAccessFlags(FlagAbstract|FlagFinal), Java8, MethodContextClass)
	if err == nil {
		t.Fatal("ABSTRACT|FINAL method flags accepted, want error")
	}
	const want = "If ABSTRACT is present on a method, then none of FINAL, NATIVE, PRIVATE, STATIC, STRICT, or SYNCHRONIZED is permitted"
	if !strings.HasSuffix(err.Error(), want) {
		t.Fatalf("message = %q, want suffix %q", err.Error(), want)
	}
}

func TestValidateClassFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   uint16
		version ClassFileVersion
		valid   bool
	}{
		{"plain public class", FlagPublic | FlagSuper, Java8, true},
		{"final abstract", FlagFinal | FlagAbstract, Java1, false},
		{"interface final", FlagInterface | FlagFinal | FlagAbstract, Java8, false},
		{"interface super", FlagInterface | FlagSuper | FlagAbstract, Java8, false},
		{"interface enum", FlagInterface | FlagEnum | FlagAbstract, Java8, false},
		{"annotation without interface", FlagAnnotation | FlagAbstract, Java5, false},
		{"annotation bit before Java 5 is unconstrained", FlagAnnotation, Java1_4, true},
		{"annotation interface", FlagAnnotation | FlagInterface | FlagAbstract, Java8, true},
		{"interface without abstract pre Java 6", FlagInterface, Java5, true},
		{"interface without abstract Java 6", FlagInterface, Java6, false},
		{"module alone", FlagModule, Java9, true},
		{"module with public", FlagModule | FlagPublic, Java9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClassFlags(ClassAccessFlags(tt.flags), tt.version)
			if tt.valid && err != nil {
				t.Fatalf("flags 0x%04x at %s rejected: %v", tt.flags, tt.version, err)
			}
			if !tt.valid && err == nil {
				t.Fatalf("flags 0x%04x at %s accepted, want error", tt.flags, tt.version)
			}
		})
	}
}

func TestValidateFieldFlags(t *testing.T) {
	tests := []struct {
		name        string
		flags       uint16
		isInterface bool
		valid       bool
	}{
		{"private field", FlagPrivate, false, true},
		{"public and private", FlagPublic | FlagPrivate, false, false},
		{"final volatile", FlagFinal | FlagVolatile, false, false},
		{"interface constant", FlagPublic | FlagStatic | FlagFinal, true, true},
		{"interface field missing static", FlagPublic | FlagFinal, true, false},
		{"interface field transient", FlagPublic | FlagStatic | FlagFinal | FlagTransient, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldFlags(FieldAccessFlags(tt.flags), Java8, tt.isInterface)
			if tt.valid && err != nil {
				t.Fatalf("flags 0x%04x rejected: %v", tt.flags, err)
			}
			if !tt.valid && err == nil {
				t.Fatalf("flags 0x%04x accepted, want error", tt.flags)
			}
		})
	}
}

func TestValidateMethodFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   uint16
		version ClassFileVersion
		ctx     MethodContext
		valid   bool
	}{
		{"public method", FlagPublic, Java8, MethodContextClass, true},
		{"two visibilities", FlagPublic | FlagProtected, Java8, MethodContextClass, false},
		{"abstract static", FlagAbstract | FlagStatic, Java8, MethodContextClass, false},
		{"init with strict", FlagPublic | FlagStrict, Java8, MethodContextInstanceInit, true},
		{"init with static", FlagPublic | FlagStatic, Java8, MethodContextInstanceInit, false},
		{"interface method pre Java 8", FlagPublic | FlagAbstract, Java7, MethodContextInterface, true},
		{"interface method pre Java 8 not abstract", FlagPublic, Java7, MethodContextInterface, false},
		{"default interface method Java 8", FlagPublic, Java8, MethodContextInterface, true},
		{"private interface method Java 9", FlagPrivate | FlagStatic, Java9, MethodContextInterface, true},
		{"interface method public and private", FlagPublic | FlagPrivate, Java8, MethodContextInterface, false},
		{"interface method final", FlagPublic | FlagFinal, Java8, MethodContextInterface, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMethodFlags(MethodAccessFlags(tt.flags), tt.version, tt.ctx)
			if tt.valid && err != nil {
				t.Fatalf("flags 0x%04x at %s rejected: %v", tt.flags, tt.version, err)
			}
			if !tt.valid && err == nil {
				t.Fatalf("flags 0x%04x at %s accepted, want error", tt.flags, tt.version)
			}
		})
	}
}
