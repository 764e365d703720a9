// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "testing"

func TestParseModuleAttribute(t *testing.T) {
	cp := &ConstantPool{entries: []ConstantPoolEntry{
		nil,
		Utf8Constant{Value: "Module"},
	}}

	var body []byte
	body = append(body, 0x00, 0x02) // module_name_index
	body = append(body, 0x00, 0x20) // module_flags: OPEN
	body = append(body, 0x00, 0x00) // module_version_index: absent

	body = append(body, 0x00, 0x01) // requires_count
	body = append(body, 0x00, 0x03) // requires_index
	body = append(body, 0x80, 0x00) // requires_flags: MANDATED
	body = append(body, 0x00, 0x00) // requires_version_index: absent

	body = append(body, 0x00, 0x01) // exports_count
	body = append(body, 0x00, 0x04) // exports_index
	body = append(body, 0x00, 0x00) // exports_flags
	body = append(body, 0x00, 0x02, 0x00, 0x05, 0x00, 0x06) // exports_to: 2 modules

	body = append(body, 0x00, 0x00) // opens_count
	body = append(body, 0x00, 0x01, 0x00, 0x07) // uses: 1 entry
	body = append(body, 0x00, 0x01) // provides_count
	body = append(body, 0x00, 0x08) // provides_index
	body = append(body, 0x00, 0x01, 0x00, 0x09) // provides_with: 1 entry

	var data []byte
	data = append(data, 0x00, 0x01) // attributes_count
	data = append(data, 0x00, 0x01) // name_index -> "Module"
	data = append(data, 0x00, 0x00, 0x00, byte(len(body)))
	data = append(data, body...)

	r := newReader(data, &contextStack{})
	attrs, err := parseAttributeTable(r, cp, ContextClassFile, Java9)
	if err != nil {
		t.Fatalf("parseAttributeTable: %v", err)
	}
	mod, ok := attrs[0].(ModuleAttribute)
	if !ok {
		t.Fatalf("attrs[0] = %#v, want ModuleAttribute", attrs[0])
	}

	if mod.ModuleNameIndex != 2 || !mod.ModuleFlags.Has(FlagOpen) || mod.ModuleVersionIndex != 0 {
		t.Fatalf("module header = %+v, want name 2, OPEN, no version", mod)
	}
	if len(mod.Requires) != 1 || mod.Requires[0].RequiresIndex != 3 || !mod.Requires[0].RequiresFlags.Has(FlagMandated) {
		t.Fatalf("requires = %+v, want one MANDATED entry on index 3", mod.Requires)
	}
	if len(mod.Exports) != 1 || len(mod.Exports[0].ExportsToIndex) != 2 {
		t.Fatalf("exports = %+v, want one entry exported to 2 modules", mod.Exports)
	}
	if len(mod.Opens) != 0 {
		t.Fatalf("opens = %+v, want none", mod.Opens)
	}
	if len(mod.UsesIndex) != 1 || mod.UsesIndex[0] != 7 {
		t.Fatalf("uses = %v, want [7]", mod.UsesIndex)
	}
	if len(mod.Provides) != 1 || mod.Provides[0].ProvidesIndex != 8 || len(mod.Provides[0].ProvidesWithIndex) != 1 {
		t.Fatalf("provides = %+v, want one entry with one implementation", mod.Provides)
	}
}

// TestModuleAttributeIgnoredBeforeJava9 checks that a Module attribute
// in a pre-Java-9 class file degrades to a RawAttribute instead of
// being structurally parsed.
func TestModuleAttributeIgnoredBeforeJava9(t *testing.T) {
	cp := &ConstantPool{entries: []ConstantPoolEntry{
		nil,
		Utf8Constant{Value: "Module"},
	}}

	var data []byte
	data = append(data, 0x00, 0x01)
	data = append(data, 0x00, 0x01)
	data = append(data, 0x00, 0x00, 0x00, 0x02)
	data = append(data, 0xDE, 0xAD)

	r := newReader(data, &contextStack{})
	attrs, err := parseAttributeTable(r, cp, ContextClassFile, Java8)
	if err != nil {
		t.Fatalf("parseAttributeTable: %v", err)
	}
	if _, ok := attrs[0].(RawAttribute); !ok {
		t.Fatalf("attrs[0] = %#v, want RawAttribute for pre-Java-9 Module", attrs[0])
	}
}
