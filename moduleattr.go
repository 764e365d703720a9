// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

// ModuleRequiresEntry is one entry of a Module attribute's requires
// table (§4.7.25).
type ModuleRequiresEntry struct {
	RequiresIndex   uint16
	RequiresFlags   ModuleRequiresFlags
	RequiresVersionIndex uint16 // 0: no version recorded
}

// ModuleExportsEntry is one entry of a Module attribute's exports
// table.
type ModuleExportsEntry struct {
	ExportsIndex    uint16
	ExportsFlags    ModuleExportsFlags
	ExportsToIndex  []uint16
}

// ModuleOpensEntry is one entry of a Module attribute's opens table.
type ModuleOpensEntry struct {
	OpensIndex   uint16
	OpensFlags   ModuleOpensFlags
	OpensToIndex []uint16
}

// ModuleProvidesEntry is one entry of a Module attribute's provides
// table.
type ModuleProvidesEntry struct {
	ProvidesIndex     uint16
	ProvidesWithIndex []uint16
}

// ModuleAttribute is the Module attribute (§4.7.25): a module
// descriptor carrying its own name/flags/version plus the requires,
// exports, opens, uses, and provides tables.
type ModuleAttribute struct {
	ModuleNameIndex    uint16
	ModuleFlags        ModuleFlags
	ModuleVersionIndex uint16 // 0: no version recorded
	Requires           []ModuleRequiresEntry
	Exports            []ModuleExportsEntry
	Opens              []ModuleOpensEntry
	UsesIndex          []uint16
	Provides           []ModuleProvidesEntry
}

func (ModuleAttribute) Kind() AttributeKind { return AttrModule }
