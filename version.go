// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "fmt"

// ClassFileVersion identifies a major.minor class file format version.
// Versions are strictly ordered by major version; minor is 0 for every
// version after Java 1.1 (Java 1.0.2 and Java 1.1 share 45.3, so Java1
// and Java1_1 are the same value).
type ClassFileVersion struct {
	Major uint16
	Minor uint16
}

// Named class file versions, major.minor per the JVM Specification
// version table (Java 1.0.2 through Java 9).
var (
	Java1   = ClassFileVersion{45, 3}
	Java1_1 = ClassFileVersion{45, 3}
	Java1_2 = ClassFileVersion{46, 0}
	Java1_3 = ClassFileVersion{47, 0}
	Java1_4 = ClassFileVersion{48, 0}
	Java5   = ClassFileVersion{49, 0}
	Java6   = ClassFileVersion{50, 0}
	Java7   = ClassFileVersion{51, 0}
	Java8   = ClassFileVersion{52, 0}
	Java9   = ClassFileVersion{53, 0}
)

// Before reports whether v precedes other in major.minor order.
func (v ClassFileVersion) Before(other ClassFileVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// AtLeast reports whether v is other or a later version.
func (v ClassFileVersion) AtLeast(other ClassFileVersion) bool {
	return !v.Before(other)
}

// AtMost reports whether v is other or an earlier version.
func (v ClassFileVersion) AtMost(other ClassFileVersion) bool {
	return !other.Before(v)
}

func (v ClassFileVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// knownVersionNames maps the named versions above to their display
// names.
var knownVersionNames = map[ClassFileVersion]string{
	{45, 3}:  "Java SE 1.1",
	{46, 0}:  "Java SE 1.2",
	{47, 0}:  "Java SE 1.3",
	{48, 0}:  "Java SE 1.4",
	{49, 0}:  "Java SE 5.0",
	{50, 0}:  "Java SE 6",
	{51, 0}:  "Java SE 7",
	{52, 0}:  "Java SE 8",
	{53, 0}:  "Java SE 9",
}

// Name returns the marketing name for a known version, or "" if v does
// not match one of the versions named in the JVM Specification's
// version table.
func (v ClassFileVersion) Name() string {
	return knownVersionNames[v]
}
