// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "strings"

// flagRule is one predicate in a versioned rule collection: it reports
// whether word satisfies the rule, and if not, a human-readable
// description usable as a BadFlagCombinationError message.
type flagRule struct {
	check   func(word uint16) bool
	message string
}

// visibilityRule: at most one of PUBLIC, PRIVATE, PROTECTED.
func visibilityRule() flagRule {
	return flagRule{
		check: func(w uint16) bool {
			n := 0
			for _, bit := range []uint16{FlagPublic, FlagPrivate, FlagProtected} {
				if w&bit != 0 {
					n++
				}
			}
			return n <= 1
		},
		message: "at most one of PUBLIC, PRIVATE, or PROTECTED is permitted",
	}
}

// allOf requires every listed flag to be present.
func allOf(names []string, bits ...uint16) flagRule {
	return flagRule{
		check: func(w uint16) bool {
			for _, b := range bits {
				if w&b == 0 {
					return false
				}
			}
			return true
		},
		message: "all of " + strings.Join(names, ", ") + " are required",
	}
}

// bothOf requires exactly two flags, both present.
func bothOf(nameA string, bitA uint16, nameB string, bitB uint16) flagRule {
	return allOf([]string{nameA, nameB}, bitA, bitB)
}

// exactlyOneOf requires exactly one of the two flags to be present.
func exactlyOneOf(nameA string, bitA uint16, nameB string, bitB uint16) flagRule {
	return flagRule{
		check: func(w uint16) bool {
			a, b := w&bitA != 0, w&bitB != 0
			return a != b
		},
		message: "exactly one of " + nameA + " or " + nameB + " is required",
	}
}

// noneOf forbids every listed flag.
func noneOf(names []string, bits ...uint16) flagRule {
	return flagRule{
		check: func(w uint16) bool {
			for _, b := range bits {
				if w&b != 0 {
					return false
				}
			}
			return true
		},
		message: "none of " + strings.Join(names, ", ") + " is permitted",
	}
}

// notBothOf forbids the two flags from both being present.
func notBothOf(nameA string, bitA uint16, nameB string, bitB uint16) flagRule {
	return flagRule{
		check: func(w uint16) bool {
			return w&bitA == 0 || w&bitB == 0
		},
		message: nameA + " and " + nameB + " must not both be set",
	}
}

// noOthersThan permits only flags drawn from the listed set.
func noOthersThan(names []string, bits ...uint16) flagRule {
	var mask uint16
	for _, b := range bits {
		mask |= b
	}
	return flagRule{
		check: func(w uint16) bool {
			return w&^mask == 0
		},
		message: "only " + strings.Join(names, ", ") + " are permitted",
	}
}

// ifFirstThenAlsoSecond requires second whenever first is set.
func ifFirstThenAlsoSecond(nameFirst string, first uint16, nameSecond string, second uint16) flagRule {
	return flagRule{
		check: func(w uint16) bool {
			return w&first == 0 || w&second != 0
		},
		message: "if " + nameFirst + " is present, " + nameSecond + " is required",
	}
}

// joinOr renders names as "A, B, or C" ("A or B" for two, "A" for one).
func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}

// ifFirstThenNoneOfTheRest forbids every rest flag whenever first is
// set; subject names the construct the rule speaks about ("a class",
// "a method").
func ifFirstThenNoneOfTheRest(nameFirst string, first uint16, subject string, restNames []string, rest ...uint16) flagRule {
	return flagRule{
		check: func(w uint16) bool {
			if w&first == 0 {
				return true
			}
			for _, b := range rest {
				if w&b != 0 {
					return false
				}
			}
			return true
		},
		message: "If " + nameFirst + " is present on " + subject + ", then none of " + joinOr(restNames) + " is permitted",
	}
}

// flagRuleCollection is a set of rules scoped to a version range
// [firstVersion, lastVersion); lastVersion's zero value means
// "unbounded".
type flagRuleCollection struct {
	firstVersion ClassFileVersion
	lastVersion  ClassFileVersion // zero value: unbounded
	rules        []flagRule
}

// appliesTo reports whether v falls in [firstVersion, lastVersion);
// a zero-value lastVersion means unbounded.
func (c flagRuleCollection) appliesTo(v ClassFileVersion) bool {
	if !v.AtLeast(c.firstVersion) {
		return false
	}
	if c.lastVersion != (ClassFileVersion{}) && !v.Before(c.lastVersion) {
		return false
	}
	return true
}

// evaluate runs every rule in every collection whose version range
// contains v, returning the message of the first violated rule, or ""
// if word is valid.
func evaluate(word uint16, v ClassFileVersion, collections []flagRuleCollection) string {
	for _, c := range collections {
		if !c.appliesTo(v) {
			continue
		}
		for _, rule := range c.rules {
			if !rule.check(word) {
				return rule.message
			}
		}
	}
	return ""
}

// classFlagRules holds the class access-flag constraints of JVMS §4.1
// Table 4.1-B, grouped by the version that introduced each.
var classFlagRules = []flagRuleCollection{
	{
		firstVersion: Java1,
		rules: []flagRule{
			notBothOf("FINAL", FlagFinal, "ABSTRACT", FlagAbstract),
			ifFirstThenNoneOfTheRest("INTERFACE", FlagInterface, "a class", []string{"FINAL", "SUPER"}, FlagFinal, FlagSuper),
			notBothOf("INTERFACE", FlagInterface, "ENUM", FlagEnum),
		},
	},
	{
		firstVersion: Java5,
		rules: []flagRule{
			ifFirstThenAlsoSecond("ANNOTATION", FlagAnnotation, "INTERFACE", FlagInterface),
		},
	},
	{
		firstVersion: Java6,
		rules: []flagRule{
			ifFirstThenAlsoSecond("INTERFACE", FlagInterface, "ABSTRACT", FlagAbstract),
		},
	},
	{
		firstVersion: Java9,
		rules: []flagRule{
			{
				check: func(w uint16) bool {
					if w&FlagModule == 0 {
						return true
					}
					return w == FlagModule
				},
				message: "if MODULE is present, it must be the only flag set",
			},
		},
	},
}

// ValidateClassFlags checks word against the class rule family for
// version v, returning a *BadFlagCombinationError if invalid.
func ValidateClassFlags(word ClassAccessFlags, v ClassFileVersion) error {
	if msg := evaluate(uint16(word), v, classFlagRules); msg != "" {
		return &BadFlagCombinationError{Message: msg}
	}
	return nil
}

// fieldFlagRulesClassContext and fieldFlagRulesInterfaceContext hold
// the field access-flag constraints of JVMS §4.5; interfaces constrain
// their fields much more tightly than classes do.
var fieldFlagRulesClassContext = []flagRuleCollection{
	{
		firstVersion: Java1,
		rules: []flagRule{
			visibilityRule(),
			notBothOf("FINAL", FlagFinal, "VOLATILE", FlagVolatile),
		},
	},
}

var fieldFlagRulesInterfaceContext = []flagRuleCollection{
	{
		firstVersion: Java1,
		rules: []flagRule{
			allOf([]string{"PUBLIC", "STATIC", "FINAL"}, FlagPublic, FlagStatic, FlagFinal),
			noneOf([]string{"PRIVATE", "PROTECTED", "VOLATILE", "TRANSIENT", "ENUM"},
				FlagPrivate, FlagProtected, FlagVolatile, FlagTransient, FlagEnum),
		},
	},
}

// ValidateFieldFlags checks word against the field rule family for
// version v, selecting the class-context or interface-context rules
// depending on isInterface.
func ValidateFieldFlags(word FieldAccessFlags, v ClassFileVersion, isInterface bool) error {
	rules := fieldFlagRulesClassContext
	if isInterface {
		rules = fieldFlagRulesInterfaceContext
	}
	if msg := evaluate(uint16(word), v, rules); msg != "" {
		return &BadFlagCombinationError{Message: msg}
	}
	return nil
}

// methodFlagRulesClass holds the method access-flag constraints of
// JVMS §4.6 for methods declared in a class.
var methodFlagRulesClass = []flagRuleCollection{
	{
		firstVersion: Java1,
		rules: []flagRule{
			visibilityRule(),
			ifFirstThenNoneOfTheRest("ABSTRACT", FlagAbstract, "a method",
				[]string{"FINAL", "NATIVE", "PRIVATE", "STATIC", "STRICT", "SYNCHRONIZED"},
				FlagFinal, FlagNative, FlagPrivate, FlagStatic, FlagStrict, FlagSynchronized),
		},
	},
}

// methodFlagRulesInstanceInit implements the instance-initializer
// method rule family.
var methodFlagRulesInstanceInit = []flagRuleCollection{
	{
		firstVersion: Java1,
		rules: []flagRule{
			visibilityRule(),
			noOthersThan([]string{"PUBLIC", "PRIVATE", "PROTECTED", "VARARGS", "STRICT", "SYNTHETIC"},
				FlagPublic, FlagPrivate, FlagProtected, FlagVarargs, FlagStrict, FlagSynthetic),
		},
	},
}

// methodFlagRulesInterfacePreJava8 and methodFlagRulesInterfaceJava8Plus
// implement the interface-context method rule family, which changed
// shape at Java 8.
var methodFlagRulesInterfacePreJava8 = []flagRuleCollection{
	{
		firstVersion: Java1,
		lastVersion:  Java8,
		rules: []flagRule{
			allOf([]string{"PUBLIC", "ABSTRACT"}, FlagPublic, FlagAbstract),
			noneOf([]string{"PROTECTED", "FINAL", "SYNCHRONIZED", "NATIVE"},
				FlagProtected, FlagFinal, FlagSynchronized, FlagNative),
		},
	},
}

var methodFlagRulesInterfaceJava8Plus = []flagRuleCollection{
	{
		firstVersion: Java8,
		rules: []flagRule{
			exactlyOneOf("PUBLIC", FlagPublic, "PRIVATE", FlagPrivate),
			noneOf([]string{"PROTECTED", "FINAL", "SYNCHRONIZED", "NATIVE"},
				FlagProtected, FlagFinal, FlagSynchronized, FlagNative),
		},
	},
}

// MethodContext distinguishes which rule family ValidateMethodFlags
// should apply.
type MethodContext int

const (
	MethodContextClass MethodContext = iota
	MethodContextInstanceInit
	MethodContextInterface
)

// ValidateMethodFlags checks word against the method rule family
// appropriate for ctx and version v.
func ValidateMethodFlags(word MethodAccessFlags, v ClassFileVersion, ctx MethodContext) error {
	var rules []flagRuleCollection
	switch ctx {
	case MethodContextClass:
		rules = methodFlagRulesClass
	case MethodContextInstanceInit:
		rules = methodFlagRulesInstanceInit
	case MethodContextInterface:
		if v.Before(Java8) {
			rules = methodFlagRulesInterfacePreJava8
		} else {
			rules = methodFlagRulesInterfaceJava8Plus
		}
	default:
		return &InternalError{Message: "unhandled MethodContext"}
	}
	if msg := evaluate(uint16(word), v, rules); msg != "" {
		return &BadFlagCombinationError{Message: msg}
	}
	return nil
}
