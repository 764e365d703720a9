// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

const classFileMagic uint32 = 0xCAFEBABE

func parseClassFile(r *reader, opts Options) (*ClassFile, error) {
	logger := opts.logger()

	magic, err := r.u4()
	if err != nil {
		return nil, ErrTruncatedInput
	}
	if magic != classFileMagic {
		return nil, ErrMagicMismatch
	}

	minor, err := r.u2()
	if err != nil {
		return nil, err
	}
	major, err := r.u2()
	if err != nil {
		return nil, err
	}
	version := ClassFileVersion{Major: major, Minor: minor}
	logger.Debugf("class file version %s", version)

	cp, err := parseConstantPoolChecked(r, opts.MaxConstantPoolEntries, version)
	if err != nil {
		return nil, err
	}

	flags, err := r.u2()
	if err != nil {
		return nil, err
	}
	accessFlags := ClassAccessFlags(flags)
	var anomalies []string
	if flagErr := ValidateClassFlags(accessFlags, version); flagErr != nil {
		if opts.StrictFlags {
			return nil, flagErr
		}
		logger.Warnf("class access flags: %s", flagErr.Error())
		anomalies = append(anomalies, flagErr.Error())
	}

	thisClass, err := r.u2()
	if err != nil {
		return nil, err
	}
	superClass, err := r.u2()
	if err != nil {
		return nil, err
	}

	interfaces, err := parseU16List(r)
	if err != nil {
		return nil, err
	}

	isInterface := accessFlags.Has(FlagInterface)

	fields, fieldAnomalies, err := parseFields(r, cp, version, isInterface, opts.StrictFlags, logger)
	if err != nil {
		return nil, err
	}
	anomalies = append(anomalies, fieldAnomalies...)

	methods, methodAnomalies, err := parseMethods(r, cp, version, isInterface, opts.StrictFlags, logger)
	if err != nil {
		return nil, err
	}
	anomalies = append(anomalies, methodAnomalies...)

	attrs, err := parseAttributeTable(r, cp, ContextClassFile, version)
	if err != nil {
		return nil, err
	}

	logger.Infof("parsed class file: %d constant pool entries, %d fields, %d methods, %d attributes",
		cp.Count(), len(fields), len(methods), len(attrs))

	return &ClassFile{
		Version:      version,
		ConstantPool: cp,
		AccessFlags:  accessFlags,
		ThisClass:    thisClass,
		SuperClass:   superClass,
		Interfaces:   interfaces,
		Fields:       fields,
		Methods:      methods,
		Attributes:   attrs,
		Anomalies:    anomalies,
	}, nil
}

// parseConstantPoolChecked wraps parseConstantPool with the
// MaxConstantPoolEntries guard, rejecting a hostile count before any
// per-entry allocation happens.
func parseConstantPoolChecked(r *reader, max int, version ClassFileVersion) (*ConstantPool, error) {
	if max <= 0 {
		return parseConstantPool(r, version)
	}

	// Peek the count without consuming it from the wrapped parser's own
	// u2 read: parseConstantPool always re-reads the count itself, so
	// just validate via a throwaway cursor copy.
	peek := *r
	count, err := peek.u2()
	if err != nil {
		return nil, err
	}
	if int(count) > max {
		return nil, r.fail("constant_pool_count %d exceeds configured maximum %d", count, max)
	}
	return parseConstantPool(r, version)
}
