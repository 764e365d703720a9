// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "github.com/gojclass/jclass/log"

func parseFields(r *reader, cp *ConstantPool, version ClassFileVersion, isInterface bool, strict bool, logger *log.Helper) ([]Field, []string, error) {
	count, err := r.u2()
	if err != nil {
		return nil, nil, err
	}
	fields := make([]Field, count)
	var anomalies []string
	for i := range fields {
		f, anomaly, err := parseField(r, cp, version, isInterface, strict, logger)
		if err != nil {
			return nil, nil, err
		}
		if anomaly != "" {
			anomalies = append(anomalies, anomaly)
		}
		fields[i] = f
	}
	return fields, anomalies, nil
}

func parseField(r *reader, cp *ConstantPool, version ClassFileVersion, isInterface bool, strict bool, logger *log.Helper) (Field, string, error) {
	defer r.ctx.frame("field")()

	flags, err := r.u2()
	if err != nil {
		return Field{}, "", err
	}
	nameIndex, err := r.u2()
	if err != nil {
		return Field{}, "", err
	}
	descIndex, err := r.u2()
	if err != nil {
		return Field{}, "", err
	}
	attrs, err := parseAttributeTable(r, cp, ContextFieldInfo, version)
	if err != nil {
		return Field{}, "", err
	}

	accessFlags := FieldAccessFlags(flags)
	var anomaly string
	if flagErr := ValidateFieldFlags(accessFlags, version, isInterface); flagErr != nil {
		if strict {
			return Field{}, "", flagErr
		}
		logger.Warnf("field access flags: %s", flagErr.Error())
		anomaly = flagErr.Error()
	}

	return Field{
		AccessFlags:     accessFlags,
		NameIndex:       nameIndex,
		DescriptorIndex: descIndex,
		Attributes:      attrs,
	}, anomaly, nil
}

func parseMethods(r *reader, cp *ConstantPool, version ClassFileVersion, isInterface bool, strict bool, logger *log.Helper) ([]Method, []string, error) {
	count, err := r.u2()
	if err != nil {
		return nil, nil, err
	}
	methods := make([]Method, count)
	var anomalies []string
	for i := range methods {
		m, anomaly, err := parseMethod(r, cp, version, isInterface, strict, logger)
		if err != nil {
			return nil, nil, err
		}
		if anomaly != "" {
			anomalies = append(anomalies, anomaly)
		}
		methods[i] = m
	}
	return methods, anomalies, nil
}

func parseMethod(r *reader, cp *ConstantPool, version ClassFileVersion, isInterface bool, strict bool, logger *log.Helper) (Method, string, error) {
	defer r.ctx.frame("method")()

	flags, err := r.u2()
	if err != nil {
		return Method{}, "", err
	}
	nameIndex, err := r.u2()
	if err != nil {
		return Method{}, "", err
	}
	descIndex, err := r.u2()
	if err != nil {
		return Method{}, "", err
	}
	attrs, err := parseAttributeTable(r, cp, ContextMethodInfo, version)
	if err != nil {
		return Method{}, "", err
	}

	accessFlags := MethodAccessFlags(flags)
	name, nameErr := cp.Utf8(nameIndex)
	ctx := MethodContextClass
	if nameErr == nil && (name == "<init>") {
		ctx = MethodContextInstanceInit
	} else if isInterface {
		ctx = MethodContextInterface
	}

	var anomaly string
	if flagErr := ValidateMethodFlags(accessFlags, version, ctx); flagErr != nil {
		if strict {
			return Method{}, "", flagErr
		}
		logger.Warnf("method access flags: %s", flagErr.Error())
		anomaly = flagErr.Error()
	}

	return Method{
		AccessFlags:     accessFlags,
		NameIndex:       nameIndex,
		DescriptorIndex: descIndex,
		Attributes:      attrs,
	}, anomaly, nil
}
