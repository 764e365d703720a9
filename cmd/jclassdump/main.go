// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gojclass/jclass"
)

var (
	wantConstantPool bool
	wantFields       bool
	wantMethods      bool
	wantAttributes   bool
	asJSON           bool
	strictFlags      bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jclassdump",
		Short: "A JVM class file parser built for structural inspection",
	}
	root.AddCommand(dumpCmd(), versionCmd())
	return root
}

func dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [class files...]",
		Short: "Dump the structure of one or more .class files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := dumpFile(path); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&wantConstantPool, "constant-pool", false, "Dump the constant pool")
	cmd.Flags().BoolVar(&wantFields, "fields", false, "Dump fields")
	cmd.Flags().BoolVar(&wantMethods, "methods", false, "Dump methods")
	cmd.Flags().BoolVar(&wantAttributes, "attributes", false, "Dump class-level attributes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of tabular text")
	cmd.Flags().BoolVar(&strictFlags, "strict-flags", false, "Reject access-flag combinations the version-scoped rule engine forbids")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print jclassdump's version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("jclassdump version 1.0.0")
		},
	}
}

func dumpFile(path string) error {
	cf, err := jclass.Open(path, jclass.Options{StrictFlags: strictFlags})
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cf)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "file\t%s\n", path)
	fmt.Fprintf(w, "version\t%s", cf.Version)
	if name := cf.Version.Name(); name != "" {
		fmt.Fprintf(w, " (%s)", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "access_flags\t%s\n", cf.AccessFlags)
	if name, err := cf.ThisClassName(); err == nil {
		fmt.Fprintf(w, "this_class\t%s\n", name)
	}
	if name, err := cf.SuperClassName(); err == nil && name != "" {
		fmt.Fprintf(w, "super_class\t%s\n", name)
	}
	fmt.Fprintf(w, "interfaces\t%d\n", len(cf.Interfaces))
	fmt.Fprintf(w, "fields\t%d\n", len(cf.Fields))
	fmt.Fprintf(w, "methods\t%d\n", len(cf.Methods))
	fmt.Fprintf(w, "attributes\t%d\n", len(cf.Attributes))
	w.Flush()

	if wantConstantPool {
		dumpConstantPool(cf)
	}
	if wantFields {
		dumpFields(cf)
	}
	if wantMethods {
		dumpMethods(cf)
	}
	if wantAttributes {
		dumpAttributes(cf.Attributes)
	}
	return nil
}

func dumpConstantPool(cf *jclass.ClassFile) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\n#\ttag\tvalue")
	for i := 1; i < cf.ConstantPool.Count(); i++ {
		entry, err := cf.ConstantPool.At(uint16(i))
		if err != nil {
			continue
		}
		value, _ := cf.ConstantPool.Resolve(uint16(i))
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, entry.Tag(), value)
	}
	w.Flush()
}

func dumpFields(cf *jclass.ClassFile) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nflags\tname\tdescriptor")
	for _, f := range cf.Fields {
		name, _ := cf.ConstantPool.Utf8(f.NameIndex)
		desc, _ := cf.ConstantPool.Utf8(f.DescriptorIndex)
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.AccessFlags, name, desc)
	}
	w.Flush()
}

func dumpMethods(cf *jclass.ClassFile) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nflags\tname\tdescriptor\tcode bytes")
	for _, m := range cf.Methods {
		name, _ := cf.ConstantPool.Utf8(m.NameIndex)
		desc, _ := cf.ConstantPool.Utf8(m.DescriptorIndex)
		codeLen := 0
		if code := m.Code(); code != nil {
			codeLen = len(code.Code)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", m.AccessFlags, name, desc, codeLen)
	}
	w.Flush()
}

func dumpAttributes(attrs []jclass.Attribute) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nkind")
	for _, a := range attrs {
		fmt.Fprintf(w, "%s\n", a.Kind())
	}
	w.Flush()
}
