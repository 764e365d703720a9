// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

// contextStack tracks the logical structure currently being read --
// "entry #3 of constant pool", "attribute of kind StackMapTable",
// "frame type APPEND" -- so a FormatError can report not just a byte
// offset but the nesting that led to it.
type contextStack struct {
	frames []string
}

func (c *contextStack) push(frame string) {
	c.frames = append(c.frames, frame)
}

func (c *contextStack) pop() {
	if len(c.frames) > 0 {
		c.frames = c.frames[:len(c.frames)-1]
	}
}

// snapshot returns a copy of the current frames, outermost first, safe
// to store in an error after the stack continues mutating.
func (c *contextStack) snapshot() []string {
	if len(c.frames) == 0 {
		return nil
	}
	out := make([]string, len(c.frames))
	copy(out, c.frames)
	return out
}

// frame pushes name, returns a func that pops it; intended to be used
// with defer at the top of each recursive parse step:
//
//	defer r.ctx.frame("attribute of kind " + kind.String())()
func (c *contextStack) frame(name string) func() {
	c.push(name)
	return c.pop
}
