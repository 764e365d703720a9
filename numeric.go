// Copyright 2024 The gojclass Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package jclass

import "math"

// float32FromBits and float64FromBits turn the raw big-endian bit
// patterns CONSTANT_Float and CONSTANT_Double carry into Go's IEEE 754
// types, per §4.4.4/§4.4.5.
func float32FromBits(bits uint32) float32 {
	return math.Float32frombits(bits)
}

func float64FromBits(bits uint64) float64 {
	return math.Float64frombits(bits)
}
