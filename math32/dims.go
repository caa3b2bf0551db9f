// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "strconv"

// Dims is a list of vector dimension (component) names.
// It is also the index of the component in a vector.
type Dims int32

const (
	// X is the first component.
	X Dims = iota

	// Y is the second component.
	Y

	// Z is the third component.
	Z

	// W is the fourth component.
	W

	// DimsN is the number of dimensions.
	DimsN
)

var dimsNames = [...]string{"X", "Y", "Z", "W"}

// String returns the component name of the dimension.
func (d Dims) String() string {
	if d < 0 || d >= DimsN {
		return "Dims(" + strconv.Itoa(int(d)) + ")"
	}
	return dimsNames[d]
}

// checkValues panics if more than n initializer values are given.
func checkValues(n int, vals []float32) {
	if len(vals) > n {
		panic("math32: " + strconv.Itoa(len(vals)) + " values given for " + strconv.Itoa(n) + " elements")
	}
}

// checkIndex panics if i is not in [0, n).
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic("math32: index " + strconv.Itoa(i) + " is out of range [0, " + strconv.Itoa(n) + ")")
	}
}

// checkDivisor panics on a zero divisor.
func checkDivisor(s float32) {
	if s == 0 {
		panic("math32: division by zero")
	}
}
